package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrRecordNotFound = errors.New("record not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Match errors
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchInProgress   = errors.New("player already has a match in progress")
	ErrNoMatchInProgress = errors.New("no match in progress")
	ErrNotMatchOwner     = errors.New("match belongs to another player")
	ErrMatchComplete     = errors.New("match is already complete")
	ErrMatchAbandoned    = errors.New("match has been abandoned")

	// Turn errors
	ErrRollLimitReached = errors.New("no rolls left this round")
	ErrNotRolledYet     = errors.New("dice have not been rolled this round")
	ErrInvalidDieIndex  = errors.New("invalid die index")

	// Opponent errors
	ErrUnknownStrategy = errors.New("unknown opponent strategy")
)
