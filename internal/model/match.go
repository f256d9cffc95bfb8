package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTargetScore is used when the player supplies no usable target
const DefaultTargetScore = 101

// MatchID uniquely identifies a match
type MatchID string

// MatchStatus represents the lifecycle of a match
type MatchStatus string

const (
	MatchStatusInProgress MatchStatus = "in_progress" // Rounds still being played
	MatchStatusComplete   MatchStatus = "complete"    // One side won
	MatchStatusAbandoned  MatchStatus = "abandoned"   // Player returned to the menu
)

// RoundOutcome is the result of resolving a match after a round is scored
type RoundOutcome string

const (
	OutcomeContinue     RoundOutcome = "continue"
	OutcomeTie          RoundOutcome = "tie"
	OutcomeHumanWins    RoundOutcome = "human_wins"
	OutcomeOpponentWins RoundOutcome = "opponent_wins"
)

// IsTerminal returns true if the outcome ends the match
func (o RoundOutcome) IsTerminal() bool {
	return o == OutcomeHumanWins || o == OutcomeOpponentWins
}

// Message returns the banner shown to the player, or "" while play continues
func (o RoundOutcome) Message() string {
	switch o {
	case OutcomeTie:
		return "Tie! Keep Rolling..."
	case OutcomeHumanWins:
		return "You Win!"
	case OutcomeOpponentWins:
		return "You Lose!"
	default:
		return ""
	}
}

// TallyString renders win tallies as "H:x / C:y"
func TallyString(humanWins, opponentWins int) string {
	return fmt.Sprintf("H:%d / C:%d", humanWins, opponentWins)
}

// MatchState is the scoring view of a match plus the player's win tallies
type MatchState struct {
	HumanScore    int
	OpponentScore int
	TargetScore   int
	HumanWins     int
	OpponentWins  int
}

// Match is a sequence of rounds between the human and the computer
type Match struct {
	ID          MatchID
	PlayerID    PlayerID
	Status      MatchStatus
	Strategy    string // Opponent strategy name
	TargetScore int

	HumanScore    int
	OpponentScore int

	// Round management
	Round        int // 1-indexed number of the round being played
	Turn         TurnState
	OpponentDice DiceSet
	LastOutcome  RoundOutcome // Empty until the first round is scored

	Rounds []RoundSummary // Scored rounds, oldest first

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true if no further actions are accepted
func (m *Match) IsFinished() bool {
	return m.Status == MatchStatusComplete || m.Status == MatchStatusAbandoned
}

// State builds the scoring view using the player's current tallies
func (m *Match) State(record *Record) MatchState {
	state := MatchState{
		HumanScore:    m.HumanScore,
		OpponentScore: m.OpponentScore,
		TargetScore:   m.TargetScore,
	}
	if record != nil {
		state.HumanWins = record.HumanWins
		state.OpponentWins = record.OpponentWins
	}
	return state
}

// LastRound returns the most recently scored round, or nil if none
func (m *Match) LastRound() *RoundSummary {
	if len(m.Rounds) == 0 {
		return nil
	}
	return &m.Rounds[len(m.Rounds)-1]
}

// RoundSummary records what happened when a round was scored
type RoundSummary struct {
	Round          int
	HumanDice      DiceSet
	HumanRolls     int // Rolls the human used before scoring
	OpponentDice   DiceSet
	OpponentRolls  int // Opponent sub-rolls simulated; only the last stands
	HumanPoints    int
	OpponentPoints int
	Outcome        RoundOutcome
}

// MatchSummary is a lightweight record of a finished match
type MatchSummary struct {
	ID            MatchID
	TargetScore   int
	HumanScore    int
	OpponentScore int
	Outcome       RoundOutcome // human_wins or opponent_wins
	Rounds        int
	CompletedAt   time.Time
}

// ParseTargetScore converts player input into a target score.
// Anything that is not a positive integer falls back to DefaultTargetScore.
func ParseTargetScore(input string) int {
	target, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || target <= 0 {
		return DefaultTargetScore
	}
	return target
}
