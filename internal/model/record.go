package model

import "time"

// maxMatchHistory caps the finished matches kept on a record
const maxMatchHistory = 50

// Record tracks a player's results across matches
type Record struct {
	PlayerID     PlayerID
	HumanWins    int
	OpponentWins int
	CurrentMatch *MatchID       // nil when the player is at the menu
	History      []MatchSummary // Finished matches, oldest first
	UpdatedAt    time.Time
}

// NewRecord creates an empty record for a player
func NewRecord(playerID PlayerID, now time.Time) *Record {
	return &Record{
		PlayerID:  playerID,
		UpdatedAt: now,
	}
}

// GamesPlayed returns the number of decided matches
func (r *Record) GamesPlayed() int {
	return r.HumanWins + r.OpponentWins
}

// AddSummary appends a finished match, dropping the oldest beyond the cap
func (r *Record) AddSummary(summary MatchSummary) {
	r.History = append(r.History, summary)
	if len(r.History) > maxMatchHistory {
		r.History = r.History[len(r.History)-maxMatchHistory:]
	}
}
