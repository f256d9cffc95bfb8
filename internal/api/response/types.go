package response

import (
	"time"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Tally is the player's running win count against the computer
type Tally struct {
	HumanWins    int    `json:"human_wins"`
	OpponentWins int    `json:"opponent_wins"`
	Display      string `json:"display"`
}

// TallyFromRecord converts the win counts on a record
func TallyFromRecord(r *model.Record) Tally {
	if r == nil {
		return Tally{Display: model.TallyString(0, 0)}
	}
	return Tally{
		HumanWins:    r.HumanWins,
		OpponentWins: r.OpponentWins,
		Display:      model.TallyString(r.HumanWins, r.OpponentWins),
	}
}

// MatchSummary represents a finished match
type MatchSummary struct {
	ID            string    `json:"id"`
	TargetScore   int       `json:"target_score"`
	HumanScore    int       `json:"human_score"`
	OpponentScore int       `json:"opponent_score"`
	Outcome       string    `json:"outcome"`
	Rounds        int       `json:"rounds"`
	CompletedAt   time.Time `json:"completed_at"`
}

// MatchSummaryFromModel converts model.MatchSummary
func MatchSummaryFromModel(s model.MatchSummary) MatchSummary {
	return MatchSummary{
		ID:            string(s.ID),
		TargetScore:   s.TargetScore,
		HumanScore:    s.HumanScore,
		OpponentScore: s.OpponentScore,
		Outcome:       string(s.Outcome),
		Rounds:        s.Rounds,
		CompletedAt:   s.CompletedAt,
	}
}

// Record is a player's tallies plus finished-match history
type Record struct {
	Tally
	GamesPlayed  int            `json:"games_played"`
	CurrentMatch *string        `json:"current_match"`
	History      []MatchSummary `json:"history"`
}

// RecordFromModel converts model.Record, newest match first
func RecordFromModel(r *model.Record) Record {
	resp := Record{
		Tally:       TallyFromRecord(r),
		GamesPlayed: r.GamesPlayed(),
		History:     make([]MatchSummary, 0, len(r.History)),
	}
	if r.CurrentMatch != nil {
		id := string(*r.CurrentMatch)
		resp.CurrentMatch = &id
	}
	for i := len(r.History) - 1; i >= 0; i-- {
		resp.History = append(resp.History, MatchSummaryFromModel(r.History[i]))
	}
	return resp
}

// Turn is the human's side of the round being played
type Turn struct {
	RollCount      int    `json:"roll_count"`
	RemainingRolls int    `json:"remaining_rolls"`
	Phase          string `json:"phase"`
	Dice           []int  `json:"dice"`
	Holds          []bool `json:"holds"`
	CanRoll        bool   `json:"can_roll"`
	CanScore       bool   `json:"can_score"`
}

// TurnFromModel converts model.TurnState
func TurnFromModel(t model.TurnState) Turn {
	return Turn{
		RollCount:      t.RollCount,
		RemainingRolls: t.RemainingRolls(),
		Phase:          string(t.Phase()),
		Dice:           t.Dice.Slice(),
		Holds:          t.Holds.Slice(),
		CanRoll:        t.CanRoll(),
		CanScore:       t.CanScore(),
	}
}

// Round represents a scored round
type Round struct {
	Round          int    `json:"round"`
	HumanDice      []int  `json:"human_dice"`
	HumanRolls     int    `json:"human_rolls"`
	OpponentDice   []int  `json:"opponent_dice"`
	OpponentRolls  int    `json:"opponent_rolls"`
	HumanPoints    int    `json:"human_points"`
	OpponentPoints int    `json:"opponent_points"`
	Outcome        string `json:"outcome"`
	Message        string `json:"message,omitempty"`
}

// RoundFromModel converts model.RoundSummary
func RoundFromModel(r model.RoundSummary) Round {
	return Round{
		Round:          r.Round,
		HumanDice:      r.HumanDice.Slice(),
		HumanRolls:     r.HumanRolls,
		OpponentDice:   r.OpponentDice.Slice(),
		OpponentRolls:  r.OpponentRolls,
		HumanPoints:    r.HumanPoints,
		OpponentPoints: r.OpponentPoints,
		Outcome:        string(r.Outcome),
		Message:        r.Outcome.Message(),
	}
}

// Match represents the full state of a match
type Match struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Strategy      string  `json:"strategy"`
	TargetScore   int     `json:"target_score"`
	HumanScore    int     `json:"human_score"`
	OpponentScore int     `json:"opponent_score"`
	Round         int     `json:"round"`
	Turn          Turn    `json:"turn"`
	OpponentDice  []int   `json:"opponent_dice"`
	LastOutcome   string  `json:"last_outcome,omitempty"`
	Message       string  `json:"message,omitempty"`
	Rounds        []Round `json:"rounds"`
	Tally         Tally   `json:"tally"`
}

// MatchFromModel converts a match and the owner's record
func MatchFromModel(m *model.Match, record *model.Record) Match {
	resp := Match{
		ID:            string(m.ID),
		Status:        string(m.Status),
		Strategy:      m.Strategy,
		TargetScore:   m.TargetScore,
		HumanScore:    m.HumanScore,
		OpponentScore: m.OpponentScore,
		Round:         m.Round,
		Turn:          TurnFromModel(m.Turn),
		LastOutcome:   string(m.LastOutcome),
		Message:       m.LastOutcome.Message(),
		Rounds:        make([]Round, 0, len(m.Rounds)),
		Tally:         TallyFromRecord(record),
	}
	if len(m.Rounds) > 0 {
		resp.OpponentDice = m.OpponentDice.Slice()
	}
	for _, r := range m.Rounds {
		resp.Rounds = append(resp.Rounds, RoundFromModel(r))
	}
	return resp
}

// TurnResult is returned by roll and score; Scored is set when a round was scored
type TurnResult struct {
	Match  Match  `json:"match"`
	Scored *Round `json:"scored,omitempty"`
}

// TurnResultFromModel builds a TurnResult
func TurnResultFromModel(m *model.Match, record *model.Record, scored *model.RoundSummary) TurnResult {
	result := TurnResult{Match: MatchFromModel(m, record)}
	if scored != nil {
		r := RoundFromModel(*scored)
		result.Scored = &r
	}
	return result
}

// Strategy describes an available opponent
type Strategy struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Default     bool   `json:"default"`
}

// StrategiesResponse lists the opponents a match can be started against
type StrategiesResponse struct {
	Strategies []Strategy `json:"strategies"`
}
