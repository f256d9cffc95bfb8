package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Match:
		o.printMatch(v)
	case []Match:
		o.printMatchList(v)
	case TurnResult:
		o.printTurnResult(v)
	case Record:
		o.printRecord(v)
	case StrategyList:
		o.printStrategies(v)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Tally response type
type Tally struct {
	HumanWins    int    `json:"human_wins"`
	OpponentWins int    `json:"opponent_wins"`
	Display      string `json:"display"`
}

// Turn response type
type Turn struct {
	RollCount      int    `json:"roll_count"`
	RemainingRolls int    `json:"remaining_rolls"`
	Phase          string `json:"phase"`
	Dice           []int  `json:"dice"`
	Holds          []bool `json:"holds"`
	CanRoll        bool   `json:"can_roll"`
	CanScore       bool   `json:"can_score"`
}

// Round response type
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

// Match response type
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

// TurnResult response type
type TurnResult struct {
	Match  Match  `json:"match"`
	Scored *Round `json:"scored,omitempty"`
}

// MatchSummary response type
type MatchSummary struct {
	ID            string `json:"id"`
	TargetScore   int    `json:"target_score"`
	HumanScore    int    `json:"human_score"`
	OpponentScore int    `json:"opponent_score"`
	Outcome       string `json:"outcome"`
	Rounds        int    `json:"rounds"`
}

// Record response type
type Record struct {
	Tally
	GamesPlayed  int            `json:"games_played"`
	CurrentMatch *string        `json:"current_match"`
	History      []MatchSummary `json:"history"`
}

// Strategy response type
type Strategy struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Default     bool   `json:"default"`
}

// StrategyList response type
type StrategyList struct {
	Strategies []Strategy `json:"strategies"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	o.printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	o.printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	o.printf("Token: %s\n", a.SessionToken)
}

// formatDice renders dice as "[3] [5*] [1]", starring held dice
func formatDice(dice []int, holds []bool) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		if i < len(holds) && holds[i] {
			parts[i] = fmt.Sprintf("[%d*]", d)
		} else {
			parts[i] = fmt.Sprintf("[%d]", d)
		}
	}
	return strings.Join(parts, " ")
}

func (o *Output) printMatch(m Match) {
	o.printf("Match: %s (%s)\n", m.ID, m.Status)
	o.printf("Opponent: %s\n", m.Strategy)
	o.printf("Target: %d\n", m.TargetScore)
	o.printf("Round: %d\n", m.Round)
	o.printf("Score: You %d, Computer %d\n", m.HumanScore, m.OpponentScore)
	o.printf("Tally: %s\n", m.Tally.Display)

	if len(m.OpponentDice) > 0 {
		o.printf("Computer dice: %s\n", formatDice(m.OpponentDice, nil))
	}
	if m.Turn.RollCount > 0 {
		o.printf("Your dice: %s\n", formatDice(m.Turn.Dice, m.Turn.Holds))
	}

	if m.Status == "in_progress" {
		o.printf("Rolls left: %d\n", m.Turn.RemainingRolls)
	}
	if m.Message != "" {
		o.printf("\n%s\n", m.Message)
	}
}

func (o *Output) printMatchList(matches []Match) {
	if len(matches) == 0 {
		o.printf("No matches\n")
		return
	}
	for _, m := range matches {
		o.printf("%s  %-11s  target %d  you %d, computer %d\n",
			m.ID, m.Status, m.TargetScore, m.HumanScore, m.OpponentScore)
	}
}

func (o *Output) printTurnResult(r TurnResult) {
	if r.Scored != nil {
		s := r.Scored
		o.printf("Round %d scored\n", s.Round)
		o.printf("  You:      %s = %d\n", formatDice(s.HumanDice, nil), s.HumanPoints)
		o.printf("  Computer: %s = %d\n", formatDice(s.OpponentDice, nil), s.OpponentPoints)
		o.printf("\n")
	}
	o.printMatch(r.Match)
}

func (o *Output) printRecord(r Record) {
	o.printf("Tally: %s\n", r.Display)
	o.printf("Games played: %d\n", r.GamesPlayed)
	if r.CurrentMatch != nil {
		o.printf("Current match: %s\n", *r.CurrentMatch)
	}
	if len(r.History) == 0 {
		return
	}
	o.printf("History:\n")
	for _, s := range r.History {
		result := "lost"
		if s.Outcome == "human_wins" {
			result = "won"
		}
		o.printf("  - %s %s %d-%d (target %d, %d rounds)\n",
			s.ID, result, s.HumanScore, s.OpponentScore, s.TargetScore, s.Rounds)
	}
}

func (o *Output) printStrategies(l StrategyList) {
	for _, s := range l.Strategies {
		def := ""
		if s.Default {
			def = " [default]"
		}
		o.printf("%s - %s%s\n", s.Name, s.DisplayName, def)
	}
}
