package pages

import (
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/web/templates/layout"
)

// GameOverMessage is shown once a match has a winner
const GameOverMessage = "Game Over! Press the Back button to return to the Home Screen."

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Next string

	// Set only when a player is signed in
	Record          *model.Record
	CurrentMatch    *model.Match
	Strategies      []string
	DefaultStrategy string
}

// MatchData is the data for the match page
type MatchData struct {
	layout.PageData
	Match  *model.Match
	Record *model.Record
}

func winsOf(record *model.Record) (int, int) {
	if record == nil {
		return 0, 0
	}
	return record.HumanWins, record.OpponentWins
}

// computerDice shows blank dice until the computer has played a round
func computerDice(m *model.Match) model.DiceSet {
	if len(m.Rounds) == 0 {
		return model.NewDiceSet()
	}
	return m.OpponentDice
}

func rollLabel(turn model.TurnState) string {
	if turn.RollCount > 0 {
		return "ReRoll"
	}
	return "Throw"
}

func historyResult(s model.MatchSummary) string {
	if s.Outcome == model.OutcomeHumanWins {
		return "Won"
	}
	return "Lost"
}

func newestFirst(history []model.MatchSummary) []model.MatchSummary {
	out := make([]model.MatchSummary, len(history))
	for i, s := range history {
		out[len(history)-1-i] = s
	}
	return out
}
