package opponent

import (
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/dice"
)

// RerollPasses is the computer's own reroll budget per decision
const RerollPasses = 2

// HeuristicStrategy keeps high dice, rerolls low dice, and rerolls 3s and 4s
// only while the computer is behind on score
type HeuristicStrategy struct {
	random random.Random
}

// NewHeuristicStrategy creates a new HeuristicStrategy
func NewHeuristicStrategy(rnd random.Random) *HeuristicStrategy {
	return &HeuristicStrategy{random: rnd}
}

// Decide rolls all dice, then applies RerollPasses passes of the reroll table.
// Each pass judges every die on its current value.
func (s *HeuristicStrategy) Decide(opponentScore, humanScore int) model.DiceSet {
	result := dice.RollAll(s.random)
	for range RerollPasses {
		holds := Holds(result, opponentScore, humanScore)
		result = dice.Roll(s.random, result, holds)
	}
	return result
}
