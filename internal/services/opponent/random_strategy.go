package opponent

import (
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/dice"
)

// RandomStrategy rolls once and keeps whatever comes up
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// Decide returns a single uniformly random roll
func (s *RandomStrategy) Decide(opponentScore, humanScore int) model.DiceSet {
	return dice.RollAll(s.random)
}
