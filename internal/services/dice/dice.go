package dice

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
)

// Face returns a uniformly random die face in [1, DieFaces]
func Face(rnd random.Random) int {
	return rnd.Intn(model.DieFaces) + 1
}

// Roll rerolls every die whose hold flag is false.
// Held dice keep their current value.
func Roll(rnd random.Random, current model.DiceSet, holds model.HoldMask) model.DiceSet {
	next := current
	for i := range next {
		if !holds[i] {
			next[i] = Face(rnd)
		}
	}
	return next
}

// RollAll rolls all dice fresh
func RollAll(rnd random.Random) model.DiceSet {
	return Roll(rnd, model.NewDiceSet(), model.HoldMask{})
}

// ToggleHold flips the hold flag at index.
// Panics if index does not address a die; callers validate user input first.
func ToggleHold(holds model.HoldMask, index int) model.HoldMask {
	if !model.IsValidDieIndex(index) {
		panic(fmt.Sprintf("dice: hold index %d out of range [0,%d)", index, model.DiceCount))
	}
	holds[index] = !holds[index]
	return holds
}

// Roller rolls dice for the human side and logs each roll at debug level
type Roller struct {
	random random.Random
	logger *slog.Logger
}

// NewRoller creates a Roller
func NewRoller(rnd random.Random, logger *slog.Logger) *Roller {
	return &Roller{
		random: rnd,
		logger: logger.With(slog.String("component", "dice")),
	}
}

// Roll rerolls the unheld dice and logs the result
func (r *Roller) Roll(current model.DiceSet, holds model.HoldMask) model.DiceSet {
	next := Roll(r.random, current, holds)
	r.logger.Debug("dice rolled",
		slog.String("before", current.String()),
		slog.String("after", next.String()),
		slog.Int("held", holds.Count()),
	)
	return next
}
