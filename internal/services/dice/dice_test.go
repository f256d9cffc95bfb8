package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/mcoot/dicegame-go/internal/dependencies/mocks"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/dice"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

type DiceSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceSuite))
}

func (s *DiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

func (s *DiceSuite) TestRollReplacesUnheldDice() {
	s.random.QueueDice(6, 5, 4, 3, 2)

	result := dice.Roll(s.random, model.NewDiceSet(), model.HoldMask{})

	s.Equal(model.DiceSet{6, 5, 4, 3, 2}, result)
}

func (s *DiceSuite) TestRollKeepsHeldDice() {
	s.random.QueueDice(2, 3)
	current := model.DiceSet{6, 1, 6, 1, 6}
	holds := model.HoldMask{true, false, true, false, true}

	result := dice.Roll(s.random, current, holds)

	s.Equal(model.DiceSet{6, 2, 6, 3, 6}, result)
	s.Equal(0, s.random.Remaining())
}

func (s *DiceSuite) TestRollAllHeldConsumesNoRandomness() {
	s.random.QueueDice(4)
	current := model.DiceSet{1, 2, 3, 4, 5}
	holds := model.HoldMask{true, true, true, true, true}

	result := dice.Roll(s.random, current, holds)

	s.Equal(current, result)
	s.Equal(1, s.random.Remaining())
}

func (s *DiceSuite) TestRollDoesNotMutateInput() {
	s.random.QueueDice(6, 6, 6, 6, 6)
	current := model.NewDiceSet()

	_ = dice.Roll(s.random, current, model.HoldMask{})

	s.Equal(model.NewDiceSet(), current)
}

func (s *DiceSuite) TestRollAll() {
	s.random.QueueDice(1, 2, 3, 4, 5)

	s.Equal(model.DiceSet{1, 2, 3, 4, 5}, dice.RollAll(s.random))
}

func (s *DiceSuite) TestToggleHoldFlipsOnlyIndex() {
	holds := dice.ToggleHold(model.HoldMask{}, 2)

	s.Equal(model.HoldMask{false, false, true, false, false}, holds)
}

func (s *DiceSuite) TestToggleHoldPanicsOutOfRange() {
	s.Panics(func() { dice.ToggleHold(model.HoldMask{}, model.DiceCount) })
	s.Panics(func() { dice.ToggleHold(model.HoldMask{}, -1) })
}

func (s *DiceSuite) TestRollerLogsAndRolls() {
	s.random.QueueDice(3, 3, 3, 3, 3)
	roller := dice.NewRoller(s.random, testutil.NopLogger())

	s.Equal(model.DiceSet{3, 3, 3, 3, 3}, roller.Roll(model.NewDiceSet(), model.HoldMask{}))
}

// Properties

func diceSetGen() *rapid.Generator[model.DiceSet] {
	return rapid.Custom(func(t *rapid.T) model.DiceSet {
		var d model.DiceSet
		for i := range d {
			d[i] = rapid.IntRange(1, model.DieFaces).Draw(t, "die")
		}
		return d
	})
}

func holdMaskGen() *rapid.Generator[model.HoldMask] {
	return rapid.Custom(func(t *rapid.T) model.HoldMask {
		var h model.HoldMask
		for i := range h {
			h[i] = rapid.Bool().Draw(t, "hold")
		}
		return h
	})
}

func TestRoll_ValuesInRange_Property(t *testing.T) {
	rnd := random.New()
	rapid.Check(t, func(rt *rapid.T) {
		current := diceSetGen().Draw(rt, "current")
		holds := holdMaskGen().Draw(rt, "holds")

		result := dice.Roll(rnd, current, holds)

		assert.True(rt, result.Valid(), "every die must be in [1,6], got %s", result)
	})
}

func TestRoll_HeldDiceUnchanged_Property(t *testing.T) {
	rnd := random.New()
	rapid.Check(t, func(rt *rapid.T) {
		current := diceSetGen().Draw(rt, "current")
		holds := holdMaskGen().Draw(rt, "holds")

		result := dice.Roll(rnd, current, holds)

		for i, held := range holds {
			if held {
				require.Equal(rt, current[i], result[i], "held die %d changed", i)
			}
		}
	})
}

func TestToggleHold_Involution_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		holds := holdMaskGen().Draw(rt, "holds")
		index := rapid.IntRange(0, model.DiceCount-1).Draw(rt, "index")

		twice := dice.ToggleHold(dice.ToggleHold(holds, index), index)

		assert.Equal(rt, holds, twice)
	})
}
