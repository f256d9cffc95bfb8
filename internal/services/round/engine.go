// Package round scores a finished human turn against the computer and
// resolves the match state that results.
package round

import (
	"fmt"

	"github.com/mcoot/dicegame-go/internal/model"
)

// Policy produces the computer's dice given both cumulative scores
type Policy func(opponentScore, humanScore int) model.DiceSet

// OpponentTurn is what the computer did in response to a scored turn
type OpponentTurn struct {
	Dice  model.DiceSet // Dice from the final sub-roll; only these count
	Rolls int           // Sub-rolls simulated
}

// OpponentRolls returns how many times the policy is consulted after the
// human scores having used rollCount rolls
func OpponentRolls(rollCount int) int {
	if rollCount >= model.MaxRolls {
		return 1
	}
	return model.MaxRolls - rollCount
}

// ScoreTurn adds the human's dice to the state, lets the computer use up the
// human's unused rolls, then resolves the result.
// Panics if rollCount is outside [1, MaxRolls].
func ScoreTurn(human model.DiceSet, rollCount int, state model.MatchState, policy Policy) (model.MatchState, model.RoundOutcome, OpponentTurn) {
	if rollCount < 1 || rollCount > model.MaxRolls {
		panic(fmt.Sprintf("round: roll count %d out of range [1,%d]", rollCount, model.MaxRolls))
	}

	state.HumanScore += human.Sum()

	turn := OpponentTurn{Rolls: OpponentRolls(rollCount)}
	for range turn.Rolls {
		turn.Dice = policy(state.OpponentScore, state.HumanScore)
	}
	state.OpponentScore += turn.Dice.Sum()

	state, outcome := Resolve(state)
	return state, outcome, turn
}

// Resolve decides the outcome of the state after a round is scored and
// updates the win tallies for a decisive result
func Resolve(state model.MatchState) (model.MatchState, model.RoundOutcome) {
	if state.HumanScore < state.TargetScore && state.OpponentScore < state.TargetScore {
		return state, model.OutcomeContinue
	}

	switch {
	case state.HumanScore == state.OpponentScore:
		return state, model.OutcomeTie
	case state.OpponentScore > state.HumanScore:
		state.OpponentWins++
		return state, model.OutcomeOpponentWins
	default:
		state.HumanWins++
		return state, model.OutcomeHumanWins
	}
}
