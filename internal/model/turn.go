package model

// MaxRolls is the number of rolls a human may make per round
const MaxRolls = 3

// TurnPhase is the position of a round in its state machine
type TurnPhase string

const (
	TurnPhaseIdle   TurnPhase = "idle"   // No roll yet this round
	TurnPhaseRolled TurnPhase = "rolled" // Rolled at least once, may roll again
	TurnPhaseLocked TurnPhase = "locked" // Roll limit reached, awaiting scoring
)

// TurnState is the human side of a single round
type TurnState struct {
	RollCount int
	Dice      DiceSet
	Holds     HoldMask
}

// NewTurnState starts a fresh round
func NewTurnState() TurnState {
	return TurnState{
		RollCount: 0,
		Dice:      NewDiceSet(),
	}
}

// Phase derives the turn phase from the roll count
func (t TurnState) Phase() TurnPhase {
	switch {
	case t.RollCount <= 0:
		return TurnPhaseIdle
	case t.RollCount >= MaxRolls:
		return TurnPhaseLocked
	default:
		return TurnPhaseRolled
	}
}

// CanRoll returns true if another roll is permitted this round
func (t TurnState) CanRoll() bool {
	return t.RollCount < MaxRolls
}

// CanHold returns true if dice may be held or released
func (t TurnState) CanHold() bool {
	return t.Phase() == TurnPhaseRolled
}

// CanScore returns true if the round may be scored
func (t TurnState) CanScore() bool {
	return t.RollCount > 0
}

// RemainingRolls returns how many rolls are left this round
func (t TurnState) RemainingRolls() int {
	if t.RollCount >= MaxRolls {
		return 0
	}
	return MaxRolls - t.RollCount
}
