package opponent

import "github.com/mcoot/dicegame-go/internal/model"

// Strategy decides the computer's dice for one roll of its turn.
// Implementations see only the two cumulative scores, never the human's dice.
type Strategy interface {
	// Decide returns the computer's final dice after its own rerolls
	Decide(opponentScore, humanScore int) model.DiceSet
}
