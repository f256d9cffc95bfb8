package opponent

import "github.com/mcoot/dicegame-go/internal/model"

// bucket groups die faces for the reroll decision
type bucket int

const (
	bucketLow  bucket = iota // 1-2
	bucketMid                // 3-4
	bucketHigh               // 5-6
	bucketCount
)

// standing is the sign of the computer's score differential
type standing int

const (
	standingBehind standing = iota // opponentScore - humanScore < 0
	standingLevelOrAhead
	standingCount
)

// rerollTable[bucket][standing] is true when a die should be rerolled
var rerollTable = [bucketCount][standingCount]bool{
	bucketLow:  {standingBehind: true, standingLevelOrAhead: true},
	bucketMid:  {standingBehind: true, standingLevelOrAhead: false},
	bucketHigh: {standingBehind: false, standingLevelOrAhead: false},
}

func bucketOf(value int) bucket {
	switch {
	case value <= 2:
		return bucketLow
	case value <= 4:
		return bucketMid
	default:
		return bucketHigh
	}
}

func standingOf(opponentScore, humanScore int) standing {
	if opponentScore-humanScore < 0 {
		return standingBehind
	}
	return standingLevelOrAhead
}

// ShouldReroll reports whether a die showing value is rerolled given the scores
func ShouldReroll(value, opponentScore, humanScore int) bool {
	return rerollTable[bucketOf(value)][standingOf(opponentScore, humanScore)]
}

// Holds builds the hold mask for one reroll pass over dice
func Holds(dice model.DiceSet, opponentScore, humanScore int) model.HoldMask {
	var holds model.HoldMask
	for i, v := range dice {
		holds[i] = !ShouldReroll(v, opponentScore, humanScore)
	}
	return holds
}
