package model

import (
	"fmt"
	"strings"
)

// Dice constants
const (
	DiceCount       = 5 // Dice per side
	DieFaces        = 6 // Faces per die
	DefaultDieValue = 1 // Value shown before the first roll of a round
)

// DiceSet is one side's current roll
type DiceSet [DiceCount]int

// NewDiceSet returns a DiceSet with every die at the default value
func NewDiceSet() DiceSet {
	var d DiceSet
	for i := range d {
		d[i] = DefaultDieValue
	}
	return d
}

// Sum returns the total of all dice
func (d DiceSet) Sum() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// Valid returns true if every die is within [1, DieFaces]
func (d DiceSet) Valid() bool {
	for _, v := range d {
		if v < 1 || v > DieFaces {
			return false
		}
	}
	return true
}

// String renders the dice as "[1 2 3 4 5]"
func (d DiceSet) String() string {
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Slice returns the dice as a slice (for JSON responses and logging)
func (d DiceSet) Slice() []int {
	out := make([]int, len(d))
	copy(out, d[:])
	return out
}

// HoldMask marks dice excluded from the next reroll
type HoldMask [DiceCount]bool

// IsValidDieIndex returns true if index addresses a die
func IsValidDieIndex(index int) bool {
	return index >= 0 && index < DiceCount
}

// Count returns the number of held dice
func (h HoldMask) Count() int {
	n := 0
	for _, held := range h {
		if held {
			n++
		}
	}
	return n
}

// Slice returns the mask as a slice
func (h HoldMask) Slice() []bool {
	out := make([]bool, len(h))
	copy(out, h[:])
	return out
}
