package opponent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/dicegame-go/internal/model"
)

func TestShouldReroll(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		opponent int
		human    int
		want     bool
	}{
		{"low behind", 1, 10, 20, true},
		{"low level", 2, 20, 20, true},
		{"low ahead", 2, 30, 20, true},
		{"mid behind", 3, 10, 20, true},
		{"mid behind four", 4, 0, 1, true},
		{"mid level", 3, 20, 20, false},
		{"mid ahead", 4, 30, 20, false},
		{"high behind", 5, 10, 20, false},
		{"high ahead", 6, 30, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldReroll(tt.value, tt.opponent, tt.human))
		})
	}
}

func TestHolds(t *testing.T) {
	dice := model.DiceSet{1, 3, 4, 5, 6}

	behind := Holds(dice, 0, 10)
	assert.Equal(t, model.HoldMask{false, false, false, true, true}, behind)

	ahead := Holds(dice, 10, 0)
	assert.Equal(t, model.HoldMask{false, true, true, true, true}, ahead)
}
