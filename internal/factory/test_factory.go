package factory

import (
	"time"

	"github.com/mcoot/dicegame-go/internal/dependencies/mocks"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/storage/memory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), model.DefaultStrategy, testutil.NopLogger())
	if err != nil {
		panic(err) // Built-in default strategy is always registered
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueHumanRoll scripts the next human roll; only unheld dice consume values
func (t *TestApp) QueueHumanRoll(faces ...int) {
	t.MockRandom.QueueDice(faces...)
}

// QueueOpponentRolls scripts n whole opponent rolls that all show face
func (t *TestApp) QueueOpponentRolls(n int, face int) {
	for range n * model.DiceCount {
		t.MockRandom.QueueDice(face)
	}
}
