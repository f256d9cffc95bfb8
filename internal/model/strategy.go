package model

// Opponent strategy constants
const (
	StrategyHeuristic = "heuristic"
	StrategyRandom    = "random"
)

// DefaultStrategy is used when a match does not name one
const DefaultStrategy = StrategyHeuristic

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy string) string {
	switch strategy {
	case StrategyHeuristic:
		return "Heuristic"
	case StrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidStrategies returns all valid opponent strategy names
func ValidStrategies() []string {
	return []string{StrategyHeuristic, StrategyRandom}
}

// IsValidStrategy reports whether name is a known strategy
func IsValidStrategy(name string) bool {
	for _, s := range ValidStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
