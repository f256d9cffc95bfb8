package opponent

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
)

// Service owns the registered computer strategies
type Service struct {
	strategies      map[string]Strategy
	defaultStrategy string
	logger          *slog.Logger
}

// DefaultStrategies returns every built-in strategy keyed by name
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.StrategyHeuristic: NewHeuristicStrategy(rnd),
		model.StrategyRandom:    NewRandomStrategy(rnd),
	}
}

// NewService creates a new opponent Service.
// defaultStrategy is used for unknown names and must be registered.
func NewService(strategies map[string]Strategy, defaultStrategy string, logger *slog.Logger) (*Service, error) {
	if _, ok := strategies[defaultStrategy]; !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, defaultStrategy)
	}
	return &Service{
		strategies:      strategies,
		defaultStrategy: defaultStrategy,
		logger:          logger.With(slog.String("component", "opponent-service")),
	}, nil
}

// DefaultStrategy returns the name used when none is given
func (s *Service) DefaultStrategy() string {
	return s.defaultStrategy
}

// Names returns the registered strategy names in sorted order
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a strategy is registered under name
func (s *Service) Has(name string) bool {
	_, ok := s.strategies[name]
	return ok
}

// Policy returns the decision function for the named strategy,
// falling back to the default strategy if the name is not registered
func (s *Service) Policy(name string) func(opponentScore, humanScore int) model.DiceSet {
	strategy := s.strategyFor(name)
	return func(opponentScore, humanScore int) model.DiceSet {
		result := strategy.Decide(opponentScore, humanScore)
		s.logger.Debug("opponent decided",
			slog.String("strategy", name),
			slog.Int("opponent_score", opponentScore),
			slog.Int("human_score", humanScore),
			slog.String("dice", result.String()),
		)
		return result
	}
}

func (s *Service) strategyFor(name string) Strategy {
	if st, ok := s.strategies[name]; ok {
		return st
	}
	return s.strategies[s.defaultStrategy]
}
