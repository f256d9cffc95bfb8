package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/dicegame-go/internal/config"
	"github.com/mcoot/dicegame-go/internal/dependencies/clock"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/services/dice"
	"github.com/mcoot/dicegame-go/internal/services/game"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
	"github.com/mcoot/dicegame-go/internal/storage"
	"github.com/mcoot/dicegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/dicegame-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Roller          *dice.Roller
	OpponentService *opponent.Service
	MatchController *game.Controller
	AuthService     *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// DefaultStrategy is the opponent used when a match names none.
	// If empty, defaults to model.DefaultStrategy
	DefaultStrategy string
}

// ConfigFromServer maps environment settings onto a factory Config
func ConfigFromServer(srv config.Server, logger *slog.Logger) Config {
	cfg := Config{
		AuthConfig:      auth.Config{SessionDuration: srv.SessionTTL},
		Logger:          logger,
		StorageType:     srv.StorageType,
		DefaultStrategy: srv.DefaultStrategy,
	}
	if srv.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = srv.RedisURL
		redisCfg.MatchTTL = srv.MatchTTL
		redisCfg.RecordTTL = srv.RecordTTL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, cfg.DefaultStrategy, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, defaultStrategy string, logger *slog.Logger) (*App, error) {
	if defaultStrategy == "" {
		defaultStrategy = model.DefaultStrategy
	}

	opponents, err := opponent.NewService(opponent.DefaultStrategies(rnd), defaultStrategy, logger)
	if err != nil {
		return nil, err
	}

	roller := dice.NewRoller(rnd, logger)
	matchController := game.NewController(store, roller, opponents, clk, rnd, logger)
	authService := auth.New(store, clk, rnd, logger, authCfg)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Roller:          roller,
		OpponentService: opponents,
		MatchController: matchController,
		AuthService:     authService,
	}, nil
}
