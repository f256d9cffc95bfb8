// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Server holds everything cmd/server reads from the environment
type Server struct {
	Host            string        `env:"DICEGAME_HOST"`
	Port            int           `env:"DICEGAME_PORT" envDefault:"8080"`
	LogLevel        string        `env:"DICEGAME_LOG_LEVEL" envDefault:"info"`
	SessionTTL      time.Duration `env:"DICEGAME_SESSION_TTL" envDefault:"24h"`
	DefaultStrategy string        `env:"DICEGAME_DEFAULT_STRATEGY" envDefault:"heuristic"`
	StaticDir       string        `env:"DICEGAME_STATIC_DIR"`

	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	MatchTTL    time.Duration `env:"DICEGAME_MATCH_TTL" envDefault:"168h"`
	RecordTTL   time.Duration `env:"DICEGAME_RECORD_TTL" envDefault:"720h"`
}

// ParseEnv loads configuration from environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer parses and validates the server configuration
func LoadServer() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks combinations env tags cannot express
func (c Server) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid DICEGAME_PORT %d", c.Port)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info
func (c Server) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps debug/info/warn/error onto slog levels
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid DICEGAME_LOG_LEVEL %q", s)
	}
	return level, nil
}
