package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcoot/dicegame-go/internal/dependencies/clock"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/storage"
)

// ErrInvalidSession covers unknown, expired and orphaned tokens alike
var ErrInvalidSession = errors.New("invalid or expired session")

const (
	tokenPrefix   = "sess_"
	tokenLength   = 32
	tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"
)

// Session is a validated session together with the player it belongs to
type Session struct {
	model.Session
	Player model.Player
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{SessionDuration: 24 * time.Hour}
}

// Service issues and checks player sessions. Sessions live in storage, so
// a redis-backed server keeps players signed in across restarts.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	sessionDuration time.Duration
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger, cfg Config) *Service {
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		logger:          logger.With(slog.String("component", "auth")),
		sessionDuration: cfg.SessionDuration,
	}
}

// ValidateSession resolves a token to its session and current player.
// Expired sessions are removed as they are found.
func (s *Service) ValidateSession(ctx context.Context, token string) (*Session, error) {
	stored, err := s.storage.GetSession(ctx, token)
	if errors.Is(err, model.ErrSessionNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	if stored.Expired(s.clock.Now()) {
		if err := s.storage.DeleteSession(ctx, token); err != nil {
			return nil, err
		}
		return nil, ErrInvalidSession
	}

	player, err := s.storage.GetPlayer(ctx, stored.PlayerID)
	if errors.Is(err, model.ErrPlayerNotFound) {
		// Guest players can expire out of storage before their session does
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	return &Session{Session: *stored, Player: *player}, nil
}

// GetPlayer returns the player for a session token
func (s *Service) GetPlayer(ctx context.Context, token string) (*model.Player, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return &session.Player, nil
}

// InvalidateSession signs the token out. Unknown tokens are ignored.
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	return s.storage.DeleteSession(ctx, token)
}

// CleanExpiredSessions removes expired sessions and returns how many were dropped
func (s *Service) CleanExpiredSessions(ctx context.Context) (int, error) {
	return s.storage.DeleteExpiredSessions(ctx, s.clock.Now())
}

func (s *Service) startSession(ctx context.Context, player *model.Player) (*Session, error) {
	now := s.clock.Now()
	session := &Session{
		Session: model.Session{
			Token:     tokenPrefix + s.random.String(tokenLength, tokenAlphabet),
			PlayerID:  player.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.sessionDuration),
		},
		Player: *player,
	}

	if err := s.storage.SaveSession(ctx, &session.Session); err != nil {
		return nil, err
	}
	return session, nil
}
