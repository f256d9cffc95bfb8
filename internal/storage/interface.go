package storage

import (
	"context"
	"time"

	"github.com/mcoot/dicegame-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	GetMatchesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Record operations
	SaveRecord(ctx context.Context, record *model.Record) error
	GetRecord(ctx context.Context, playerID model.PlayerID) (*model.Record, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	// DeleteExpiredSessions removes sessions that expired before now and
	// returns how many were removed
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
