// Package middleware holds the JSON API's request middleware.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoot/dicegame-go/internal/api/apierr"
	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

// Auth rejects requests without a valid bearer token or session cookie
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shared.SessionToken(r) == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx, err := shared.Authenticate(r, authService)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Recovery turns panics into a JSON INTERNAL_ERROR response
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return shared.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}

// GetPlayer returns the authenticated player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	return shared.PlayerFrom(ctx)
}

// GetSession returns the session from the request context
func GetSession(ctx context.Context) *auth.Session {
	return shared.SessionFrom(ctx)
}

// MustGetPlayer returns the authenticated player. Handlers behind Auth only.
func MustGetPlayer(ctx context.Context) *model.Player {
	player := GetPlayer(ctx)
	if player == nil {
		panic("no player in context: route is missing the Auth middleware")
	}
	return player
}
