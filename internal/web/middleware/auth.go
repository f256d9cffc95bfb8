// Package middleware holds the HTML UI's request middleware.
package middleware

import (
	"context"
	"net/http"
	"net/url"

	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

// GetPlayer returns the signed-in player, or nil on public pages
func GetPlayer(ctx context.Context) *model.Player {
	return shared.PlayerFrom(ctx)
}

// Auth sends visitors without a valid session to the sign-in menu,
// remembering where they were headed
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := shared.Authenticate(r, authService)
			if err != nil {
				http.Redirect(w, r, "/?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth loads the session when there is one
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ctx, err := shared.Authenticate(r, authService); err == nil {
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
