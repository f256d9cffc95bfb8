package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/auth"
)

// SessionCookieName is the cookie the web UI keeps the session token in
const SessionCookieName = "session"

type sessionKey struct{}

// SessionToken returns the bearer token, falling back to the session cookie
func SessionToken(r *http.Request) string {
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// WithSession stores a validated session on the context
func WithSession(ctx context.Context, session *auth.Session) context.Context {
	notePlayer(ctx, session.PlayerID)
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFrom returns the session stored by WithSession, or nil
func SessionFrom(ctx context.Context) *auth.Session {
	session, _ := ctx.Value(sessionKey{}).(*auth.Session)
	return session
}

// PlayerFrom returns the player of the stored session, or nil
func PlayerFrom(ctx context.Context) *model.Player {
	if session := SessionFrom(ctx); session != nil {
		return &session.Player
	}
	return nil
}

// Authenticate validates the request's session token and returns a
// context carrying the session. A missing token is auth.ErrInvalidSession.
func Authenticate(r *http.Request, authService *auth.Service) (context.Context, error) {
	token := SessionToken(r)
	if token == "" {
		return r.Context(), auth.ErrInvalidSession
	}
	session, err := authService.ValidateSession(r.Context(), token)
	if err != nil {
		return r.Context(), err
	}
	return WithSession(r.Context(), session), nil
}
