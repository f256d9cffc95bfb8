package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/web/middleware"
)

// AuthHandler handles sign-in actions
type AuthHandler struct {
	authService *auth.Service
	sessionTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = auth.DefaultConfig().SessionDuration
	}
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
	}
}

// CreateGuest handles guest player creation
func (h *AuthHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, "/")
		return
	}

	session, err := h.authService.CreateGuestPlayer(r.Context(), r.FormValue("display_name"))
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Failed to create guest player")
		redirect(w, r, "/")
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome, "+session.Player.DisplayName+"!")
	redirect(w, r, safeNext(r.FormValue("next")))
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, "/")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		middleware.SetFlash(w, middleware.FlashError, "Username and password are required")
		redirect(w, r, "/")
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid username or password")
		redirect(w, r, "/")
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, middleware.FlashSuccess, "Welcome back, "+session.Player.DisplayName+"!")
	redirect(w, r, safeNext(r.FormValue("next")))
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, "/")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	session, err := h.authService.RegisterPlayer(r.Context(), username, r.FormValue("password"), r.FormValue("display_name"))
	if err != nil {
		msg := "Registration failed"
		switch {
		case errors.Is(err, auth.ErrUsernameExists):
			msg = "Username already taken"
		case errors.Is(err, auth.ErrInvalidUsername), errors.Is(err, auth.ErrPasswordTooShort):
			msg = capitalize(err.Error())
		}
		middleware.SetFlash(w, middleware.FlashError, msg)
		redirect(w, r, "/")
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, middleware.FlashSuccess, "Account created! Welcome, "+session.Player.DisplayName+"!")
	redirect(w, r, "/")
}

// Logout ends the session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	message, kind := "You have been logged out", middleware.FlashInfo
	if cookie, err := r.Cookie(shared.SessionCookieName); err == nil {
		if err := h.authService.InvalidateSession(r.Context(), cookie.Value); err != nil {
			message, kind = "Signed out here, but the session could not be revoked", middleware.FlashError
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     shared.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, kind, message)
	redirect(w, r, "/")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     shared.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
