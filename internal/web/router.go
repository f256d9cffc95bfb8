package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/services/game"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
	"github.com/mcoot/dicegame-go/internal/web/handler"
	"github.com/mcoot/dicegame-go/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *game.Controller
	OpponentService *opponent.Service
	SessionTTL      time.Duration // Session cookie lifetime; defaults to the auth service default
	StaticDir       string        // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	loggingMiddleware := shared.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	homeHandler := handler.NewHomeHandler(cfg.MatchController, cfg.OpponentService, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.SessionTTL)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.Logger)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing player info in nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.Use(flashMiddleware)
	authRoutes.HandleFunc("/guest", authHandler.CreateGuest).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	protected := r.PathPrefix("/match").Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("", matchHandler.Start).Methods(http.MethodPost)
	protected.HandleFunc("", matchHandler.Current).Methods(http.MethodGet)
	protected.HandleFunc("/{id}", matchHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/{id}/roll", matchHandler.Roll).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/hold", matchHandler.Hold).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/score", matchHandler.Score).Methods(http.MethodPost)
	protected.HandleFunc("/{id}/quit", matchHandler.Quit).Methods(http.MethodPost)

	return r
}
