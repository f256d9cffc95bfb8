package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/api/handler"
	"github.com/mcoot/dicegame-go/internal/api/middleware"
	"github.com/mcoot/dicegame-go/internal/api/response"
	shared "github.com/mcoot/dicegame-go/internal/middleware"
	"github.com/mcoot/dicegame-go/internal/services/auth"
	"github.com/mcoot/dicegame-go/internal/services/game"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController *game.Controller
	OpponentService *opponent.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.AuthService, cfg.MatchController)
	matchHandler := handler.NewMatchHandler(cfg.MatchController)
	strategyHandler := handler.NewStrategyHandler(cfg.OpponentService)

	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := shared.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/strategies", strategyHandler.List).Methods(http.MethodGet)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)
	playerProtected.HandleFunc("/me/record", playerHandler.GetRecord).Methods(http.MethodGet)

	// Match routes (all require auth). /current must be registered before /{id}.
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("", matchHandler.Start).Methods(http.MethodPost)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/current", matchHandler.GetCurrent).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Quit).Methods(http.MethodDelete)
	matches.HandleFunc("/{id}/roll", matchHandler.Roll).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/hold", matchHandler.Hold).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/score", matchHandler.Score).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
