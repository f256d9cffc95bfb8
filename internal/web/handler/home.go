package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/game"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
	"github.com/mcoot/dicegame-go/internal/web/middleware"
	"github.com/mcoot/dicegame-go/internal/web/templates/layout"
	"github.com/mcoot/dicegame-go/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct {
	matchController *game.Controller
	opponents       *opponent.Service
	logger          *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(matchController *game.Controller, opponents *opponent.Service, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		matchController: matchController,
		opponents:       opponents,
		logger:          logger,
	}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	data := pages.HomeData{
		PageData: layout.PageData{
			Title:  "Home",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Next: r.URL.Query().Get("next"),
	}

	if player != nil {
		record, err := h.matchController.GetRecord(r.Context(), player.ID)
		if err != nil {
			h.logger.Error("load record", slog.String("player_id", string(player.ID)), slog.Any("error", err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		data.Record = record

		current, err := h.matchController.GetCurrentMatch(r.Context(), player.ID)
		if err != nil && !errors.Is(err, model.ErrNoMatchInProgress) {
			h.logger.Error("load current match", slog.String("player_id", string(player.ID)), slog.Any("error", err))
		}
		data.CurrentMatch = current
		data.Strategies = h.opponents.Names()
		data.DefaultStrategy = h.opponents.DefaultStrategy()
	}

	render(w, r, pages.Home(data))
}
