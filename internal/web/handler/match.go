package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/game"
	"github.com/mcoot/dicegame-go/internal/web/middleware"
	"github.com/mcoot/dicegame-go/internal/web/templates/layout"
	"github.com/mcoot/dicegame-go/internal/web/templates/pages"
)

// MatchHandler handles the match page and its actions
type MatchHandler struct {
	matchController *game.Controller
	logger          *slog.Logger
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matchController *game.Controller, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchController: matchController,
		logger:          logger,
	}
}

// Start begins a match from the home page form
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, "/")
		return
	}

	match, err := h.matchController.StartMatch(r.Context(), player.ID, r.FormValue("target"), r.FormValue("strategy"))
	if err != nil {
		if errors.Is(err, model.ErrMatchInProgress) {
			if current, cerr := h.matchController.GetCurrentMatch(r.Context(), player.ID); cerr == nil {
				redirect(w, r, matchPath(current.ID))
				return
			}
		}
		middleware.SetFlash(w, middleware.FlashError, "Could not start match: "+err.Error())
		redirect(w, r, "/")
		return
	}

	redirect(w, r, matchPath(match.ID))
}

// Current sends the player to their match in progress, or home if none
func (h *MatchHandler) Current(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	match, err := h.matchController.GetCurrentMatch(r.Context(), player.ID)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashInfo, "No match in progress")
		redirect(w, r, "/")
		return
	}

	redirect(w, r, matchPath(match.ID))
}

// View renders the match page
func (h *MatchHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := model.MatchID(mux.Vars(r)["id"])

	match, err := h.matchController.GetMatch(r.Context(), id, player.ID)
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Match not found")
		redirect(w, r, "/")
		return
	}

	record, err := h.matchController.GetRecord(r.Context(), player.ID)
	if err != nil {
		h.logger.Error("load record", slog.String("player_id", string(player.ID)), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.MatchData{
		PageData: layout.PageData{
			Title:  "Match",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Match:  match,
		Record: record,
	}
	render(w, r, pages.Match(data))
}

// Roll rerolls the unheld dice
func (h *MatchHandler) Roll(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := model.MatchID(mux.Vars(r)["id"])

	if _, _, err := h.matchController.Roll(r.Context(), id, player.ID); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not roll: "+err.Error())
	}
	redirect(w, r, matchPath(id))
}

// Hold toggles the die named by the index form field
func (h *MatchHandler) Hold(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := model.MatchID(mux.Vars(r)["id"])

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Invalid form data")
		redirect(w, r, matchPath(id))
		return
	}

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Pick a die to hold")
		redirect(w, r, matchPath(id))
		return
	}

	if _, err := h.matchController.ToggleHold(r.Context(), id, player.ID, index); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not hold die: "+err.Error())
	}
	redirect(w, r, matchPath(id))
}

// Score ends the round with the current dice
func (h *MatchHandler) Score(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := model.MatchID(mux.Vars(r)["id"])

	if _, _, err := h.matchController.Score(r.Context(), id, player.ID); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not score: "+err.Error())
	}
	redirect(w, r, matchPath(id))
}

// Quit abandons the match and returns to the menu
func (h *MatchHandler) Quit(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	id := model.MatchID(mux.Vars(r)["id"])

	if err := h.matchController.QuitMatch(r.Context(), id, player.ID); err != nil {
		middleware.SetFlash(w, middleware.FlashError, "Could not quit: "+err.Error())
		redirect(w, r, matchPath(id))
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, "Match abandoned")
	redirect(w, r, "/")
}

func matchPath(id model.MatchID) string {
	return "/match/" + string(id)
}
