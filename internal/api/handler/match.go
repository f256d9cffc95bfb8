package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dicegame-go/internal/api/middleware"
	"github.com/mcoot/dicegame-go/internal/api/request"
	"github.com/mcoot/dicegame-go/internal/api/response"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/game"
)

// MatchHandler handles match endpoints
type MatchHandler struct {
	matchController *game.Controller
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchController *game.Controller) *MatchHandler {
	return &MatchHandler{matchController: matchController}
}

// Start handles POST /api/v1/matches
func (h *MatchHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.StartMatchRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	match, err := h.matchController.StartMatch(r.Context(), player.ID, string(req.Target), req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	record, err := h.matchController.GetRecord(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, "/api/v1/matches/"+string(match.ID), response.MatchFromModel(match, record))
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	matches, err := h.matchController.GetMatches(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	record, err := h.matchController.GetRecord(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := make([]response.Match, 0, len(matches))
	for _, m := range matches {
		resp = append(resp, response.MatchFromModel(m, record))
	}
	response.JSON(w, http.StatusOK, resp)
}

// GetCurrent handles GET /api/v1/matches/current
func (h *MatchHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	match, err := h.matchController.GetCurrentMatch(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeMatch(w, r, http.StatusOK, match)
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	match, err := h.matchController.GetMatch(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeMatch(w, r, http.StatusOK, match)
}

// Roll handles POST /api/v1/matches/{id}/roll
func (h *MatchHandler) Roll(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	match, scored, err := h.matchController.Roll(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeTurnResult(w, r, match, scored)
}

// Hold handles POST /api/v1/matches/{id}/hold
func (h *MatchHandler) Hold(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.HoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Index == nil {
		WriteError(w, NewInvalidRequestError("index is required"))
		return
	}

	match, err := h.matchController.ToggleHold(r.Context(), matchID(r), player.ID, *req.Index)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeMatch(w, r, http.StatusOK, match)
}

// Score handles POST /api/v1/matches/{id}/score
func (h *MatchHandler) Score(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	match, scored, err := h.matchController.Score(r.Context(), matchID(r), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.writeTurnResult(w, r, match, scored)
}

// Quit handles DELETE /api/v1/matches/{id}
func (h *MatchHandler) Quit(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	if err := h.matchController.QuitMatch(r.Context(), matchID(r), player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *MatchHandler) writeMatch(w http.ResponseWriter, r *http.Request, status int, match *model.Match) {
	record, err := h.matchController.GetRecord(r.Context(), match.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.MatchFromModel(match, record))
}

func (h *MatchHandler) writeTurnResult(w http.ResponseWriter, r *http.Request, match *model.Match, scored *model.RoundSummary) {
	record, err := h.matchController.GetRecord(r.Context(), match.PlayerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnResultFromModel(match, record, scored))
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}
