package handler

import (
	"net/http"

	"github.com/mcoot/dicegame-go/internal/api/response"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
)

// StrategyHandler lists the available computer opponents
type StrategyHandler struct {
	opponents *opponent.Service
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler(opponents *opponent.Service) *StrategyHandler {
	return &StrategyHandler{opponents: opponents}
}

// List handles GET /api/v1/strategies
func (h *StrategyHandler) List(w http.ResponseWriter, _ *http.Request) {
	names := h.opponents.Names()
	resp := response.StrategiesResponse{Strategies: make([]response.Strategy, 0, len(names))}
	for _, name := range names {
		resp.Strategies = append(resp.Strategies, response.Strategy{
			Name:        name,
			DisplayName: model.StrategyDisplayName(name),
			Default:     name == h.opponents.DefaultStrategy(),
		})
	}
	response.JSON(w, http.StatusOK, resp)
}
