package handlers

import (
	"context"
	"net/http"

	"unit-commitment/internal/analysis"
	"unit-commitment/internal/api/middleware"
	"unit-commitment/internal/api/models"
	"unit-commitment/internal/data"
	"unit-commitment/internal/mip"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RankHandler handles scenario-ranking requests
type RankHandler struct {
	solver mip.Solver
	log    zerolog.Logger
}

// NewRankHandler creates a new rank handler
func NewRankHandler(solver mip.Solver) *RankHandler {
	return &RankHandler{
		solver: solver,
		log:    middleware.NewLogger("rank"),
	}
}

// RankScenarios handles GET /api/v1/rank
func (h *RankHandler) RankScenarios(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	file, err := data.LoadScenarioJSON(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), solveTimeout)
	defer cancel()
	ranked := analysis.RankByOptimalProfit(ctx, h.solver, data.GroupByName(file))
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	resp := models.RankResponse{Rankings: make([]models.Ranking, len(ranked))}
	for i, r := range ranked {
		resp.Rankings[i] = models.Ranking{
			Rank:          i + 1,
			Scenario:      r.Scenario,
			Count:         r.Count,
			SpreadP95P05:  r.SpreadP95P05,
			MinPrice:      r.MinPrice,
			MaxPrice:      r.MaxPrice,
			OptimalProfit: r.OptimalProfit,
		}
	}

	h.log.Info().Int("scenarios", len(resp.Rankings)).Str("data", req.Data).Msg("ranked scenarios")
	c.JSON(http.StatusOK, resp)
}
