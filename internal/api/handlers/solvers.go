package handlers

import (
	"net/http"

	"unit-commitment/internal/api/models"

	"github.com/gin-gonic/gin"
)

// SolverHandler handles solver-listing requests
type SolverHandler struct{}

// NewSolverHandler creates a new solver handler
func NewSolverHandler() *SolverHandler {
	return &SolverHandler{}
}

// ListSolvers handles GET /api/v1/solvers
func (h *SolverHandler) ListSolvers(c *gin.Context) {
	solvers := []models.SolverInfo{
		{
			Name:        "branchbound",
			Description: "Exact in-process branch-and-bound over the commitment binaries. Deterministic: identical models yield identical plans.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"solvers": solvers})
}
