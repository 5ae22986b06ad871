package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"unit-commitment/internal/api/middleware"
	"unit-commitment/internal/api/models"
	"unit-commitment/internal/commitment"
	"unit-commitment/internal/mip"
	"unit-commitment/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// solveTimeout bounds a single solver run so oversized request models get a
// FEASIBLE-or-ABNORMAL answer instead of holding the connection open.
const solveTimeout = 30 * time.Second

// PlanHandler handles commitment-plan requests
type PlanHandler struct {
	solver mip.Solver
	log    zerolog.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(solver mip.Solver) *PlanHandler {
	return &PlanHandler{
		solver: solver,
		log:    middleware.NewLogger("plan"),
	}
}

// RunPlan handles POST /api/v1/plan
func (h *PlanHandler) RunPlan(c *gin.Context) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inst, err := buildInstance(req)
	if err != nil {
		var invalid *model.InvalidParameterError
		code := "INVALID_REQUEST"
		if errors.As(err, &invalid) {
			code = "INVALID_PARAMETER"
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), solveTimeout)
	defer cancel()
	res, err := inst.Solve(ctx, h.solver)
	if err != nil {
		h.log.Error().Err(err).Msg("solve failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SOLVER_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.PlanResponse{
		ID:     uuid.New().String(),
		Status: string(res.Status),
		Stats: models.SolveDiagnostics{
			Solver:     h.solver.Name(),
			DurationMS: float64(res.Stats.Duration.Microseconds()) / 1000.0,
			Nodes:      res.Stats.Nodes,
		},
	}

	// Infeasible/unbounded plans are ordinary answers, returned with 200.
	if !res.HasSolution() {
		h.log.Info().Str("status", string(res.Status)).Msg("plan without solution")
		c.JSON(http.StatusOK, resp)
		return
	}

	sched, err := inst.Interpret(res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERPRET_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp.Summary = &models.PlanSummary{
		Objective:    res.Objective,
		EnergyMWh:    sched.EnergyMWh,
		PeriodsOn:    sched.PeriodsOn,
		StartUps:     sched.StartUps,
		ShutDowns:    sched.ShutDowns,
		TotalPeriods: len(sched.Periods),
	}
	if req.Options.IncludeSchedule {
		resp.Schedule = scheduleRows(sched)
	}

	h.log.Info().
		Str("id", resp.ID).
		Str("status", resp.Status).
		Float64("objective", res.Objective).
		Int("nodes", res.Stats.Nodes).
		Msg("plan solved")
	c.JSON(http.StatusOK, resp)
}

func buildInstance(req models.PlanRequest) (*commitment.Instance, error) {
	indices := make([]int, len(req.Periods))
	periods := make(model.PeriodParameters, len(req.Periods))
	for i, row := range req.Periods {
		indices[i] = row.Index
		periods[row.Index] = model.PeriodCost{
			VariableCost: row.VariableCost,
			MarketPrice:  row.MarketPrice,
		}
	}
	horizon, err := model.NewTimeHorizon(indices)
	if err != nil {
		return nil, err
	}

	plant := model.PlantParameters{
		MinOutputMW: req.Plant.MinOutputMW,
		MaxOutputMW: req.Plant.MaxOutputMW,
		StartUpCost: req.Plant.StartUpCost,
	}
	var opts []commitment.Option
	if req.Plant.InitialOn != nil {
		opts = append(opts, commitment.WithInitialState(*req.Plant.InitialOn))
	}
	return commitment.Build(horizon, plant, periods, opts...)
}

func scheduleRows(sched *model.DispatchSchedule) []models.ScheduleRow {
	rows := make([]models.ScheduleRow, len(sched.Periods))
	for i, d := range sched.Periods {
		rows[i] = models.ScheduleRow{
			Index:        d.Index,
			State:        string(d.State),
			Event:        string(d.Event),
			ProductionMW: d.ProductionMW,
			Profit:       d.Profit,
			CumProfit:    d.CumProfit,
		}
	}
	return rows
}
