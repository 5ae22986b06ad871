package commitment

import (
	"context"
	"fmt"

	"unit-commitment/internal/mip"
)

// SolutionResult is the outcome of one solve. The per-period slices and
// Objective are populated only when Status.HasSolution(); an infeasible or
// unbounded model is a legitimate answer, not an error.
type SolutionResult struct {
	Status    mip.Status
	Objective float64

	ProductionMW []float64
	Operating    []bool
	StartUp      []bool
	ShutDown     []bool

	Stats mip.SolveStats
}

// HasSolution reports whether the result carries variable values.
func (r *SolutionResult) HasSolution() bool {
	return r != nil && r.Status.HasSolution()
}

// Solve submits the instance to the solver and maps the engine's answer into
// a SolutionResult. The call blocks for as long as the engine runs; cancel
// through ctx if the backend supports it. No retries: a failed or infeasible
// solve is reported as-is.
func (inst *Instance) Solve(ctx context.Context, solver mip.Solver) (*SolutionResult, error) {
	if solver == nil {
		return nil, fmt.Errorf("solver is nil")
	}
	sol, err := solver.Solve(ctx, inst.mipModel)
	if err != nil {
		return nil, fmt.Errorf("solver %s: %w", solver.Name(), err)
	}

	res := &SolutionResult{
		Status: sol.Status,
		Stats:  sol.Stats,
	}
	if !sol.Status.HasSolution() {
		return res, nil
	}

	n := inst.horizon.Len()
	res.Objective = sol.Objective
	res.ProductionMW = make([]float64, n)
	res.Operating = make([]bool, n)
	res.StartUp = make([]bool, n)
	res.ShutDown = make([]bool, n)
	for p := 0; p < n; p++ {
		res.ProductionMW[p] = sol.Value(inst.prodCols[p])
		res.Operating[p] = sol.Value(inst.onCols[p]) > 0.5
		res.StartUp[p] = sol.Value(inst.startCols[p]) > 0.5
		res.ShutDown[p] = sol.Value(inst.stopCols[p]) > 0.5
	}
	return res, nil
}
