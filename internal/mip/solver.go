package mip

import "context"

// Solver is the single external collaborator of the planner.
//
// Solve blocks until the engine terminates. Infeasible and unbounded models
// are ordinary Solution values, not errors; the error return is reserved for
// engine failures (a model the backend cannot represent, a crashed process).
// Implementations must not retain the model after returning.
type Solver interface {
	Name() string
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
