package mip

import "time"

// Status is the engine's final verdict on a solve attempt.
type Status string

const (
	StatusOptimal    Status = "OPTIMAL"
	StatusFeasible   Status = "FEASIBLE"
	StatusInfeasible Status = "INFEASIBLE"
	StatusUnbounded  Status = "UNBOUNDED"
	StatusAbnormal   Status = "ABNORMAL"
	StatusNotSolved  Status = "NOT_SOLVED"
)

// HasSolution reports whether a solve with this status carries an objective
// value and column assignments.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// SolveStats are diagnostic counters exposed for observability only;
// nothing should branch on them for correctness.
type SolveStats struct {
	Duration time.Duration
	Nodes    int
}

// Solution is the outcome of one solve invocation.
// Objective and ColValues are meaningful only when Status.HasSolution().
type Solution struct {
	Status    Status
	Objective float64
	ColValues []float64
	Stats     SolveStats
}

func (s *Solution) IsOptimal() bool    { return s.Status == StatusOptimal }
func (s *Solution) IsInfeasible() bool { return s.Status == StatusInfeasible }
func (s *Solution) IsUnbounded() bool  { return s.Status == StatusUnbounded }

// Value returns the assigned value of a column, or 0 when out of range.
func (s *Solution) Value(col int) float64 {
	if col < 0 || col >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[col]
}
