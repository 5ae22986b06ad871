// Package mip defines the mixed-integer-programming capability the planner
// consumes: declare bounded continuous and binary columns, add linear rows,
// solve, read back a status, objective and column values. Any engine that
// can do that (the in-tree branch-and-bound backend, a HiGHS binding, ...)
// can sit behind the Solver interface.
package mip

import "math"

// Col is one decision variable.
type Col struct {
	Cost  float64 // objective coefficient
	Lower float64
	Upper float64
	Type  VarType
}

// Row is one linear constraint Lower <= sum(Vals[i] * x[Cols[i]]) <= Upper.
// Coefficients are stored sparse, in column order of registration.
type Row struct {
	Lower float64
	Upper float64
	Cols  []int
	Vals  []float64
}

type VarType int

const (
	Continuous VarType = iota
	Binary
)

// Model is a linear objective plus linear rows over registered columns.
// Build it column by column, then hand it to a Solver. A Model is plain
// data; it holds no engine state and is safe to build concurrently with
// other models.
type Model struct {
	Maximize bool
	Cols     []Col
	Rows     []Row
}

func NewModel(maximize bool) *Model {
	return &Model{Maximize: maximize}
}

// AddContinuousCol registers a continuous variable with [lower, upper]
// bounds and returns its column index.
func (m *Model) AddContinuousCol(cost, lower, upper float64) int {
	m.Cols = append(m.Cols, Col{Cost: cost, Lower: lower, Upper: upper, Type: Continuous})
	return len(m.Cols) - 1
}

// AddBinaryCol registers a {0,1} variable and returns its column index.
func (m *Model) AddBinaryCol(cost float64) int {
	m.Cols = append(m.Cols, Col{Cost: cost, Lower: 0, Upper: 1, Type: Binary})
	return len(m.Cols) - 1
}

// AddEqRow adds sum(vals * x[cols]) = rhs.
func (m *Model) AddEqRow(cols []int, vals []float64, rhs float64) {
	m.addRow(rhs, cols, vals, rhs)
}

// AddLeRow adds sum(vals * x[cols]) <= rhs.
func (m *Model) AddLeRow(cols []int, vals []float64, rhs float64) {
	m.addRow(math.Inf(-1), cols, vals, rhs)
}

// AddGeRow adds sum(vals * x[cols]) >= rhs.
func (m *Model) AddGeRow(cols []int, vals []float64, rhs float64) {
	m.addRow(rhs, cols, vals, math.Inf(1))
}

func (m *Model) addRow(lower float64, cols []int, vals []float64, upper float64) {
	row := Row{
		Lower: lower,
		Upper: upper,
		Cols:  make([]int, len(cols)),
		Vals:  make([]float64, len(vals)),
	}
	copy(row.Cols, cols)
	copy(row.Vals, vals)
	m.Rows = append(m.Rows, row)
}

func (m *Model) NumCols() int { return len(m.Cols) }
func (m *Model) NumRows() int { return len(m.Rows) }
