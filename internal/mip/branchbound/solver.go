// Package branchbound is a small exact MIP backend: depth-first
// branch-and-bound over the binary columns with interval propagation for the
// continuous ones.
//
// It handles the model class the commitment builder emits: each row may
// reference at most one distinct continuous column, so the continuous part
// reduces to intersecting intervals per column. Models outside that class are
// rejected with ErrUnsupportedModel instead of being approximated.
package branchbound

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"unit-commitment/internal/mip"
)

// ErrUnsupportedModel marks a model this backend cannot solve exactly.
var ErrUnsupportedModel = errors.New("branchbound: unsupported model")

const eps = 1e-9

type Solver struct{}

func New() *Solver { return &Solver{} }

func (s *Solver) Name() string { return "branchbound" }

// search carries the per-solve state. A fresh search is built per Solve call,
// so one Solver value may serve concurrent solves.
type search struct {
	m     *mip.Model
	costs []float64 // internal costs, always maximized
	sense float64   // +1 maximize, -1 minimize

	binCols []int
	vals    []float64
	fixed   []bool // binaries assigned by the current branch prefix

	// Per-node interval scratch, rewritten by every propagate call.
	lo []float64
	hi []float64

	nodes         int
	haveIncumbent bool
	incumbent     float64
	incumbentVals []float64
	unbounded     bool
	cancelled     bool
}

func (s *Solver) Solve(ctx context.Context, m *mip.Model) (*mip.Solution, error) {
	start := time.Now()
	if err := validate(m); err != nil {
		return nil, err
	}

	n := m.NumCols()
	sr := &search{
		m:     m,
		costs: make([]float64, n),
		sense: 1,
		vals:  make([]float64, n),
		fixed: make([]bool, n),
		lo:    make([]float64, n),
		hi:    make([]float64, n),
	}
	if !m.Maximize {
		sr.sense = -1
	}
	for c, col := range m.Cols {
		sr.costs[c] = sr.sense * col.Cost
	}
	for c, col := range m.Cols {
		if col.Type == mip.Binary {
			sr.binCols = append(sr.binCols, c)
		} else if col.Lower > col.Upper+eps {
			return &mip.Solution{
				Status: mip.StatusInfeasible,
				Stats:  mip.SolveStats{Duration: time.Since(start)},
			}, nil
		}
	}

	sr.branch(ctx, 0)

	sol := &mip.Solution{
		Stats: mip.SolveStats{Duration: time.Since(start), Nodes: sr.nodes},
	}
	switch {
	case sr.unbounded:
		sol.Status = mip.StatusUnbounded
	case sr.cancelled && sr.haveIncumbent:
		// Interrupted with an incumbent in hand: feasible, not proven optimal.
		sol.Status = mip.StatusFeasible
	case sr.cancelled:
		sol.Status = mip.StatusAbnormal
	case sr.haveIncumbent:
		sol.Status = mip.StatusOptimal
	default:
		sol.Status = mip.StatusInfeasible
	}
	if sol.Status.HasSolution() {
		sol.Objective = sr.sense * sr.incumbent
		sol.ColValues = sr.incumbentVals
	}
	return sol, nil
}

func validate(m *mip.Model) error {
	for r, row := range m.Rows {
		if len(row.Cols) != len(row.Vals) {
			return fmt.Errorf("row %d: %d cols but %d coefficients", r, len(row.Cols), len(row.Vals))
		}
		cont := -1
		for _, c := range row.Cols {
			if c < 0 || c >= m.NumCols() {
				return fmt.Errorf("row %d: column %d out of range", r, c)
			}
			if m.Cols[c].Type == mip.Continuous {
				if cont >= 0 && cont != c {
					return fmt.Errorf("%w: row %d couples continuous columns %d and %d", ErrUnsupportedModel, r, cont, c)
				}
				cont = c
			}
		}
	}
	return nil
}

// branch fixes binCols[depth..] depth-first, trying 0 before 1. Every node
// re-propagates the rows under the current prefix, cutting partial
// assignments that already violate a row and subtrees whose optimistic bound
// cannot strictly beat the incumbent. Ties between equally good leaves
// resolve to the first one found, which makes the returned assignment
// deterministic for a given model.
func (sr *search) branch(ctx context.Context, depth int) {
	if sr.unbounded || sr.cancelled {
		return
	}
	select {
	case <-ctx.Done():
		sr.cancelled = true
		return
	default:
	}

	sr.nodes++
	feasible, bound := sr.propagate()
	if !feasible {
		return
	}
	if sr.haveIncumbent && bound <= sr.incumbent {
		return
	}
	if depth == len(sr.binCols) {
		sr.record()
		return
	}

	c := sr.binCols[depth]
	sr.fixed[c] = true
	for _, v := range [2]float64{0, 1} {
		sr.vals[c] = v
		sr.branch(ctx, depth+1)
		if sr.unbounded || sr.cancelled {
			break
		}
	}
	sr.fixed[c] = false
}

// propagate intersects, for every continuous column, the intervals the rows
// imply under the current partial assignment. Unfixed binaries enter each row
// with their loosest contribution, so a reported violation holds for every
// completion of the prefix. The second return is an optimistic objective
// bound: fixed binaries contribute their assignment, free binaries their best
// case, continuous columns their best propagated interval end.
func (sr *search) propagate() (bool, float64) {
	cols := sr.m.Cols
	for c, col := range cols {
		sr.lo[c], sr.hi[c] = col.Lower, col.Upper
	}

	for _, row := range sr.m.Rows {
		kmin, kmax := 0.0, 0.0
		contCol := -1
		contCoeff := 0.0
		for i, c := range row.Cols {
			coeff := row.Vals[i]
			if cols[c].Type == mip.Binary {
				if sr.fixed[c] {
					kmin += coeff * sr.vals[c]
					kmax += coeff * sr.vals[c]
				} else if coeff > 0 {
					kmax += coeff
				} else {
					kmin += coeff
				}
			} else {
				// Repeated references to one column accumulate.
				contCol = c
				contCoeff += coeff
			}
		}
		if contCol < 0 || contCoeff == 0 {
			if kmin > row.Upper+eps || kmax < row.Lower-eps {
				return false, 0
			}
			continue
		}
		// a*x must be able to land in [Lower-kmax, Upper-kmin].
		rl, ru := row.Lower-kmax, row.Upper-kmin
		var xl, xu float64
		if contCoeff > 0 {
			xl, xu = rl/contCoeff, ru/contCoeff
		} else {
			xl, xu = ru/contCoeff, rl/contCoeff
		}
		if xl > sr.lo[contCol] {
			sr.lo[contCol] = xl
		}
		if xu < sr.hi[contCol] {
			sr.hi[contCol] = xu
		}
		if sr.lo[contCol] > sr.hi[contCol]+eps {
			return false, 0
		}
	}

	b := 0.0
	for _, c := range sr.binCols {
		cost := sr.costs[c]
		if sr.fixed[c] {
			b += cost * sr.vals[c]
		} else if cost > 0 {
			b += cost
		}
	}
	for c, col := range cols {
		if col.Type != mip.Continuous {
			continue
		}
		cost := sr.costs[c]
		switch {
		case cost > eps:
			b += cost * sr.hi[c]
		case cost < -eps:
			b += cost * sr.lo[c]
		}
	}
	return true, b
}

// record completes the current leaf. At full depth the propagated intervals
// are exact, so each continuous column is set to its best feasible end.
func (sr *search) record() {
	for c, col := range sr.m.Cols {
		if col.Type != mip.Continuous {
			continue
		}
		cost := sr.costs[c]
		switch {
		case cost > eps:
			if math.IsInf(sr.hi[c], 1) {
				sr.unbounded = true
				return
			}
			sr.vals[c] = sr.hi[c]
		case cost < -eps:
			if math.IsInf(sr.lo[c], -1) {
				sr.unbounded = true
				return
			}
			sr.vals[c] = sr.lo[c]
		default:
			// Objective is indifferent; pick a finite feasible point.
			switch {
			case !math.IsInf(sr.lo[c], -1):
				sr.vals[c] = sr.lo[c]
			case !math.IsInf(sr.hi[c], 1):
				sr.vals[c] = sr.hi[c]
			default:
				sr.vals[c] = 0
			}
		}
	}

	obj := floats.Dot(sr.costs, sr.vals)
	if !sr.haveIncumbent || obj > sr.incumbent {
		sr.haveIncumbent = true
		sr.incumbent = obj
		sr.incumbentVals = append(sr.incumbentVals[:0], sr.vals...)
	}
}
