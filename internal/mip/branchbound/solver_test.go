package branchbound

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-commitment/internal/mip"
)

func solve(t *testing.T, m *mip.Model) *mip.Solution {
	t.Helper()
	sol, err := New().Solve(context.Background(), m)
	require.NoError(t, err)
	return sol
}

func TestSolveBoxLP(t *testing.T) {
	// maximize 2x - y over x in [0,10], y in [1,5]: x=10, y=1.
	m := mip.NewModel(true)
	x := m.AddContinuousCol(2, 0, 10)
	y := m.AddContinuousCol(-1, 1, 5)

	sol := solve(t, m)
	require.True(t, sol.IsOptimal())
	assert.Equal(t, 19.0, sol.Objective)
	assert.Equal(t, 10.0, sol.Value(x))
	assert.Equal(t, 1.0, sol.Value(y))
}

func TestSolveMinimize(t *testing.T) {
	// minimize 3x over x in [2, 7]: x=2.
	m := mip.NewModel(false)
	x := m.AddContinuousCol(3, 2, 7)

	sol := solve(t, m)
	require.True(t, sol.IsOptimal())
	assert.Equal(t, 6.0, sol.Objective)
	assert.Equal(t, 2.0, sol.Value(x))
}

func TestSolveBinaryKnapsack(t *testing.T) {
	// maximize 5a + 4b + 3c subject to a + b + c <= 2.
	m := mip.NewModel(true)
	a := m.AddBinaryCol(5)
	b := m.AddBinaryCol(4)
	c := m.AddBinaryCol(3)
	m.AddLeRow([]int{a, b, c}, []float64{1, 1, 1}, 2)

	sol := solve(t, m)
	require.Equal(t, mip.StatusOptimal, sol.Status)
	assert.Equal(t, 9.0, sol.Objective)
	assert.Equal(t, 1.0, sol.Value(a))
	assert.Equal(t, 1.0, sol.Value(b))
	assert.Equal(t, 0.0, sol.Value(c))
	assert.Greater(t, sol.Stats.Nodes, 0)
}

func TestSolveGatedContinuous(t *testing.T) {
	// maximize 2x + 3a with x <= 5a: a=1 opens x up to 5.
	m := mip.NewModel(true)
	x := m.AddContinuousCol(2, 0, 10)
	a := m.AddBinaryCol(3)
	m.AddLeRow([]int{x, a}, []float64{1, -5}, 0)

	sol := solve(t, m)
	require.Equal(t, mip.StatusOptimal, sol.Status)
	assert.Equal(t, 13.0, sol.Objective)
	assert.Equal(t, 5.0, sol.Value(x))
	assert.Equal(t, 1.0, sol.Value(a))
}

func TestSolveInfeasible(t *testing.T) {
	// Two binaries cannot sum to 3.
	m := mip.NewModel(true)
	a := m.AddBinaryCol(1)
	b := m.AddBinaryCol(1)
	m.AddEqRow([]int{a, b}, []float64{1, 1}, 3)

	sol := solve(t, m)
	assert.True(t, sol.IsInfeasible())
	assert.Nil(t, sol.ColValues)
}

func TestSolveInfeasibleBounds(t *testing.T) {
	m := mip.NewModel(true)
	m.AddContinuousCol(1, 5, 2)

	sol := solve(t, m)
	assert.True(t, sol.IsInfeasible())
}

func TestSolveUnbounded(t *testing.T) {
	m := mip.NewModel(true)
	m.AddContinuousCol(1, 0, math.Inf(1))

	sol := solve(t, m)
	assert.True(t, sol.IsUnbounded())
	assert.Nil(t, sol.ColValues)
}

func TestSolvePrunesInfeasiblePrefixes(t *testing.T) {
	// The equality over the first two binaries can never reach 3, so the
	// trailing binaries must not be enumerated at all.
	m := mip.NewModel(true)
	a := m.AddBinaryCol(1)
	b := m.AddBinaryCol(1)
	for i := 0; i < 20; i++ {
		m.AddBinaryCol(1)
	}
	m.AddEqRow([]int{a, b}, []float64{1, 1}, 3)

	sol := solve(t, m)
	assert.True(t, sol.IsInfeasible())
	assert.Less(t, sol.Stats.Nodes, 8)
}

func TestSolveRepeatedColumnInRow(t *testing.T) {
	// The same continuous column twice in one row accumulates: 2x <= 10.
	m := mip.NewModel(true)
	x := m.AddContinuousCol(1, 0, 10)
	m.AddLeRow([]int{x, x}, []float64{1, 1}, 10)

	sol := solve(t, m)
	require.True(t, sol.IsOptimal())
	assert.Equal(t, 5.0, sol.Objective)
	assert.Equal(t, 5.0, sol.Value(x))
}

func TestSolveUnsupportedModel(t *testing.T) {
	// Two continuous columns coupled in one row.
	m := mip.NewModel(true)
	x := m.AddContinuousCol(1, 0, 10)
	y := m.AddContinuousCol(1, 0, 10)
	m.AddLeRow([]int{x, y}, []float64{1, 1}, 5)

	_, err := New().Solve(context.Background(), m)
	require.ErrorIs(t, err, ErrUnsupportedModel)
}

func TestSolveCancelled(t *testing.T) {
	m := mip.NewModel(true)
	a := m.AddBinaryCol(1)
	m.AddLeRow([]int{a}, []float64{1}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := New().Solve(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, mip.StatusAbnormal, sol.Status)
}

func TestSolveEmptyModel(t *testing.T) {
	sol := solve(t, mip.NewModel(true))
	require.Equal(t, mip.StatusOptimal, sol.Status)
	assert.Equal(t, 0.0, sol.Objective)
}

func TestSolveTieBreaksDeterministically(t *testing.T) {
	// a and b contribute nothing; the first leaf (all zeros) must win.
	m := mip.NewModel(true)
	a := m.AddBinaryCol(0)
	b := m.AddBinaryCol(0)

	for i := 0; i < 5; i++ {
		sol := solve(t, m)
		require.Equal(t, mip.StatusOptimal, sol.Status)
		assert.Equal(t, 0.0, sol.Value(a))
		assert.Equal(t, 0.0, sol.Value(b))
	}
}
