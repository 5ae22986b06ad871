package analysis

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"unit-commitment/internal/commitment"
	"unit-commitment/internal/mip"
	"unit-commitment/internal/model"
)

// CommitmentPotential is a scenario-level summary you can use for ranking.
// It combines raw price stats with the optimal profit of a canonical 1 MW
// plant (no minimum output, no start-up cost), so scores are comparable
// across scenarios regardless of plant sizing.
type CommitmentPotential struct {
	Scenario string

	Count int

	MinPrice     float64
	MaxPrice     float64
	MeanPrice    float64
	P05Price     float64
	P95Price     float64
	SpreadP95P05 float64

	// OptimalProfit is the objective of the canonical plant's optimal plan.
	OptimalProfit float64
}

var canonicalPlant = model.PlantParameters{
	MinOutputMW: 0,
	MaxOutputMW: 1,
	StartUpCost: 0,
}

func ComputePotential(ctx context.Context, solver mip.Solver, sc model.Scenario) (CommitmentPotential, error) {
	p := CommitmentPotential{Scenario: sc.Name}
	if len(sc.Periods) == 0 {
		return p, fmt.Errorf("scenario %q has no periods", sc.Name)
	}
	p.Count = len(sc.Periods)

	prices := make([]float64, len(sc.Periods))
	for i, row := range sc.Periods {
		prices[i] = row.MarketPrice
	}
	sort.Float64s(prices)
	p.MinPrice = prices[0]
	p.MaxPrice = prices[len(prices)-1]
	p.MeanPrice = stat.Mean(prices, nil)
	p.P05Price = stat.Quantile(0.05, stat.Empirical, prices, nil)
	p.P95Price = stat.Quantile(0.95, stat.Empirical, prices, nil)
	p.SpreadP95P05 = p.P95Price - p.P05Price

	horizon, err := sc.Horizon()
	if err != nil {
		return p, err
	}
	inst, err := commitment.Build(horizon, canonicalPlant, sc.PeriodParams())
	if err != nil {
		return p, err
	}
	res, err := inst.Solve(ctx, solver)
	if err != nil {
		return p, err
	}
	if !res.HasSolution() {
		return p, fmt.Errorf("scenario %q: canonical solve ended %s", sc.Name, res.Status)
	}
	p.OptimalProfit = res.Objective
	return p, nil
}
