package analysis

import (
	"context"
	"sort"

	"unit-commitment/internal/mip"
	"unit-commitment/internal/model"
)

type RankedPotential struct {
	CommitmentPotential
}

// RankByOptimalProfit computes potentials per scenario and sorts descending
// by OptimalProfit. Scenarios that fail to score are skipped.
func RankByOptimalProfit(ctx context.Context, solver mip.Solver, byName map[string]model.Scenario) []RankedPotential {
	out := make([]RankedPotential, 0, len(byName))
	for _, sc := range byName {
		p, err := ComputePotential(ctx, solver, sc)
		if err != nil {
			continue
		}
		out = append(out, RankedPotential{CommitmentPotential: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OptimalProfit != out[j].OptimalProfit {
			return out[i].OptimalProfit > out[j].OptimalProfit
		}
		return out[i].Scenario < out[j].Scenario
	})
	return out
}
