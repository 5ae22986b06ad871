package model

// ScenarioFile matches the JSON shape of scenario data files.
//
// Example:
// {
//   "scenarios": [
//     {"name": "base", "periods": [{"index": 1, "variable_cost": 120, "market_price": 200}, ...]}
//   ]
// }
type ScenarioFile struct {
	Scenarios []Scenario `json:"scenarios"`
}

// Scenario is one named price/cost series.
type Scenario struct {
	Name    string      `json:"name"`
	Periods []PeriodRow `json:"periods"`
}

// PeriodRow is one period of a scenario as stored on disk.
type PeriodRow struct {
	Index        int     `json:"index"`
	VariableCost float64 `json:"variable_cost"`
	MarketPrice  float64 `json:"market_price"`
}

// Horizon derives the scenario's time horizon from its period rows.
func (s Scenario) Horizon() (*TimeHorizon, error) {
	indices := make([]int, len(s.Periods))
	for i, row := range s.Periods {
		indices[i] = row.Index
	}
	return NewTimeHorizon(indices)
}

// PeriodParams converts the rows into the map form the model builder takes.
func (s Scenario) PeriodParams() PeriodParameters {
	out := make(PeriodParameters, len(s.Periods))
	for _, row := range s.Periods {
		out[row.Index] = PeriodCost{VariableCost: row.VariableCost, MarketPrice: row.MarketPrice}
	}
	return out
}
