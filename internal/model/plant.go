package model

import "math"

// PlantParameters defines the physical and economic constants of a single
// generating unit.
// Units:
// - MinOutputMW / MaxOutputMW: MW
// - StartUpCost: currency per start event
type PlantParameters struct {
	MinOutputMW float64
	MaxOutputMW float64
	StartUpCost float64
}

func (p PlantParameters) Validate() error {
	if !isFinite(p.MinOutputMW) || !isFinite(p.MaxOutputMW) || !isFinite(p.StartUpCost) {
		return &InvalidParameterError{Field: "plant", Reason: "parameters must be finite"}
	}
	if p.MinOutputMW < 0 {
		return &InvalidParameterError{Field: "plant.min_output_mw", Reason: "must be >= 0"}
	}
	if p.MaxOutputMW <= p.MinOutputMW {
		return &InvalidParameterError{Field: "plant.max_output_mw", Reason: "must be > min_output_mw"}
	}
	if p.StartUpCost < 0 {
		return &InvalidParameterError{Field: "plant.start_up_cost", Reason: "must be >= 0"}
	}
	return nil
}

// PeriodCost holds the per-period economics of one horizon period.
// Both values are currency/MWh. MarketPrice may be negative.
type PeriodCost struct {
	VariableCost float64
	MarketPrice  float64
}

func (c PeriodCost) Validate() error {
	if !isFinite(c.VariableCost) || !isFinite(c.MarketPrice) {
		return &InvalidParameterError{Field: "period", Reason: "cost and price must be finite"}
	}
	if c.VariableCost < 0 {
		return &InvalidParameterError{Field: "period.variable_cost", Reason: "must be >= 0"}
	}
	return nil
}

// PeriodParameters maps every period index of a horizon to its economics.
// Entries for indices outside the horizon are ignored.
type PeriodParameters map[int]PeriodCost

// UniformPeriods builds PeriodParameters with the same variable cost across
// the horizon and one market price per period, in horizon order.
func UniformPeriods(h *TimeHorizon, variableCost float64, prices []float64) (PeriodParameters, error) {
	if h.Len() != len(prices) {
		return nil, &InvalidParameterError{Field: "prices", Reason: "must supply one price per horizon period"}
	}
	out := make(PeriodParameters, h.Len())
	for p, idx := range h.indices {
		out[idx] = PeriodCost{VariableCost: variableCost, MarketPrice: prices[p]}
	}
	return out, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
