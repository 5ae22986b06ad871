package models

// PlanRequest represents the request body for solving a commitment plan
type PlanRequest struct {
	Plant   PlantConfig `json:"plant" binding:"required"`
	Periods []PeriodRow `json:"periods" binding:"required"`
	Options PlanOptions `json:"options,omitempty"`
}

// PlantConfig defines plant parameters
type PlantConfig struct {
	Name        string  `json:"name,omitempty"`
	MinOutputMW float64 `json:"min_output_mw"`
	MaxOutputMW float64 `json:"max_output_mw"`
	StartUpCost float64 `json:"start_up_cost,omitempty"`
	InitialOn   *bool   `json:"initial_on,omitempty"`
}

// PeriodRow is one period of the request's price scenario
type PeriodRow struct {
	Index        int     `json:"index"`
	VariableCost float64 `json:"variable_cost"`
	MarketPrice  float64 `json:"market_price"`
}

// PlanOptions contains optional plan parameters
type PlanOptions struct {
	IncludeSchedule bool `json:"include_schedule,omitempty"` // default: false
}

// RankRequest represents a request to rank scenarios
type RankRequest struct {
	Data  string `form:"data" binding:"required"` // path to a scenario JSON file
	Limit int    `form:"limit,omitempty"`         // default: 10
}
