package models

// PlanResponse represents the response from a plan run
type PlanResponse struct {
	ID       string           `json:"id,omitempty"`
	Status   string           `json:"status"`
	Summary  *PlanSummary     `json:"summary,omitempty"`
	Schedule []ScheduleRow    `json:"schedule,omitempty"`
	Stats    SolveDiagnostics `json:"stats"`
}

// PlanSummary contains aggregated plan results
type PlanSummary struct {
	Objective    float64 `json:"objective"`
	EnergyMWh    float64 `json:"energy_mwh"`
	PeriodsOn    int     `json:"periods_on"`
	StartUps     int     `json:"start_ups"`
	ShutDowns    int     `json:"shut_downs"`
	TotalPeriods int     `json:"total_periods"`
}

// ScheduleRow represents one period in the dispatch schedule
type ScheduleRow struct {
	Index        int     `json:"index"`
	State        string  `json:"state"` // "ON", "OFF"
	Event        string  `json:"event,omitempty"`
	ProductionMW float64 `json:"production_mw"`
	Profit       float64 `json:"profit"`
	CumProfit    float64 `json:"cum_profit"`
}

// SolveDiagnostics carries solver observability counters
type SolveDiagnostics struct {
	Solver     string  `json:"solver"`
	DurationMS float64 `json:"duration_ms"`
	Nodes      int     `json:"nodes"`
}

// RankResponse represents the response from ranking scenarios
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked scenario
type Ranking struct {
	Rank          int     `json:"rank"`
	Scenario      string  `json:"scenario"`
	Count         int     `json:"count"`
	SpreadP95P05  float64 `json:"spread_p95_p05"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	OptimalProfit float64 `json:"optimal_profit"`
}

// PlantInfo represents information about a plant preset
type PlantInfo struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	File  string     `json:"file"`
	Specs PlantSpecs `json:"specs"`
}

// PlantSpecs contains plant specifications
type PlantSpecs struct {
	MinOutputMW float64 `json:"min_output_mw"`
	MaxOutputMW float64 `json:"max_output_mw"`
	StartUpCost float64 `json:"start_up_cost"`
}

// SolverInfo represents information about a solver backend
type SolverInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
