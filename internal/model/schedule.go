package model

// PeriodDecision captures what the plan does in one period.
type PeriodDecision struct {
	Index int

	ProductionMW float64
	Operating    bool
	StartUp      bool
	ShutDown     bool

	State State
	Event Event

	// Profit is the period's contribution to the objective:
	// (price - variable cost) * production - start-up cost if started.
	Profit    float64
	CumProfit float64
}

// DispatchSchedule is the caller-facing result of a solved commitment model:
// one decision per horizon period plus plan-level totals.
type DispatchSchedule struct {
	Periods []PeriodDecision

	TotalProfit float64
	EnergyMWh   float64
	StartUps    int
	ShutDowns   int
	PeriodsOn   int
}
