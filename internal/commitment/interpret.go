package commitment

import (
	"fmt"

	"unit-commitment/internal/mip"
	"unit-commitment/internal/model"
)

// UnsolvedModelError reports an attempt to interpret a result that carries no
// solution. That is a contract violation by the caller, not a solver outcome.
type UnsolvedModelError struct {
	Status mip.Status
}

func (e *UnsolvedModelError) Error() string {
	return fmt.Sprintf("cannot interpret result with status %s", e.Status)
}

// Interpret turns a solved result into a caller-friendly dispatch schedule.
// Pure and side-effect free; fails with *UnsolvedModelError when the result
// has no solution.
func (inst *Instance) Interpret(res *SolutionResult) (*model.DispatchSchedule, error) {
	if !res.HasSolution() {
		status := mip.StatusNotSolved
		if res != nil {
			status = res.Status
		}
		return nil, &UnsolvedModelError{Status: status}
	}

	n := inst.horizon.Len()
	sched := &model.DispatchSchedule{
		Periods: make([]model.PeriodDecision, n),
	}
	cum := 0.0
	for p := 0; p < n; p++ {
		cost := inst.periods[p]
		profit := (cost.MarketPrice - cost.VariableCost) * res.ProductionMW[p]
		if res.StartUp[p] {
			profit -= inst.plant.StartUpCost
		}
		cum += profit

		event := model.EventNone
		switch {
		case res.StartUp[p]:
			event = model.EventStartUp
		case res.ShutDown[p]:
			event = model.EventShutDown
		}

		sched.Periods[p] = model.PeriodDecision{
			Index:        inst.horizon.Index(p),
			ProductionMW: res.ProductionMW[p],
			Operating:    res.Operating[p],
			StartUp:      res.StartUp[p],
			ShutDown:     res.ShutDown[p],
			State:        model.StateFromOperating(res.Operating[p]),
			Event:        event,
			Profit:       profit,
			CumProfit:    cum,
		}

		sched.EnergyMWh += res.ProductionMW[p]
		if res.Operating[p] {
			sched.PeriodsOn++
		}
		if res.StartUp[p] {
			sched.StartUps++
		}
		if res.ShutDown[p] {
			sched.ShutDowns++
		}
	}
	sched.TotalProfit = cum
	return sched, nil
}
