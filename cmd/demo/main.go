package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"unit-commitment/internal/commitment"
	"unit-commitment/internal/mip/branchbound"
	"unit-commitment/internal/model"
)

// Demo:
// - Build the canonical 3-period example (expensive middle period)
// - Solve it with the in-tree branch-and-bound backend
// - Print the schedule to show how the pieces fit together
func main() {
	outCSV := flag.String("out", "", "Optional path to write schedule CSV (e.g. results/schedule.csv)")
	flag.Parse()

	plant := model.PlantParameters{
		MinOutputMW: 10,
		MaxOutputMW: 100,
		StartUpCost: 10,
	}

	horizon, err := model.SequentialHorizon(3)
	if err != nil {
		panic(err)
	}
	periods, err := model.UniformPeriods(horizon, 120, []float64{200, 100, 200})
	if err != nil {
		panic(err)
	}

	inst, err := commitment.Build(horizon, plant, periods)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	res, err := inst.Solve(ctx, branchbound.New())
	if err != nil {
		panic(err)
	}
	fmt.Printf("Status=%s  Objective=$%.2f  (nodes=%d, %s)\n\n",
		res.Status, res.Objective, res.Stats.Nodes, res.Stats.Duration)

	sched, err := inst.Interpret(res)
	if err != nil {
		panic(err)
	}

	for _, d := range sched.Periods {
		fmt.Printf(
			"t=%d  state=%-3s  event=%-9s  p=%7.2fMW  profit=%8.2f  cum=%8.2f\n",
			d.Index,
			string(d.State),
			string(d.Event),
			d.ProductionMW,
			d.Profit,
			d.CumProfit,
		)
	}

	if *outCSV != "" {
		if err := commitment.WriteScheduleCSV(*outCSV, sched); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Energy=%.1fMWh  StartUps=%d  Total profit=$%.2f\n",
		sched.EnergyMWh, sched.StartUps, sched.TotalProfit)
}
