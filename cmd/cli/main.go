package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unit-commitment/internal/analysis"
	"unit-commitment/internal/commitment"
	"unit-commitment/internal/config"
	"unit-commitment/internal/data"
	"unit-commitment/internal/mip/branchbound"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "plan":
		cmdPlan(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli plan --data scenarios.json --config examples/config.yaml --out results/schedule.csv")
	fmt.Println("  cli rank --data scenarios.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - plan outputs CSV with state=ON/OFF and start/shut events per period")
	fmt.Println("  - rank scores each scenario by a canonical 1 MW plant's optimal profit")
}

func cmdPlan(args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	dataPath := fs.String("data", "scenarios.json", "Path to scenario JSON file")
	scenario := fs.String("scenario", "", "Scenario name (required when the file holds several)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	timeout := fs.Duration("timeout", 30*time.Second, "Solve deadline")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	file, err := data.LoadScenarioJSON(*dataPath)
	if err != nil {
		panic(err)
	}
	sc, err := data.FindScenario(file, *scenario)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	horizon, err := sc.Horizon()
	if err != nil {
		panic(err)
	}
	var opts []commitment.Option
	if cfg.Plant.InitialOn != nil {
		opts = append(opts, commitment.WithInitialState(*cfg.Plant.InitialOn))
	}
	inst, err := commitment.Build(horizon, cfg.Plant.ToModelParams(), sc.PeriodParams(), opts...)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	res, err := inst.Solve(ctx, branchbound.New())
	if err != nil {
		panic(err)
	}
	if !res.HasSolution() {
		fmt.Printf("No solution: status=%s (nodes=%d, %s)\n", res.Status, res.Stats.Nodes, res.Stats.Duration)
		os.Exit(1)
	}

	sched, err := inst.Interpret(res)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := commitment.WriteScheduleCSV(*outPath, sched); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(sched.Periods), *outPath)
	fmt.Printf("Status=%s Objective=$%.2f Energy=%.1fMWh StartUps=%d\n",
		res.Status, res.Objective, sched.EnergyMWh, sched.StartUps)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	dataPath := fs.String("data", "scenarios.json", "Path to scenario JSON file")
	timeout := fs.Duration("timeout", 60*time.Second, "Deadline across all scenario solves")
	_ = fs.Parse(args)

	file, err := data.LoadScenarioJSON(*dataPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ranked := analysis.RankByOptimalProfit(ctx, branchbound.New(), data.GroupByName(file))
	fmt.Printf("%-4s %-18s %-8s %-10s %-10s %-12s\n", "rank", "scenario", "count", "p95-p05", "min/max", "oracle$")
	for i, r := range ranked {
		fmt.Printf(
			"%-4d %-18s %-8d %-10.2f %-5.1f/%-5.1f %-12.2f\n",
			i+1,
			r.Scenario,
			r.Count,
			r.SpreadP95P05,
			r.MinPrice,
			r.MaxPrice,
			r.OptimalProfit,
		)
	}
}
