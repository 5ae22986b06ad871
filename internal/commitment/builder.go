// Package commitment builds single-unit commitment/dispatch models, hands
// them to a mip.Solver and turns solutions back into dispatch schedules.
package commitment

import (
	"unit-commitment/internal/mip"
	"unit-commitment/internal/model"
)

// Option adjusts how the model is built.
type Option func(*buildConfig)

type buildConfig struct {
	explicitInitial bool
	initialOn       bool
}

// WithInitialState replaces the default period-1 boundary (the unit begins
// the horizon off, so any period-1 commitment is a start-up) with an explicit
// prior operating state: operating[first] = initial + startUp[first] -
// shutDown[first].
func WithInitialState(on bool) Option {
	return func(c *buildConfig) {
		c.explicitInitial = true
		c.initialOn = on
	}
}

// Instance is one fully constructed commitment model: the mip.Model plus the
// dense column layout tying horizon positions to decision variables. Build it
// once, solve it once, then only read from it. Instances share nothing, so
// callers may build and solve several concurrently.
type Instance struct {
	horizon *model.TimeHorizon
	plant   model.PlantParameters
	periods []model.PeriodCost // dense, by horizon position

	mipModel *mip.Model

	// Column arenas, indexed by horizon position.
	prodCols  []int
	onCols    []int
	startCols []int
	stopCols  []int
}

// Build validates the inputs and constructs the model. It never contacts a
// solver; invalid inputs fail fast with *model.InvalidParameterError.
//
// Per period t the model carries
//
//	operating[t]*minOutput <= production[t] <= operating[t]*maxOutput
//	operating[t] = operating[t-1] + startUp[t] - shutDown[t]   (t > first)
//
// and maximizes sum((price[t]-variableCost[t])*production[t] -
// startUpCost*startUp[t]). Shut-downs cost nothing.
func Build(horizon *model.TimeHorizon, plant model.PlantParameters, periods model.PeriodParameters, opts ...Option) (*Instance, error) {
	if horizon.Len() == 0 {
		return nil, &model.InvalidParameterError{Field: "horizon", Reason: "must contain at least one period"}
	}
	if err := plant.Validate(); err != nil {
		return nil, err
	}

	n := horizon.Len()
	inst := &Instance{
		horizon:   horizon,
		plant:     plant,
		periods:   make([]model.PeriodCost, n),
		prodCols:  make([]int, n),
		onCols:    make([]int, n),
		startCols: make([]int, n),
		stopCols:  make([]int, n),
	}
	for p, idx := range horizon.Indices() {
		cost, ok := periods[idx]
		if !ok {
			return nil, &model.InvalidParameterError{Field: "periods", Reason: "missing entry for a horizon period"}
		}
		if err := cost.Validate(); err != nil {
			return nil, err
		}
		inst.periods[p] = cost
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := mip.NewModel(true)
	for p := 0; p < n; p++ {
		margin := inst.periods[p].MarketPrice - inst.periods[p].VariableCost
		inst.prodCols[p] = m.AddContinuousCol(margin, 0, plant.MaxOutputMW)
		inst.onCols[p] = m.AddBinaryCol(0)
		inst.startCols[p] = m.AddBinaryCol(-plant.StartUpCost)
		inst.stopCols[p] = m.AddBinaryCol(0)
	}

	for p := 0; p < n; p++ {
		// The commitment binary gates both production bounds; with
		// minOutput > 0 the continuous bound alone could not force
		// production to zero when the unit is off.
		m.AddGeRow(
			[]int{inst.prodCols[p], inst.onCols[p]},
			[]float64{1, -plant.MinOutputMW},
			0,
		)
		m.AddLeRow(
			[]int{inst.prodCols[p], inst.onCols[p]},
			[]float64{1, -plant.MaxOutputMW},
			0,
		)

		if p == 0 {
			if cfg.explicitInitial {
				initial := 0.0
				if cfg.initialOn {
					initial = 1
				}
				m.AddEqRow(
					[]int{inst.onCols[0], inst.startCols[0], inst.stopCols[0]},
					[]float64{1, -1, 1},
					initial,
				)
			} else {
				m.AddEqRow(
					[]int{inst.onCols[0], inst.startCols[0]},
					[]float64{1, -1},
					0,
				)
			}
			continue
		}
		m.AddEqRow(
			[]int{inst.onCols[p], inst.onCols[p-1], inst.startCols[p], inst.stopCols[p]},
			[]float64{1, -1, -1, 1},
			0,
		)
	}

	inst.mipModel = m
	return inst, nil
}

func (inst *Instance) Horizon() *model.TimeHorizon  { return inst.horizon }
func (inst *Instance) Plant() model.PlantParameters { return inst.plant }

// Model exposes the underlying mip.Model, mainly for diagnostics and tests.
func (inst *Instance) Model() *mip.Model { return inst.mipModel }
