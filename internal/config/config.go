package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"unit-commitment/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load plant parameters from a separate YAML (e.g. examples/plants/*.yaml).
	// If both PlantFile and Plant are provided, Plant overrides PlantFile.
	PlantFile string       `yaml:"plant_file"`
	Plant     PlantConfig  `yaml:"plant"`
	Solver    SolverConfig `yaml:"solver"`
}

type PlantConfig struct {
	Name        string  `yaml:"name"`
	MinOutputMW float64 `yaml:"min_output_mw"`
	MaxOutputMW float64 `yaml:"max_output_mw"`
	StartUpCost float64 `yaml:"start_up_cost"`

	// InitialOn, when set, switches the period-1 boundary from "unit starts
	// the horizon off" to an explicit prior operating state.
	InitialOn *bool `yaml:"initial_on"`
}

type SolverConfig struct {
	// Name selects the backend. Only "branchbound" ships in-tree.
	Name string `yaml:"name"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if c.Solver.Name == "" {
		c.Solver.Name = "branchbound"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If plant_file is set, load it and merge in any explicit overrides from c.Plant.
	if c.PlantFile != "" {
		plantPath := c.PlantFile
		if !filepath.IsAbs(plantPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), plantPath)
			if _, err := os.Stat(cand); err == nil {
				plantPath = cand
			}
		}
		loaded, err := loadPlantFile(plantPath)
		if err != nil {
			return nil, err
		}
		c.Plant = MergePlant(loaded, c.Plant)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Solver.Name != "branchbound" {
		return fmt.Errorf("unknown solver %q", c.Solver.Name)
	}
	if err := c.Plant.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("plant config invalid: %w", err)
	}
	return nil
}

func (p PlantConfig) ToModelParams() model.PlantParameters {
	return model.PlantParameters{
		MinOutputMW: p.MinOutputMW,
		MaxOutputMW: p.MaxOutputMW,
		StartUpCost: p.StartUpCost,
	}
}

type plantFileWrapper struct {
	Plant PlantConfig `yaml:"plant"`
}

func loadPlantFile(path string) (PlantConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PlantConfig{}, err
	}
	var w plantFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PlantConfig{}, err
	}
	return w.Plant, nil
}

// MergePlant overlays non-zero fields from override onto base.
// This is used when loading a plant file and then applying overrides from the request.
func MergePlant(base, override PlantConfig) PlantConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.MinOutputMW != 0 {
		out.MinOutputMW = override.MinOutputMW
	}
	if override.MaxOutputMW != 0 {
		out.MaxOutputMW = override.MaxOutputMW
	}
	if override.StartUpCost != 0 {
		out.StartUpCost = override.StartUpCost
	}
	if override.InitialOn != nil {
		out.InitialOn = override.InitialOn
	}
	return out
}
