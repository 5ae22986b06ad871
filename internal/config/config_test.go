package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `plant:
  name: "peaker"
  min_output_mw: 10
  max_output_mw: 100
  start_up_cost: 10
solver:
  name: "branchbound"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "peaker", cfg.Plant.Name)
	assert.Equal(t, 10.0, cfg.Plant.MinOutputMW)
	assert.Equal(t, 100.0, cfg.Plant.MaxOutputMW)
	assert.Equal(t, 10.0, cfg.Plant.StartUpCost)
	assert.Equal(t, "branchbound", cfg.Solver.Name)
	assert.Nil(t, cfg.Plant.InitialOn)

	params := cfg.Plant.ToModelParams()
	require.NoError(t, params.Validate())
}

func TestLoadDefaultsSolver(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `plant:
  min_output_mw: 0
  max_output_mw: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "branchbound", cfg.Solver.Name)
}

func TestLoadPlantFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "peaker.yaml", `plant:
  name: "peaker"
  min_output_mw: 10
  max_output_mw: 100
  start_up_cost: 10
  initial_on: true
`)
	path := writeFile(t, dir, "config.yaml", `plant_file: "peaker.yaml"
plant:
  max_output_mw: 200
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Base values survive; the explicit override wins.
	assert.Equal(t, "peaker", cfg.Plant.Name)
	assert.Equal(t, 10.0, cfg.Plant.MinOutputMW)
	assert.Equal(t, 200.0, cfg.Plant.MaxOutputMW)
	require.NotNil(t, cfg.Plant.InitialOn)
	assert.True(t, *cfg.Plant.InitialOn)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	badPlant := writeFile(t, dir, "bad_plant.yaml", `plant:
  min_output_mw: 100
  max_output_mw: 10
`)
	_, err := Load(badPlant)
	assert.Error(t, err)

	badSolver := writeFile(t, dir, "bad_solver.yaml", `plant:
  min_output_mw: 0
  max_output_mw: 10
solver:
  name: "simplex"
`)
	_, err = Load(badSolver)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "does_not_exist.yaml"))
	assert.Error(t, err)
}

func TestMergePlant(t *testing.T) {
	on := true
	base := PlantConfig{Name: "base", MinOutputMW: 5, MaxOutputMW: 50, StartUpCost: 7}
	override := PlantConfig{MaxOutputMW: 80, InitialOn: &on}

	out := MergePlant(base, override)
	assert.Equal(t, "base", out.Name)
	assert.Equal(t, 5.0, out.MinOutputMW)
	assert.Equal(t, 80.0, out.MaxOutputMW)
	assert.Equal(t, 7.0, out.StartUpCost)
	require.NotNil(t, out.InitialOn)
	assert.True(t, *out.InitialOn)
}
