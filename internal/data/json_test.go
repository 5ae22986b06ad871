package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unit-commitment/internal/model"
)

const sampleJSON = `{
  "scenarios": [
    {
      "name": "base",
      "periods": [
        {"index": 1, "variable_cost": 120, "market_price": 200},
        {"index": 2, "variable_cost": 120, "market_price": 100}
      ]
    },
    {
      "name": "spike",
      "periods": [
        {"index": 1, "variable_cost": 120, "market_price": 500}
      ]
    }
  ]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))
	return path
}

func TestLoadScenarioJSON(t *testing.T) {
	file, err := LoadScenarioJSON(writeSample(t))
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 2)

	base := file.Scenarios[0]
	assert.Equal(t, "base", base.Name)
	require.Len(t, base.Periods, 2)
	assert.Equal(t, 200.0, base.Periods[0].MarketPrice)

	horizon, err := base.Horizon()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, horizon.Indices())

	params := base.PeriodParams()
	assert.Equal(t, model.PeriodCost{VariableCost: 120, MarketPrice: 100}, params[2])
}

func TestLoadScenarioJSONErrors(t *testing.T) {
	_, err := LoadScenarioJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadScenarioJSON(bad)
	assert.Error(t, err)
}

func TestGroupByName(t *testing.T) {
	file := &model.ScenarioFile{Scenarios: []model.Scenario{
		{Name: "a", Periods: []model.PeriodRow{{Index: 1}}},
		{Name: "b", Periods: []model.PeriodRow{{Index: 1}}},
		{Name: "a", Periods: []model.PeriodRow{{Index: 2}}},
	}}

	grouped := GroupByName(file)
	require.Len(t, grouped, 2)
	assert.Len(t, grouped["a"].Periods, 2)
	assert.Len(t, grouped["b"].Periods, 1)

	assert.Empty(t, GroupByName(nil))
}

func TestFindScenario(t *testing.T) {
	file, err := LoadScenarioJSON(writeSample(t))
	require.NoError(t, err)

	sc, err := FindScenario(file, "spike")
	require.NoError(t, err)
	assert.Equal(t, "spike", sc.Name)

	_, err = FindScenario(file, "")
	assert.Error(t, err, "ambiguous when the file has several scenarios")

	_, err = FindScenario(file, "nope")
	assert.Error(t, err)

	single := &model.ScenarioFile{Scenarios: file.Scenarios[:1]}
	sc, err = FindScenario(single, "")
	require.NoError(t, err)
	assert.Equal(t, "base", sc.Name)
}
