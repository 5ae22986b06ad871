package data

import (
	"encoding/json"
	"fmt"
	"os"

	"unit-commitment/internal/model"
)

func LoadScenarioJSON(path string) (*model.ScenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file model.ScenarioFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// GroupByName splits a scenario file into name-keyed scenarios.
// Scenarios sharing a name have their periods appended in file order.
func GroupByName(file *model.ScenarioFile) map[string]model.Scenario {
	out := map[string]model.Scenario{}
	if file == nil {
		return out
	}
	for _, sc := range file.Scenarios {
		merged, ok := out[sc.Name]
		if !ok {
			out[sc.Name] = sc
			continue
		}
		merged.Periods = append(merged.Periods, sc.Periods...)
		out[sc.Name] = merged
	}
	return out
}

// FindScenario returns the named scenario, or the only one when name is empty.
func FindScenario(file *model.ScenarioFile, name string) (model.Scenario, error) {
	if file == nil || len(file.Scenarios) == 0 {
		return model.Scenario{}, fmt.Errorf("no scenarios in file")
	}
	if name == "" {
		if len(file.Scenarios) > 1 {
			return model.Scenario{}, fmt.Errorf("file has %d scenarios; a name is required", len(file.Scenarios))
		}
		return file.Scenarios[0], nil
	}
	for _, sc := range file.Scenarios {
		if sc.Name == name {
			return sc, nil
		}
	}
	return model.Scenario{}, fmt.Errorf("scenario %q not found", name)
}
