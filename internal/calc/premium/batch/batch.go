package batch

import (
	"errors"
	"fmt"

	"Airlift/internal/calc/airlift"
)

var ErrNoScenarios = errors.New("no scenarios")

type Scenario struct {
	Name string `json:"name"`
	airlift.Input
}

type Input struct {
	Scenarios []Scenario `json:"scenarios"`
}

type ScenarioResult struct {
	Name string `json:"name"`
	airlift.Result
}

type Result struct {
	Results []ScenarioResult `json:"results"`
}

// Calculate runs every scenario in request order. Unnamed scenarios are called
// "Scenario N", counting from 1.
func Calculate(in Input) (Result, error) {
	if len(in.Scenarios) == 0 {
		return Result{}, ErrNoScenarios
	}
	out := Result{Results: make([]ScenarioResult, 0, len(in.Scenarios))}
	for i, sc := range in.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		if err := sc.Validate(); err != nil {
			return Result{}, fmt.Errorf("scenario %d (%s): %w", i, name, err)
		}
		out.Results = append(out.Results, ScenarioResult{Name: name, Result: airlift.Calculate(sc.Input)})
	}
	return out, nil
}
