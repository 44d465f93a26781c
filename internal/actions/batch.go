package actions

import (
	"context"
	"fmt"

	"github.com/mj1618/macos-computer/internal/computer"
	"gopkg.in/yaml.v3"
)

// Step is one entry of a batch: a single action name mapped to its params,
// e.g. `- click: { x: 10, y: 20 }`.
type Step map[string]Params

// BatchResult is the output of a batch run.
type BatchResult struct {
	OK        bool     `yaml:"ok"              json:"ok"`
	Action    string   `yaml:"action"          json:"action"`
	Steps     int      `yaml:"steps"           json:"steps"`
	Completed int      `yaml:"completed"       json:"completed"`
	Error     string   `yaml:"error,omitempty" json:"error,omitempty"`
	Results   []Result `yaml:"results"         json:"results"`
}

// ParseSteps decodes a YAML (or JSON) list of steps.
func ParseSteps(data []byte) ([]Step, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps provided: expected a YAML list of actions")
	}
	return steps, nil
}

// RunBatch executes steps in order. With stopOnError the first failing step
// ends the batch; otherwise every step runs and failures are collected.
func RunBatch(ctx context.Context, c *computer.Computer, steps []Step, stopOnError bool) BatchResult {
	batch := BatchResult{Action: "do", Steps: len(steps), Results: make([]Result, 0, len(steps))}
	failed := false

	for i, step := range steps {
		stepNum := i + 1

		if len(step) != 1 {
			err := fmt.Errorf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			batch.Results = append(batch.Results, Result{Step: stepNum, Error: err.Error()})
			failed = true
			if stopOnError {
				batch.Error = err.Error()
				break
			}
			continue
		}

		var result Result
		var err error
		for action, params := range step {
			result, err = Execute(ctx, c, action, params)
		}
		result.Step = stepNum
		batch.Results = append(batch.Results, result)
		if err != nil {
			failed = true
			if stopOnError {
				batch.Error = fmt.Sprintf("step %d: %s", stepNum, err.Error())
				break
			}
			continue
		}
		batch.Completed++
	}

	batch.OK = !failed
	return batch
}
