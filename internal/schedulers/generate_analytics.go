package schedulers

import (
	"sched-sim/internal/core"
	"sched-sim/internal/metrics"
)

// Outcome is a scheduled run together with its metrics.
type Outcome struct {
	Result
	TotalTime int             `json:"totalTime"`
	Cpu       core.CpuMetric  `json:"cpu"`
	Metrics   metrics.Metrics `json:"metrics"`
}

// Evaluate schedules processes under policy and collects metrics against
// nodes. Total time is the latest finish time of the run.
func Evaluate(policy Policy, processes []core.Process, nodes []core.Node) (Outcome, error) {
	result, err := Run(policy, processes)
	if err != nil {
		return Outcome{}, err
	}
	return generateOutcome(result, nodes)
}

// EvaluateAll is Evaluate for every algorithm, with the runs executed
// concurrently by CompareAll.
func EvaluateAll(processes []core.Process, nodes []core.Node, quantum int) ([]Outcome, error) {
	results, err := CompareAll(processes, quantum)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(results))
	for _, result := range results {
		outcome, err := generateOutcome(result, nodes)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func generateOutcome(result Result, nodes []core.Node) (Outcome, error) {
	totalTime := metrics.TotalTime(result.Processes)
	m, err := metrics.Collect(result.Processes, nodes, totalTime)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Result:    result,
		TotalTime: totalTime,
		Cpu:       result.Timeline.Metric(),
		Metrics:   m,
	}, nil
}
