// Package metrics turns a finished schedule into comparable statistics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"sched-sim/internal/core"
	"sched-sim/internal/util"
)

// Metrics is a snapshot of one simulation run. It is never mutated after
// Collect returns it.
type Metrics struct {
	AverageWaitTime       float64   `json:"averageWaitTime"`
	AverageTurnaroundTime float64   `json:"averageTurnaroundTime"`
	AverageResponseTime   float64   `json:"averageResponseTime"`
	Throughput            float64   `json:"throughput"`
	CpuUtilization        []float64 `json:"cpuUtilization"`
	LoadBalance           float64   `json:"loadBalance"`
}

// TotalTime is the latest finish time among the processes, 0 if none finished.
func TotalTime(processes []core.Process) int {
	total := 0
	for _, p := range processes {
		if p.FinishTime != nil && *p.FinishTime > total {
			total = *p.FinishTime
		}
	}
	return total
}

// Collect computes the run metrics. Unfinished processes are ignored. A
// finished process without its timing fields is reported as inconsistent.
func Collect(processes []core.Process, nodes []core.Node, totalTime int) (Metrics, error) {
	completed := make([]core.Process, 0, len(processes))
	for _, p := range processes {
		if !p.Finished() {
			continue
		}
		if err := p.Validate(); err != nil {
			return Metrics{}, err
		}
		completed = append(completed, p)
	}

	averages := util.CalculateAverage(completed)
	m := Metrics{
		AverageWaitTime:       averages.WaitTime,
		AverageTurnaroundTime: averages.TurnaroundTime,
		AverageResponseTime:   averages.ResponseTime,
		CpuUtilization:        cpuUtilization(completed, nodes, totalTime),
		LoadBalance:           loadBalance(nodes),
	}
	if totalTime > 0 {
		m.Throughput = float64(len(completed)) / float64(totalTime)
	}
	return m, nil
}

// cpuUtilization is the fraction of totalTime each node spent running its
// completed processes. With no nodes the result is a single zero entry.
func cpuUtilization(completed []core.Process, nodes []core.Node, totalTime int) []float64 {
	if len(nodes) == 0 {
		return []float64{0}
	}

	busy := make(map[string]float64, len(nodes))
	for _, p := range completed {
		busy[p.NodeID] += float64(p.BurstTime)
	}

	utilization := make([]float64, len(nodes))
	if totalTime <= 0 {
		return utilization
	}
	for i, n := range nodes {
		utilization[i] = busy[n.ID] / float64(totalTime)
	}
	return utilization
}

// loadBalance is the coefficient of variation of node load: population
// standard deviation over mean, 0 when the mean is 0.
func loadBalance(nodes []core.Node) float64 {
	if len(nodes) == 0 {
		return 0
	}

	loads := make([]float64, len(nodes))
	for i, n := range nodes {
		loads[i] = float64(n.Load)
	}
	if floats.Sum(loads) == 0 {
		return 0
	}

	mean, variance := stat.PopMeanVariance(loads, nil)
	if mean <= 0 {
		return 0
	}
	return math.Sqrt(variance) / mean
}
