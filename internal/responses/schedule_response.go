package responses

import (
	"sched-sim/internal/balancer"
	"sched-sim/internal/core"
	"sched-sim/internal/metrics"
	"sched-sim/internal/schedulers"
)

type SetupResponse struct {
	Processes  []core.Process  `json:"processes"`
	Nodes      []core.Node     `json:"nodes"`
	Migrations []balancer.Move `json:"migrations,omitempty"`
}

type SimulateResponse struct {
	Processes []core.Process  `json:"processes"`
	Metrics   metrics.Metrics `json:"metrics"`
}

type ScheduleResponse struct {
	Algorithm      string          `json:"algorithm"`
	Name           string          `json:"name"`
	TotalTime      int             `json:"totalTime"`
	IdleTime       int             `json:"idleTime"`
	CpuUtilization float64         `json:"cpuUtilization"`
	Processes      []core.Process  `json:"processes"`
	Timeline       core.Timeline   `json:"timeline"`
	Metrics        metrics.Metrics `json:"metrics"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// FromOutcome flattens a scheduled run. CpuUtilization is the single-CPU
// busy fraction of the run's own timeline.
func FromOutcome(o schedulers.Outcome) ScheduleResponse {
	var utilization float64
	if o.Cpu.TotalTime > 0 {
		utilization = float64(o.Cpu.UtilizationTime) / float64(o.Cpu.TotalTime)
	}
	return ScheduleResponse{
		Algorithm:      string(o.Algorithm),
		Name:           o.Algorithm.Name(),
		TotalTime:      o.TotalTime,
		IdleTime:       o.Cpu.IdleTime,
		CpuUtilization: utilization,
		Processes:      o.Processes,
		Timeline:       o.Timeline,
		Metrics:        o.Metrics,
	}
}

func FromOutcomes(outcomes []schedulers.Outcome) CompareResponse {
	results := make([]ScheduleResponse, 0, len(outcomes))
	for _, o := range outcomes {
		results = append(results, FromOutcome(o))
	}
	return CompareResponse{Results: results}
}
