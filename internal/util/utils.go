package util

import (
	"gonum.org/v1/gonum/floats"

	"sched-sim/internal/core"
)

type Averages struct {
	WaitTime       float64
	ResponseTime   float64
	TurnaroundTime float64
}

// CalculateAverage averages the timing fields of finished processes. An empty
// list divides by one so every average comes out as 0 instead of NaN.
func CalculateAverage(processes []core.Process) Averages {
	waiting := make([]float64, 0, len(processes))
	response := make([]float64, 0, len(processes))
	turnaround := make([]float64, 0, len(processes))

	for _, p := range processes {
		waiting = append(waiting, float64(valueOf(p.WaitTime)))
		response = append(response, float64(valueOf(p.ResponseTime)))
		turnaround = append(turnaround, float64(valueOf(p.TurnaroundTime)))
	}

	count := float64(len(processes))
	if count == 0 {
		count = 1
	}

	return Averages{
		WaitTime:       floats.Sum(waiting) / count,
		ResponseTime:   floats.Sum(response) / count,
		TurnaroundTime: floats.Sum(turnaround) / count,
	}
}

func valueOf(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
