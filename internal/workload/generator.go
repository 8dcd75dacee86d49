package workload

import (
	"fmt"
	"math/rand"
	"time"

	"sched-sim/internal/core"
)

const (
	MaxArrival  = 19
	MinBurst    = 1
	MaxBurst    = 10
	MinPriority = 1
	MaxPriority = 10
)

// Generator produces random workloads. It is not safe for concurrent use,
// matching the underlying *rand.Rand.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator draws from src; pass a fixed seed for reproducible workloads.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rand: rand.New(src)}
}

func Default() *Generator {
	return NewGenerator(rand.NewSource(time.Now().UnixNano()))
}

// Generate returns count processes P1..Pcount with uniformly drawn arrival,
// burst and priority.
func (g *Generator) Generate(count int) ([]core.Process, error) {
	if count < 0 {
		return nil, core.InvalidArgument("process count %d is negative", count)
	}

	processes := make([]core.Process, 0, count)
	for i := 0; i < count; i++ {
		processes = append(processes, core.NewProcess(
			fmt.Sprintf("P%d", i+1),
			g.rand.Intn(MaxArrival+1),
			MinBurst+g.rand.Intn(MaxBurst-MinBurst+1),
			MinPriority+g.rand.Intn(MaxPriority-MinPriority+1),
		))
	}
	return processes, nil
}
