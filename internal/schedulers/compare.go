package schedulers

import (
	"sync"

	"sched-sim/internal/core"
)

// CompareAll runs every algorithm over the same workload concurrently. Each
// run gets its own deep copy of processes and results come back in
// Algorithms order once all runs have finished.
func CompareAll(processes []core.Process, quantum int) ([]Result, error) {
	if quantum <= 0 {
		return nil, core.InvalidArgument("round robin quantum %d must be positive", quantum)
	}

	results := make([]Result, len(Algorithms))
	errs := make([]error, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		policy := Policy{Algorithm: algorithm}
		if algorithm == RoundRobin {
			policy.Quantum = quantum
		}
		workload := core.CloneAll(processes)

		go func(i int, policy Policy, workload []core.Process) {
			defer wg.Done()
			results[i], errs[i] = Run(policy, workload)
		}(i, policy, workload)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
