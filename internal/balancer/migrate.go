package balancer

import (
	"sort"

	"sched-sim/internal/core"
)

const (
	overloadFactor  = 1.2
	underloadFactor = 0.8
	// a source keeps draining while above this
	drainFactor = 1.1
	// a target stops receiving once at or above this
	fillFactor = 0.9
)

// Move records one migrated process.
type Move struct {
	ProcessID string `json:"processId"`
	From      string `json:"from"`
	To        string `json:"to"`
	BurstTime int    `json:"burstTime"`
}

// Migrate rebalances pending work from overloaded to underloaded nodes.
func Migrate(nodes []core.Node) []core.Node {
	migrated, _ := MigrateWithReport(nodes)
	return migrated
}

// MigrateWithReport is Migrate that also returns the moves it made, in order.
//
// The heuristic is best-effort. A source stops draining once it is within
// drainFactor of the average, once no underloaded target is left, or once it
// has no pending process; residual imbalance is expected. Processes that have
// already started never move.
func MigrateWithReport(nodes []core.Node) ([]core.Node, []Move) {
	migrated := core.CloneNodes(nodes)
	if len(migrated) == 0 {
		return migrated, nil
	}

	average := float64(core.TotalLoad(migrated)) / float64(len(migrated))

	var overloaded, underloaded []int
	for i, n := range migrated {
		load := float64(n.Load)
		switch {
		case load > average*overloadFactor:
			overloaded = append(overloaded, i)
		case load < average*underloadFactor:
			underloaded = append(underloaded, i)
		}
	}

	var moves []Move
	for _, src := range overloaded {
		source := &migrated[src]

		for float64(source.Load) > average*drainFactor && len(underloaded) > 0 {
			sort.SliceStable(underloaded, func(i, j int) bool {
				return migrated[underloaded[i]].Load < migrated[underloaded[j]].Load
			})
			target := &migrated[underloaded[0]]

			candidate, ok := largestPending(*source)
			if !ok {
				break
			}

			p, _ := source.Release(candidate)
			target.Assign(p)
			moves = append(moves, Move{ProcessID: p.ID, From: source.ID, To: target.ID, BurstTime: p.BurstTime})

			if float64(target.Load) >= average*fillFactor {
				underloaded = underloaded[1:]
			}
		}
	}

	return migrated, moves
}

// largestPending picks the not-yet-started process with the largest burst,
// the first listed one on ties.
func largestPending(n core.Node) (string, bool) {
	var (
		id    string
		burst int
		found bool
	)
	for _, p := range n.Pending() {
		if !found || p.BurstTime > burst {
			id, burst, found = p.ID, p.BurstTime, true
		}
	}
	return id, found
}
