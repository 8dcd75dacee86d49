// Package simulation wires the generator, topology and load balancer into the
// setup step shared by the API and the CLI.
package simulation

import (
	"fmt"

	"sched-sim/internal/balancer"
	"sched-sim/internal/core"
	"sched-sim/internal/workload"
)

// Setup is a workload placed on a topology. Processes keeps the generated
// order and carries each process's final node.
type Setup struct {
	Processes []core.Process
	Nodes     []core.Node
	Moves     []balancer.Move
}

// Prepare generates numProcesses processes and places them on numNodes nodes.
func Prepare(gen *workload.Generator, numNodes, numProcesses int, migrate bool) (Setup, error) {
	processes, err := gen.Generate(numProcesses)
	if err != nil {
		return Setup{}, err
	}
	return Place(processes, numNodes, migrate)
}

// Place distributes processes round robin over a fresh topology and, when
// migrate is set, rebalances it.
func Place(processes []core.Process, numNodes int, migrate bool) (Setup, error) {
	nodes, err := balancer.Topology(numNodes)
	if err != nil {
		return Setup{}, err
	}

	nodes, err = balancer.Distribute(processes, nodes)
	if err != nil {
		return Setup{}, fmt.Errorf("distributing workload: %w", err)
	}

	var moves []balancer.Move
	if migrate {
		nodes, moves = balancer.MigrateWithReport(nodes)
	}

	return Setup{
		Processes: balancer.Annotate(processes, nodes),
		Nodes:     nodes,
		Moves:     moves,
	}, nil
}
