// Package balancer places processes on nodes and moves pending work off
// overloaded nodes.
package balancer

import "sched-sim/internal/core"

// Topology creates n empty nodes named Node-1..Node-n.
func Topology(n int) ([]core.Node, error) {
	if n <= 0 {
		return nil, core.InvalidArgument("node count %d must be positive", n)
	}
	nodes := make([]core.Node, 0, n)
	for _, id := range core.NodeIDs(n) {
		nodes = append(nodes, core.NewNode(id))
	}
	return nodes, nil
}

// Distribute assigns process i to node i mod len(nodes), regardless of burst
// time. It returns new node records; the inputs are not modified.
func Distribute(processes []core.Process, nodes []core.Node) ([]core.Node, error) {
	if len(nodes) == 0 {
		return nil, core.InvalidArgument("cannot distribute %d processes over an empty topology", len(processes))
	}

	distributed := core.CloneNodes(nodes)
	for i, p := range processes {
		distributed[i%len(distributed)].Assign(p.Clone())
	}
	return distributed, nil
}

// Annotate returns copies of processes, in their input order, stamped
// with the node each one is placed on. Processes found on no node keep an
// empty node id.
func Annotate(processes []core.Process, nodes []core.Node) []core.Process {
	placement := make(map[string]string)
	for _, n := range nodes {
		for _, p := range n.Processes {
			placement[p.ID] = n.ID
		}
	}

	annotated := make([]core.Process, len(processes))
	for i, p := range processes {
		c := p.Clone()
		c.NodeID = placement[p.ID]
		annotated[i] = c
	}
	return annotated
}

// Flatten lists every process of every node, node by node.
func Flatten(nodes []core.Node) []core.Process {
	var processes []core.Process
	for _, n := range nodes {
		processes = append(processes, core.CloneAll(n.Processes)...)
	}
	return processes
}
