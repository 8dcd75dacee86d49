package core

import "fmt"

// Node is a logical worker. Load always equals the summed burst time of
// Processes; only Assign and Release change either.
type Node struct {
	ID        string    `json:"id"`
	Processes []Process `json:"processes"`
	Load      int       `json:"load"`
}

func NewNode(id string) Node {
	return Node{ID: id, Processes: []Process{}}
}

// NodeIDs names a topology of n nodes Node-1..Node-n.
func NodeIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("Node-%d", i+1))
	}
	return ids
}

// Assign places p on the node.
func (n *Node) Assign(p Process) {
	p.NodeID = n.ID
	n.Processes = append(n.Processes, p)
	n.Load += p.BurstTime
}

// Release removes the process with the given id from the node.
func (n *Node) Release(id string) (Process, bool) {
	for i, p := range n.Processes {
		if p.ID != id {
			continue
		}
		n.Processes = append(n.Processes[:i:i], n.Processes[i+1:]...)
		n.Load -= p.BurstTime
		p.NodeID = ""
		return p, true
	}
	return Process{}, false
}

// Pending returns the processes that have not started executing.
func (n Node) Pending() []Process {
	var pending []Process
	for _, p := range n.Processes {
		if !p.Started() {
			pending = append(pending, p)
		}
	}
	return pending
}

func (n Node) Clone() Node {
	c := Node{ID: n.ID, Load: n.Load}
	c.Processes = CloneAll(n.Processes)
	return c
}

// CloneNodes deep copies a topology.
func CloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// TotalLoad sums the load of every node.
func TotalLoad(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += n.Load
	}
	return total
}
