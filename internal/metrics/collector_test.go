package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/core"
)

func ran(id, nodeID string, arrival, burst, start int) core.Process {
	p := core.NewProcess(id, arrival, burst, 1)
	p.NodeID = nodeID
	p.Begin(start)
	p.Finish(start + burst)
	return p
}

func topology(processes ...core.Process) []core.Node {
	nodes := []core.Node{core.NewNode("Node-1"), core.NewNode("Node-2")}
	for _, p := range processes {
		for i := range nodes {
			if nodes[i].ID == p.NodeID {
				nodes[i].Assign(p)
			}
		}
	}
	return nodes
}

func TestCollect(t *testing.T) {
	processes := []core.Process{
		ran("P1", "Node-1", 0, 5, 0),
		ran("P2", "Node-2", 1, 3, 5),
		ran("P3", "Node-1", 2, 1, 8),
	}
	nodes := topology(processes...)

	total := TotalTime(processes)
	require.Equal(t, 9, total)

	m, err := Collect(processes, nodes, total)
	require.NoError(t, err)

	assert.InDelta(t, 10.0/3, m.AverageWaitTime, 1e-9)
	assert.InDelta(t, 10.0/3, m.AverageResponseTime, 1e-9)
	assert.InDelta(t, 19.0/3, m.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 1.0/3, m.Throughput, 1e-9)
	require.Len(t, m.CpuUtilization, 2)
	assert.InDelta(t, 6.0/9, m.CpuUtilization[0], 1e-9)
	assert.InDelta(t, 3.0/9, m.CpuUtilization[1], 1e-9)
	// loads 6 and 3: standard deviation 1.5 over mean 4.5
	assert.InDelta(t, 1.0/3, m.LoadBalance, 1e-9)
}

func TestCollect_IgnoresUnfinished(t *testing.T) {
	processes := []core.Process{
		ran("P1", "Node-1", 0, 4, 0),
		core.NewProcess("P2", 0, 3, 1),
	}

	m, err := Collect(processes, nil, TotalTime(processes))
	require.NoError(t, err)

	assert.Equal(t, 0.0, m.AverageWaitTime)
	assert.InDelta(t, 0.25, m.Throughput, 1e-9)
	assert.Equal(t, []float64{0}, m.CpuUtilization)
	assert.Equal(t, 0.0, m.LoadBalance)
}

func TestCollect_Empty(t *testing.T) {
	m, err := Collect(nil, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, Metrics{CpuUtilization: []float64{0}}, m)

	idle := []core.Node{core.NewNode("Node-1"), core.NewNode("Node-2")}
	m, err = Collect(nil, idle, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, m.CpuUtilization)
	for _, v := range []float64{m.AverageWaitTime, m.AverageTurnaroundTime, m.AverageResponseTime, m.Throughput, m.LoadBalance} {
		assert.False(t, math.IsNaN(v))
	}
}

func TestCollect_RejectsInconsistentProcess(t *testing.T) {
	p := ran("P1", "Node-1", 0, 4, 0)
	p.WaitTime = core.Int(9)

	_, err := Collect([]core.Process{p}, nil, 4)
	require.Error(t, err)
	assert.True(t, core.IsInconsistentState(err))
}

func TestTotalTime(t *testing.T) {
	assert.Equal(t, 0, TotalTime(nil))
	assert.Equal(t, 0, TotalTime([]core.Process{core.NewProcess("P1", 3, 2, 1)}))
}
