package balancer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/core"
)

func processIDs(processes []core.Process) []string {
	ids := make([]string, len(processes))
	for i, p := range processes {
		ids[i] = p.ID
	}
	return ids
}

func TestTopology(t *testing.T) {
	nodes, err := Topology(3)
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	for i, id := range []string{"Node-1", "Node-2", "Node-3"} {
		assert.Equal(t, id, nodes[i].ID)
		assert.Zero(t, nodes[i].Load)
		assert.NotNil(t, nodes[i].Processes)
		assert.Empty(t, nodes[i].Processes)
	}

	for _, n := range []int{0, -1} {
		_, err := Topology(n)
		assert.True(t, core.IsInvalidArgument(err), "n=%d", n)
	}
}

func TestDistribute(t *testing.T) {
	processes := []core.Process{
		core.NewProcess("P1", 0, 5, 1),
		core.NewProcess("P2", 1, 3, 1),
		core.NewProcess("P3", 2, 1, 1),
		core.NewProcess("P4", 3, 7, 1),
		core.NewProcess("P5", 4, 2, 1),
	}
	nodes, err := Topology(2)
	require.NoError(t, err)

	distributed, err := Distribute(processes, nodes)
	require.NoError(t, err)

	assert.Equal(t, []string{"P1", "P3", "P5"}, processIDs(distributed[0].Processes))
	assert.Equal(t, []string{"P2", "P4"}, processIDs(distributed[1].Processes))
	assert.Equal(t, 8, distributed[0].Load)
	assert.Equal(t, 10, distributed[1].Load)
	for _, n := range distributed {
		for _, p := range n.Processes {
			assert.Equal(t, n.ID, p.NodeID)
		}
	}

	// inputs untouched
	assert.Empty(t, nodes[0].Processes)
	assert.Empty(t, processes[0].NodeID)
}

func TestDistribute_MoreNodesThanProcesses(t *testing.T) {
	nodes, err := Topology(4)
	require.NoError(t, err)

	distributed, err := Distribute([]core.Process{core.NewProcess("P1", 0, 2, 1)}, nodes)
	require.NoError(t, err)

	assert.Len(t, distributed[0].Processes, 1)
	for _, n := range distributed[1:] {
		assert.Empty(t, n.Processes)
		assert.Zero(t, n.Load)
	}
}

func TestDistribute_EmptyTopology(t *testing.T) {
	_, err := Distribute([]core.Process{core.NewProcess("P1", 0, 2, 1)}, nil)
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err))
}

func TestAnnotateAndFlatten(t *testing.T) {
	processes := []core.Process{
		core.NewProcess("P1", 0, 5, 1),
		core.NewProcess("P2", 1, 3, 1),
		core.NewProcess("P3", 2, 1, 1),
	}
	nodes, err := Topology(2)
	require.NoError(t, err)
	nodes, err = Distribute(processes, nodes)
	require.NoError(t, err)

	annotated := Annotate(processes, nodes)
	assert.Equal(t, []string{"P1", "P2", "P3"}, processIDs(annotated))
	assert.Equal(t, []string{"Node-1", "Node-2", "Node-1"}, []string{annotated[0].NodeID, annotated[1].NodeID, annotated[2].NodeID})

	flat := Flatten(nodes)
	assert.Equal(t, []string{"P1", "P3", "P2"}, processIDs(flat))

	orphan := Annotate([]core.Process{core.NewProcess("P9", 0, 1, 1)}, nodes)
	assert.Empty(t, orphan[0].NodeID)
}
