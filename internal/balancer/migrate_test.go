package balancer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/core"
	"sched-sim/internal/workload"
)

func node(id string, processes ...core.Process) core.Node {
	n := core.NewNode(id)
	for _, p := range processes {
		n.Assign(p)
	}
	return n
}

// skewed is loads 18, 1, 2 with an average of 7.
func skewed() []core.Node {
	return []core.Node{
		node("Node-1",
			core.NewProcess("A", 0, 8, 1),
			core.NewProcess("B", 0, 6, 1),
			core.NewProcess("C", 0, 4, 1),
		),
		node("Node-2", core.NewProcess("D", 0, 1, 1)),
		node("Node-3", core.NewProcess("E", 0, 2, 1)),
	}
}

func loads(nodes []core.Node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Load
	}
	return out
}

func TestMigrateWithReport(t *testing.T) {
	input := skewed()

	migrated, moves := MigrateWithReport(input)

	assert.Equal(t, []Move{
		{ProcessID: "A", From: "Node-1", To: "Node-2", BurstTime: 8},
		{ProcessID: "B", From: "Node-1", To: "Node-3", BurstTime: 6},
	}, moves)
	assert.Equal(t, []int{4, 9, 8}, loads(migrated))
	assert.Equal(t, []string{"C"}, processIDs(migrated[0].Processes))
	assert.Equal(t, "Node-2", migrated[1].Processes[1].NodeID)

	// the input topology is left as it was
	assert.Equal(t, []int{18, 1, 2}, loads(input))
	assert.Equal(t, skewed(), input)
}

func TestMigrate_StartedProcessesStay(t *testing.T) {
	input := skewed()
	input[0].Processes[0].StartTime = core.Int(0)

	migrated, moves := MigrateWithReport(input)

	assert.Equal(t, []string{"B", "C"}, []string{moves[0].ProcessID, moves[1].ProcessID})
	assert.Equal(t, []string{"A"}, processIDs(migrated[0].Processes))
	assert.Equal(t, []int{8, 7, 6}, loads(migrated))
}

func TestMigrate_BalancedTopologyIsUnchanged(t *testing.T) {
	input := []core.Node{
		node("Node-1", core.NewProcess("P1", 0, 5, 1)),
		node("Node-2", core.NewProcess("P2", 0, 5, 1)),
	}

	migrated, moves := MigrateWithReport(input)
	assert.Empty(t, moves)
	assert.Equal(t, input, migrated)
}

func TestMigrate_EmptyTopology(t *testing.T) {
	assert.Empty(t, Migrate(nil))
}

func TestMigrate_Conserves(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		processes, err := workload.NewGenerator(rand.NewSource(seed)).Generate(40)
		require.NoError(t, err)

		nodes := make([]core.Node, 0, 4)
		for i, id := range core.NodeIDs(4) {
			n := core.NewNode(id)
			// pile most of the work on the first node
			for j, p := range processes {
				if (i == 0 && j%5 != 0) || (i > 0 && j%5 == 0 && j%4 == i) {
					n.Assign(p)
				}
			}
			nodes = append(nodes, n)
		}

		before := core.TotalLoad(nodes)
		count := len(Flatten(nodes))

		migrated := Migrate(nodes)

		assert.Equal(t, before, core.TotalLoad(migrated), "seed %d", seed)
		assert.Len(t, Flatten(migrated), count, "seed %d", seed)
		for _, n := range migrated {
			sum := 0
			for _, p := range n.Processes {
				sum += p.BurstTime
				assert.Equal(t, n.ID, p.NodeID)
			}
			assert.Equal(t, sum, n.Load)
		}
	}
}
