package cluster

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/balancer"
	"sched-sim/internal/core"
	"sched-sim/internal/schedulers"
	"sched-sim/internal/workload"
)

func placed(t *testing.T, seed int64, numNodes, numProcesses int) []core.Node {
	t.Helper()
	processes, err := workload.NewGenerator(rand.NewSource(seed)).Generate(numProcesses)
	require.NoError(t, err)
	nodes, err := balancer.Topology(numNodes)
	require.NoError(t, err)
	nodes, err = balancer.Distribute(processes, nodes)
	require.NoError(t, err)
	return nodes
}

func TestCoordinator_Run(t *testing.T) {
	nodes := placed(t, 5, 3, 17)
	coordinator := NewCoordinator(hclog.NewNullLogger())

	for _, a := range schedulers.Algorithms {
		policy := schedulers.Policy{Algorithm: a, Quantum: 2}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		report, err := coordinator.Run(ctx, nodes, policy)
		cancel()
		require.NoError(t, err, a)

		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, a, report.Algorithm)
		require.Len(t, report.Nodes, 3)
		assert.Len(t, report.Processes, 17)

		total := 0
		for i, n := range nodes {
			nr := report.Nodes[i]
			assert.Equal(t, n.ID, nr.NodeID)

			// each node schedules its partition on its own clock
			local, err := schedulers.Run(policy, n.Processes)
			require.NoError(t, err)
			assert.Equal(t, local.Processes, nr.Processes, "%s %s", a, n.ID)
			assert.Equal(t, local.Timeline.Metric(), nr.Cpu)
			for _, p := range nr.Processes {
				assert.Equal(t, n.ID, p.NodeID)
			}
			total = max(total, nr.Cpu.TotalTime)
		}
		assert.Equal(t, total, report.TotalTime)
		assert.Len(t, report.Metrics.CpuUtilization, 3)
	}
}

func TestCoordinator_EmptyPartitions(t *testing.T) {
	nodes := placed(t, 1, 4, 2)
	report, err := NewCoordinator(hclog.NewNullLogger()).Run(context.Background(), nodes, schedulers.Policy{Algorithm: schedulers.FirstComeFirstServe})
	require.NoError(t, err)

	assert.Len(t, report.Processes, 2)
	assert.Empty(t, report.Nodes[3].Processes)
	assert.Equal(t, core.CpuMetric{}, report.Nodes[3].Cpu)
}

func TestCoordinator_Errors(t *testing.T) {
	coordinator := NewCoordinator(hclog.NewNullLogger())
	fcfs := schedulers.Policy{Algorithm: schedulers.FirstComeFirstServe}

	_, err := coordinator.Run(context.Background(), nil, fcfs)
	assert.True(t, core.IsInvalidArgument(err))

	_, err = coordinator.Run(context.Background(), placed(t, 1, 2, 4), schedulers.Policy{Algorithm: schedulers.RoundRobin})
	assert.True(t, core.IsInvalidArgument(err))

	nodes := placed(t, 1, 2, 4)
	nodes[1].Processes[0].ID = nodes[0].Processes[0].ID
	_, err = coordinator.Run(context.Background(), nodes, fcfs)
	assert.True(t, core.IsInvalidArgument(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = coordinator.Run(ctx, placed(t, 1, 2, 4), fcfs)
	assert.ErrorIs(t, err, context.Canceled)
}
