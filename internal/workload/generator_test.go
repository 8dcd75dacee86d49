package workload

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/core"
)

func TestGenerate(t *testing.T) {
	processes, err := NewGenerator(rand.NewSource(1)).Generate(200)
	require.NoError(t, err)
	require.Len(t, processes, 200)

	for i, p := range processes {
		assert.Equal(t, fmt.Sprintf("P%d", i+1), p.ID)
		assert.GreaterOrEqual(t, p.ArrivalTime, 0)
		assert.LessOrEqual(t, p.ArrivalTime, MaxArrival)
		assert.GreaterOrEqual(t, p.BurstTime, MinBurst)
		assert.LessOrEqual(t, p.BurstTime, MaxBurst)
		assert.GreaterOrEqual(t, p.Priority, MinPriority)
		assert.LessOrEqual(t, p.Priority, MaxPriority)
		assert.Equal(t, p.BurstTime, p.RemainingTime)
		assert.False(t, p.Started())
		assert.Empty(t, p.NodeID)
		assert.NoError(t, p.Validate())
	}
}

func TestGenerate_SameSeedSameWorkload(t *testing.T) {
	a, err := NewGenerator(rand.NewSource(42)).Generate(30)
	require.NoError(t, err)
	b, err := NewGenerator(rand.NewSource(42)).Generate(30)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_Counts(t *testing.T) {
	processes, err := Default().Generate(0)
	require.NoError(t, err)
	assert.NotNil(t, processes)
	assert.Empty(t, processes)

	_, err = Default().Generate(-1)
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err))
}
