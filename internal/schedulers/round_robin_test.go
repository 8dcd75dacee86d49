package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sched-sim/internal/core"
)

func TestScheduleRoundRobin_ThreeProcesses(t *testing.T) {
	got, timeline, err := ScheduleRoundRobin(threeProcesses(), 2)
	require.NoError(t, err)

	requireTimings(t, []timing{
		{"P3", 4, 5, 2, 2},
		{"P2", 2, 8, 4, 1},
		{"P1", 0, 9, 4, 0},
	}, got)

	want := core.Timeline{
		{ProcessID: "P1", Start: 0, End: 2},
		{ProcessID: "P2", Start: 2, End: 4},
		{ProcessID: "P3", Start: 4, End: 5},
		{ProcessID: "P1", Start: 5, End: 7},
		{ProcessID: "P2", Start: 7, End: 8},
		{ProcessID: "P1", Start: 8, End: 9},
	}
	assert.Equal(t, want, timeline)
}

func TestScheduleRoundRobin_LargeQuantumBehavesLikeFCFS(t *testing.T) {
	input := randomWorkload(t, 7, 25)

	rr, _, err := ScheduleRoundRobin(input, 100)
	require.NoError(t, err)
	fcfs, _ := ScheduleFirstComeFirstServe(input)

	assert.Equal(t, fcfs, rr)
}

func TestScheduleRoundRobin_IdleJumpsToNextArrival(t *testing.T) {
	got, timeline, err := ScheduleRoundRobin([]core.Process{
		core.NewProcess("P1", 0, 1, 1),
		core.NewProcess("P2", 5, 3, 1),
	}, 2)
	require.NoError(t, err)

	requireTimings(t, []timing{
		{"P1", 0, 1, 0, 0},
		{"P2", 5, 8, 0, 0},
	}, got)
	assert.Equal(t, 4, timeline.Metric().IdleTime)
}

func TestScheduleRoundRobin_ArrivalsQueueAheadOfPreempted(t *testing.T) {
	_, timeline, err := ScheduleRoundRobin([]core.Process{
		core.NewProcess("P1", 0, 4, 1),
		core.NewProcess("P2", 2, 1, 1),
	}, 2)
	require.NoError(t, err)

	require.Len(t, timeline, 3)
	assert.Equal(t, "P2", timeline[1].ProcessID)
}

func TestScheduleRoundRobin_RejectsQuantum(t *testing.T) {
	_, _, err := ScheduleRoundRobin(threeProcesses(), 0)
	require.Error(t, err)
	assert.True(t, core.IsInvalidArgument(err))
}
