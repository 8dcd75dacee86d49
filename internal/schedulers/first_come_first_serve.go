package schedulers

import (
	"sort"

	"sched-sim/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Equal arrivals keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) ([]core.Process, core.Timeline) {
	jobs := freshCopies(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	timeline := make(core.Timeline, 0, len(jobs))
	clock := 0
	for i := range jobs {
		p := &jobs[i]
		if clock < p.ArrivalTime {
			clock = p.ArrivalTime
		}

		p.Begin(clock)
		timeline = append(timeline, sliceOf(p, clock, clock+p.BurstTime))
		clock += p.BurstTime
		p.Finish(clock)
	}

	return jobs, timeline
}
