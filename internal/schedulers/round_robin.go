package schedulers

import (
	"sort"

	"github.com/golang-collections/collections/queue"

	"sched-sim/internal/core"
)

// ScheduleRoundRobin preempts at quantum boundaries. Processes that arrive
// during a slice are queued ahead of the preempted process. The result is in
// completion order.
func ScheduleRoundRobin(processes []core.Process, quantum int) ([]core.Process, core.Timeline, error) {
	if quantum <= 0 {
		return nil, nil, core.InvalidArgument("round robin quantum %d must be positive", quantum)
	}

	jobs := freshCopies(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	readyQueue := queue.New()
	completed := make([]core.Process, 0, len(jobs))
	timeline := core.Timeline{}

	clock := 0
	arrived := 0
	admit := func() {
		for arrived < len(jobs) && jobs[arrived].ArrivalTime <= clock {
			readyQueue.Enqueue(&jobs[arrived])
			arrived++
		}
	}

	for arrived < len(jobs) || readyQueue.Len() > 0 {
		admit()
		if readyQueue.Len() == 0 {
			// idle until the next arrival
			clock = jobs[arrived].ArrivalTime
			continue
		}

		p := readyQueue.Dequeue().(*core.Process)
		p.Begin(clock)

		run := min(quantum, p.RemainingTime)
		timeline = append(timeline, sliceOf(p, clock, clock+run))
		clock += run
		p.RemainingTime -= run

		admit()

		if p.RemainingTime == 0 {
			p.Finish(clock)
			completed = append(completed, *p)
		} else {
			readyQueue.Enqueue(p)
		}
	}

	return completed, timeline, nil
}
