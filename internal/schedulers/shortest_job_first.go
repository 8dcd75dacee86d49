package schedulers

import "sched-sim/internal/core"

// ScheduleShortestJobNext is non-preemptive: whenever the CPU frees up it
// picks the arrived process with the smallest burst time. Ties go to the
// process listed first in the input.
func ScheduleShortestJobNext(processes []core.Process) ([]core.Process, core.Timeline) {
	return scheduleNonPreemptive(processes, func(p core.Process) int {
		return p.BurstTime
	})
}

// scheduleNonPreemptive repeatedly selects the arrived process with the
// lowest key and runs it to completion. When nothing has arrived the clock
// jumps to the earliest pending arrival.
func scheduleNonPreemptive(processes []core.Process, key func(core.Process) int) ([]core.Process, core.Timeline) {
	pending := freshCopies(processes)
	done := make([]core.Process, 0, len(pending))
	timeline := make(core.Timeline, 0, len(pending))

	clock := 0
	for len(pending) > 0 {
		next := -1
		for i, p := range pending {
			if p.ArrivalTime > clock {
				continue
			}
			// strict comparison keeps the earliest listed process on ties
			if next == -1 || key(p) < key(pending[next]) {
				next = i
			}
		}

		if next == -1 {
			clock = earliestArrival(pending)
			continue
		}

		p := pending[next]
		pending = append(pending[:next], pending[next+1:]...)

		p.Begin(clock)
		timeline = append(timeline, sliceOf(&p, clock, clock+p.BurstTime))
		clock += p.BurstTime
		p.Finish(clock)

		done = append(done, p)
	}

	return done, timeline
}

func earliestArrival(processes []core.Process) int {
	earliest := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		if p.ArrivalTime < earliest {
			earliest = p.ArrivalTime
		}
	}
	return earliest
}
