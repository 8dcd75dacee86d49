package schedulers

import "sched-sim/internal/core"

// SchedulePriority is non-preemptive priority scheduling. A lower priority
// value wins; ties go to the process listed first in the input.
func SchedulePriority(processes []core.Process) ([]core.Process, core.Timeline) {
	return scheduleNonPreemptive(processes, func(p core.Process) int {
		return p.Priority
	})
}
