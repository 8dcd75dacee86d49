package schedulers

import (
	"fmt"
	"strings"

	"sched-sim/internal/core"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobNext     Algorithm = "sjn"
	RoundRobin          Algorithm = "rr"
	Priority            Algorithm = "priority"
)

// Algorithms lists every policy in the order results are reported.
var Algorithms = []Algorithm{FirstComeFirstServe, ShortestJobNext, RoundRobin, Priority}

// ParseAlgorithm accepts the wire names plus "round_robin" for RoundRobin.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case FirstComeFirstServe, ShortestJobNext, RoundRobin, Priority:
		return a, nil
	case "round_robin":
		return RoundRobin, nil
	default:
		return "", core.InvalidArgument("unknown scheduling algorithm %q", name)
	}
}

// Name is the human readable policy name.
func (a Algorithm) Name() string {
	switch a {
	case FirstComeFirstServe:
		return "First Come First Served"
	case ShortestJobNext:
		return "Shortest Job Next"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority"
	default:
		return string(a)
	}
}

// Policy selects one algorithm. Quantum only applies to RoundRobin.
type Policy struct {
	Algorithm Algorithm `json:"algorithm"`
	Quantum   int       `json:"quantum,omitempty"`
}

func NewPolicy(name string, quantum int) (Policy, error) {
	algorithm, err := ParseAlgorithm(name)
	if err != nil {
		return Policy{}, err
	}
	policy := Policy{Algorithm: algorithm}
	if algorithm == RoundRobin {
		policy.Quantum = quantum
	}
	return policy, policy.Validate()
}

func (p Policy) Validate() error {
	switch p.Algorithm {
	case FirstComeFirstServe, ShortestJobNext, Priority:
		return nil
	case RoundRobin:
		if p.Quantum <= 0 {
			return core.InvalidArgument("round robin quantum %d must be positive", p.Quantum)
		}
		return nil
	default:
		return core.InvalidArgument("unknown scheduling algorithm %q", string(p.Algorithm))
	}
}

func (p Policy) String() string {
	if p.Algorithm == RoundRobin {
		return fmt.Sprintf("%s(q=%d)", p.Algorithm, p.Quantum)
	}
	return string(p.Algorithm)
}

// Result is one completed run: every input process exactly once, fully
// timed, plus the CPU slices that produced the timings.
type Result struct {
	Algorithm Algorithm      `json:"algorithm"`
	Processes []core.Process `json:"processes"`
	Timeline  core.Timeline  `json:"timeline"`
}

// Run schedules a private copy of processes under policy. The input slice is
// left untouched, so the same workload can be run under several policies.
func Run(policy Policy, processes []core.Process) (Result, error) {
	if err := policy.Validate(); err != nil {
		return Result{}, err
	}
	if err := ValidateWorkload(processes); err != nil {
		return Result{}, err
	}

	result := Result{Algorithm: policy.Algorithm}
	switch policy.Algorithm {
	case FirstComeFirstServe:
		result.Processes, result.Timeline = ScheduleFirstComeFirstServe(processes)
	case ShortestJobNext:
		result.Processes, result.Timeline = ScheduleShortestJobNext(processes)
	case Priority:
		result.Processes, result.Timeline = SchedulePriority(processes)
	case RoundRobin:
		var err error
		result.Processes, result.Timeline, err = ScheduleRoundRobin(processes, policy.Quantum)
		if err != nil {
			return Result{}, err
		}
	}
	return result, nil
}

// Schedule is Run without the timeline.
func Schedule(policy Policy, processes []core.Process) ([]core.Process, error) {
	result, err := Run(policy, processes)
	if err != nil {
		return nil, err
	}
	return result.Processes, nil
}

// ValidateWorkload checks every descriptor and rejects duplicate ids.
func ValidateWorkload(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return core.InvalidArgument("duplicate process id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// freshCopies clones the workload with timing cleared and the full burst
// remaining. Every policy works on this copy only.
func freshCopies(processes []core.Process) []core.Process {
	out := make([]core.Process, len(processes))
	for i, p := range processes {
		out[i] = p.Fresh()
	}
	return out
}

func sliceOf(p *core.Process, start, end int) core.Slice {
	return core.Slice{ProcessID: p.ID, NodeID: p.NodeID, Start: start, End: end}
}
