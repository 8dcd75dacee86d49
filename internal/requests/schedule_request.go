package requests

import "sched-sim/internal/core"

const (
	ActionInitialize = "initialize"
	ActionSimulate   = "simulate"
)

// Defaults fill in request fields the caller left out.
type Defaults struct {
	NumNodes        int
	NumProcesses    int
	Quantum         int
	EnableMigration bool
}

// CoordinatorRequest is the single-endpoint boundary format: "initialize"
// builds a workload and topology, "simulate" schedules a given workload.
type CoordinatorRequest struct {
	Action          string         `json:"action"`
	NumNodes        *int           `json:"numNodes,omitempty"`
	NumProcesses    *int           `json:"numProcesses,omitempty"`
	Algorithm       string         `json:"algorithm,omitempty"`
	EnableMigration *bool          `json:"enableMigration,omitempty"`
	Quantum         *int           `json:"quantum,omitempty"`
	Seed            *int64         `json:"seed,omitempty"`
	Processes       []core.Process `json:"processes,omitempty"`
	Nodes           []core.Node    `json:"nodes,omitempty"`
}

func (r CoordinatorRequest) Setup(d Defaults) SetupRequest {
	return SetupRequest{
		NumNodes:        intOr(r.NumNodes, d.NumNodes),
		NumProcesses:    intOr(r.NumProcesses, d.NumProcesses),
		EnableMigration: boolOr(r.EnableMigration, d.EnableMigration),
		Seed:            r.Seed,
	}
}

// AlgorithmName returns the requested algorithm, fcfs when omitted.
func (r CoordinatorRequest) AlgorithmName() string {
	if r.Algorithm == "" {
		return "fcfs"
	}
	return r.Algorithm
}

func (r CoordinatorRequest) QuantumOr(def int) int {
	return intOr(r.Quantum, def)
}

// SetupRequest describes a generated workload on a fresh topology.
type SetupRequest struct {
	NumNodes        int
	NumProcesses    int
	EnableMigration bool
	Seed            *int64
}

// ScheduleRequest runs one or all algorithms over a given workload.
type ScheduleRequest struct {
	Processes []core.Process `json:"processes"`
	Nodes     []core.Node    `json:"nodes,omitempty"`
	Quantum   *int           `json:"quantum,omitempty"`
}

func (r ScheduleRequest) QuantumOr(def int) int {
	return intOr(r.Quantum, def)
}

// DispatchRequest runs a distributed simulation. When Processes is empty a
// workload of NumProcesses is generated.
type DispatchRequest struct {
	NumNodes        *int           `json:"numNodes,omitempty"`
	NumProcesses    *int           `json:"numProcesses,omitempty"`
	Algorithm       string         `json:"algorithm"`
	Quantum         *int           `json:"quantum,omitempty"`
	EnableMigration *bool          `json:"enableMigration,omitempty"`
	Seed            *int64         `json:"seed,omitempty"`
	Processes       []core.Process `json:"processes,omitempty"`
}

func (r DispatchRequest) Setup(d Defaults) SetupRequest {
	return SetupRequest{
		NumNodes:        intOr(r.NumNodes, d.NumNodes),
		NumProcesses:    intOr(r.NumProcesses, d.NumProcesses),
		EnableMigration: boolOr(r.EnableMigration, d.EnableMigration),
		Seed:            r.Seed,
	}
}

func (r DispatchRequest) QuantumOr(def int) int {
	return intOr(r.Quantum, def)
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
