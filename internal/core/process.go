package core

// Process is a unit of work. Timing fields stay nil until a scheduler run
// fills them in.
type Process struct {
	ID            string `json:"id"`
	ArrivalTime   int    `json:"arrivalTime"`
	BurstTime     int    `json:"burstTime"`
	RemainingTime int    `json:"remainingTime"`
	Priority      int    `json:"priority"`
	NodeID        string `json:"nodeId,omitempty"`

	StartTime      *int `json:"startTime,omitempty"`
	FinishTime     *int `json:"finishTime,omitempty"`
	WaitTime       *int `json:"waitTime,omitempty"`
	TurnaroundTime *int `json:"turnaroundTime,omitempty"`
	ResponseTime   *int `json:"responseTime,omitempty"`
}

func NewProcess(id string, arrivalTime, burstTime, priority int) Process {
	return Process{
		ID:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		RemainingTime: burstTime,
		Priority:      priority,
	}
}

// Clone returns a deep copy. The copy never shares timing pointers with p.
func (p Process) Clone() Process {
	c := p
	c.StartTime = copyInt(p.StartTime)
	c.FinishTime = copyInt(p.FinishTime)
	c.WaitTime = copyInt(p.WaitTime)
	c.TurnaroundTime = copyInt(p.TurnaroundTime)
	c.ResponseTime = copyInt(p.ResponseTime)
	return c
}

// Fresh returns a copy with every timing field cleared and the full burst
// remaining, ready for a new scheduler run. The node placement is kept.
func (p Process) Fresh() Process {
	return Process{
		ID:            p.ID,
		ArrivalTime:   p.ArrivalTime,
		BurstTime:     p.BurstTime,
		RemainingTime: p.BurstTime,
		Priority:      p.Priority,
		NodeID:        p.NodeID,
	}
}

func (p Process) Started() bool {
	return p.StartTime != nil
}

func (p Process) Finished() bool {
	return p.FinishTime != nil
}

// Begin records the first execution at clock. Later calls are no-ops so the
// response time is only ever set once.
func (p *Process) Begin(clock int) {
	if p.StartTime != nil {
		return
	}
	p.StartTime = Int(clock)
	p.ResponseTime = Int(clock - p.ArrivalTime)
}

// Finish closes the process at clock and derives turnaround and wait time.
func (p *Process) Finish(clock int) {
	turnaround := clock - p.ArrivalTime
	p.RemainingTime = 0
	p.FinishTime = Int(clock)
	p.TurnaroundTime = Int(turnaround)
	p.WaitTime = Int(turnaround - p.BurstTime)
}

// Validate checks the descriptor fields and, for finished processes, the
// timing identities.
func (p Process) Validate() error {
	switch {
	case p.ID == "":
		return InvalidArgument("process id must not be empty")
	case p.ArrivalTime < 0:
		return InvalidArgument("process %s: arrival time %d is negative", p.ID, p.ArrivalTime)
	case p.BurstTime <= 0:
		return InvalidArgument("process %s: burst time %d must be positive", p.ID, p.BurstTime)
	case p.RemainingTime < 0 || p.RemainingTime > p.BurstTime:
		return InconsistentState("process %s: remaining time %d outside [0, %d]", p.ID, p.RemainingTime, p.BurstTime)
	}

	if !p.Finished() {
		return nil
	}
	if p.StartTime == nil || p.WaitTime == nil || p.TurnaroundTime == nil || p.ResponseTime == nil {
		return InconsistentState("process %s: finished without complete timing fields", p.ID)
	}
	if *p.TurnaroundTime != *p.FinishTime-p.ArrivalTime {
		return InconsistentState("process %s: turnaround %d != finish %d - arrival %d", p.ID, *p.TurnaroundTime, *p.FinishTime, p.ArrivalTime)
	}
	if *p.WaitTime != *p.TurnaroundTime-p.BurstTime {
		return InconsistentState("process %s: wait %d != turnaround %d - burst %d", p.ID, *p.WaitTime, *p.TurnaroundTime, p.BurstTime)
	}
	if p.RemainingTime != 0 {
		return InconsistentState("process %s: finished with %d remaining", p.ID, p.RemainingTime)
	}
	return nil
}

// CloneAll deep copies a process list.
func CloneAll(processes []Process) []Process {
	out := make([]Process, len(processes))
	for i, p := range processes {
		out[i] = p.Clone()
	}
	return out
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
