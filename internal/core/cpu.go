package core

// Slice is one uninterrupted stretch of CPU time given to a process on the
// simulated clock.
type Slice struct {
	ProcessID string `json:"processId"`
	NodeID    string `json:"nodeId,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

// Timeline is the execution history of a single CPU, in dispatch order.
type Timeline []Slice

type CpuMetric struct {
	TotalTime       int `json:"totalTime"`
	UtilizationTime int `json:"utilizationTime"`
	IdleTime        int `json:"idleTime"`
}

// Metric summarises the timeline. Total time runs from tick 0 to the end of
// the last slice, so idle gaps before the first arrival count as idle.
func (t Timeline) Metric() CpuMetric {
	var m CpuMetric
	for _, s := range t {
		m.UtilizationTime += s.Duration()
		if s.End > m.TotalTime {
			m.TotalTime = s.End
		}
	}
	m.IdleTime = m.TotalTime - m.UtilizationTime
	return m
}

// ExecutedFor returns the CPU time the timeline granted to one process.
func (t Timeline) ExecutedFor(processID string) int {
	total := 0
	for _, s := range t {
		if s.ProcessID == processID {
			total += s.Duration()
		}
	}
	return total
}
