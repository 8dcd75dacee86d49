package cluster

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"sched-sim/internal/balancer"
	"sched-sim/internal/core"
	"sched-sim/internal/metrics"
	"sched-sim/internal/schedulers"
)

// NodeReport is what one node ran during a distributed simulation.
type NodeReport struct {
	NodeID    string         `json:"nodeId"`
	Processes []core.Process `json:"processes"`
	Timeline  core.Timeline  `json:"timeline"`
	Cpu       core.CpuMetric `json:"cpu"`
}

// Report is the joined result of a distributed simulation.
type Report struct {
	RunID     string               `json:"runId"`
	Algorithm schedulers.Algorithm `json:"algorithm"`
	Nodes     []NodeReport         `json:"nodes"`
	Processes []core.Process       `json:"processes"`
	TotalTime int                  `json:"totalTime"`
	Metrics   metrics.Metrics      `json:"metrics"`
}

// Coordinator pushes each node's partition to a worker over an in-process
// event bus and collects the finished processes. Nodes run in parallel, each
// on its own simulated clock.
type Coordinator struct {
	logger hclog.Logger
}

func NewCoordinator(logger hclog.Logger) *Coordinator {
	return &Coordinator{logger: logger.Named("coordinator")}
}

// Run simulates the topology under policy. It returns once every process has
// been reported back, or with ctx.Err() if ctx ends first.
func (c *Coordinator) Run(ctx context.Context, nodes []core.Node, policy schedulers.Policy) (Report, error) {
	if len(nodes) == 0 {
		return Report{}, core.InvalidArgument("cannot dispatch to an empty topology")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := policy.Validate(); err != nil {
		return Report{}, err
	}

	all := balancer.Flatten(nodes)
	if err := schedulers.ValidateWorkload(all); err != nil {
		return Report{}, err
	}
	expected := len(all)

	runID := uuid.New()
	logger := c.logger.With("run", runID.String())
	logger.Info("dispatching simulation", "nodes", len(nodes), "processes", expected, "policy", policy.String())

	bus := NewEventBus()
	completed := make(chan Event, expected)
	status := make(chan Event, 2*len(nodes))
	bus.Subscribe(TopicProcessCompleted, completed)
	bus.Subscribe(TopicNodeStatus, status)

	runCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		bus.Close()
	}()

	for _, n := range nodes {
		w := NewWorker(n.ID, bus, len(nodes), logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(runCtx)
		}()
	}

	for _, n := range nodes {
		logger.Debug("sending processes", "node", n.ID, "count", len(n.Processes))
		bus.Publish(newEvent(runID, TopicProcesses, n.ID, WorkEvent{
			Policy:    policy,
			Processes: core.CloneAll(n.Processes),
		}))
	}

	byNode := make(map[string]*NodeReport, len(nodes))
	reports := make([]NodeReport, len(nodes))
	for i, n := range nodes {
		reports[i] = NodeReport{NodeID: n.ID, Processes: []core.Process{}, Timeline: core.Timeline{}}
		byNode[n.ID] = &reports[i]
	}

	for received := 0; received < expected; received++ {
		select {
		case <-ctx.Done():
			logger.Warn("simulation abandoned", "received", received, "expected", expected)
			return Report{}, ctx.Err()
		case event := <-completed:
			done, ok := event.Data.(CompletedEvent)
			if !ok {
				return Report{}, core.InconsistentState("unexpected %s payload %T", event.Type, event.Data)
			}
			report, ok := byNode[event.NodeID]
			if !ok {
				return Report{}, core.InconsistentState("completion from unknown node %q", event.NodeID)
			}
			report.Processes = append(report.Processes, done.Process)
			report.Timeline = append(report.Timeline, done.Slices...)
			logger.Trace("process completed", "node", event.NodeID, "process", done.Process.ID)
		}
	}

	drainStatus(status, logger)

	merged := make([]core.Process, 0, expected)
	for i := range reports {
		reports[i].Cpu = reports[i].Timeline.Metric()
		merged = append(merged, reports[i].Processes...)
	}

	totalTime := metrics.TotalTime(merged)
	m, err := metrics.Collect(merged, nodes, totalTime)
	if err != nil {
		return Report{}, fmt.Errorf("collecting metrics for run %s: %w", runID, err)
	}

	logger.Info("simulation finished", "total_time", totalTime, "throughput", m.Throughput)
	return Report{
		RunID:     runID.String(),
		Algorithm: policy.Algorithm,
		Nodes:     reports,
		Processes: merged,
		TotalTime: totalTime,
		Metrics:   m,
	}, nil
}

func drainStatus(status <-chan Event, logger hclog.Logger) {
	for {
		select {
		case event := <-status:
			if s, ok := event.Data.(StatusEvent); ok {
				logger.Debug("node status", "node", event.NodeID, "status", s.Status)
			}
		default:
			return
		}
	}
}
