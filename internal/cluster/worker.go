package cluster

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"sched-sim/internal/core"
	"sched-sim/internal/schedulers"
)

// Worker simulates one node: it schedules whatever partition it is handed on
// its own timeline and reports each finished process back on the bus.
type Worker struct {
	NodeID string

	bus    *EventBus
	inbox  chan Event
	logger hclog.Logger
}

// NewWorker subscribes a worker for nodeID. Work events are broadcast to
// every worker, so the inbox holds one event per node in the topology.
func NewWorker(nodeID string, bus *EventBus, topologySize int, logger hclog.Logger) *Worker {
	w := &Worker{
		NodeID: nodeID,
		bus:    bus,
		inbox:  make(chan Event, topologySize),
		logger: logger.Named(nodeID),
	}
	bus.Subscribe(TopicProcesses, w.inbox)
	return w
}

// Run handles work events addressed to this node until ctx is done.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.inbox:
			if event.NodeID != w.NodeID {
				continue
			}
			work, ok := event.Data.(WorkEvent)
			if !ok {
				w.logger.Warn("ignoring malformed work event", "event", event.ID)
				continue
			}
			w.execute(event, work)
		}
	}
}

func (w *Worker) execute(event Event, work WorkEvent) {
	w.logger.Debug("received processes", "count", len(work.Processes), "policy", work.Policy.String())
	w.bus.Publish(newEvent(event.RunID, TopicNodeStatus, w.NodeID, StatusEvent{Status: StatusBusy}))

	result, err := schedulers.Run(work.Policy, work.Processes)
	if err != nil {
		// the coordinator validates the workload before dispatch
		w.logger.Error("scheduling failed", "error", err)
	}
	w.logger.Debug("partition scheduled", "cpu", result.Timeline.Metric())

	for _, p := range result.Processes {
		var slices core.Timeline
		for _, s := range result.Timeline {
			if s.ProcessID == p.ID {
				slices = append(slices, s)
			}
		}
		w.bus.Publish(newEvent(event.RunID, TopicProcessCompleted, w.NodeID, CompletedEvent{Process: p, Slices: slices}))
	}

	w.bus.Publish(newEvent(event.RunID, TopicNodeStatus, w.NodeID, StatusEvent{Status: StatusIdle}))
}
