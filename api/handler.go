package api

import (
	"errors"
	"math/rand"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"

	"sched-sim/config"
	"sched-sim/internal/cluster"
	"sched-sim/internal/core"
	"sched-sim/internal/requests"
	"sched-sim/internal/responses"
	"sched-sim/internal/schedulers"
	"sched-sim/internal/simulation"
	"sched-sim/internal/workload"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobNext(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Coordinator(ctx *fiber.Ctx) error
	Dispatch(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config      *config.SchedulerConfig
	logger      hclog.Logger
	coordinator *cluster.Coordinator
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger hclog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:      config,
		logger:      logger,
		coordinator: cluster.NewCoordinator(logger),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobNext)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format")
	}

	outcomes, err := schedulers.EvaluateAll(request.Processes, request.Nodes, request.QuantumOr(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Debug("compared all algorithms", "processes", len(request.Processes))
	return ctx.JSON(responses.FromOutcomes(outcomes))
}

// Coordinator serves the action based boundary: "initialize" builds a
// workload and topology, "simulate" schedules a workload under one algorithm.
func (s *SchedulerHandlerImpl) Coordinator(ctx *fiber.Ctx) error {
	var request requests.CoordinatorRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format")
	}

	switch request.Action {
	case requests.ActionInitialize:
		setup, err := s.setup(request.Setup(s.defaults()), nil)
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(responses.SetupResponse{
			Processes:  setup.Processes,
			Nodes:      setup.Nodes,
			Migrations: setup.Moves,
		})

	case requests.ActionSimulate:
		if request.Processes == nil {
			return s.badRequest(ctx, "invalid processes data")
		}
		policy, err := schedulers.NewPolicy(request.AlgorithmName(), request.QuantumOr(s.config.RoundRobinTimeQuantum))
		if err != nil {
			return s.fail(ctx, err)
		}
		outcome, err := schedulers.Evaluate(policy, request.Processes, request.Nodes)
		if err != nil {
			return s.fail(ctx, err)
		}
		s.logger.Debug("simulated", "policy", policy.String(), "processes", len(outcome.Processes))
		return ctx.JSON(responses.SimulateResponse{
			Processes: outcome.Processes,
			Metrics:   outcome.Metrics,
		})

	default:
		return s.badRequest(ctx, "invalid action")
	}
}

// Dispatch runs a distributed simulation: every node schedules its own
// partition in parallel through the cluster coordinator.
func (s *SchedulerHandlerImpl) Dispatch(ctx *fiber.Ctx) error {
	var request requests.DispatchRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format")
	}

	policy, err := schedulers.NewPolicy(request.Algorithm, request.QuantumOr(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return s.fail(ctx, err)
	}

	setup, err := s.setup(request.Setup(s.defaults()), request.Processes)
	if err != nil {
		return s.fail(ctx, err)
	}

	report, err := s.coordinator.Run(ctx.UserContext(), setup.Nodes, policy)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(report)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return s.badRequest(ctx, "invalid request format")
	}

	policy, err := schedulers.NewPolicy(string(algorithm), request.QuantumOr(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return s.fail(ctx, err)
	}

	outcome, err := schedulers.Evaluate(policy, request.Processes, request.Nodes)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.logger.Debug("scheduled", "policy", policy.String(), "processes", len(outcome.Processes), "total_time", outcome.TotalTime)
	return ctx.JSON(responses.FromOutcome(outcome))
}

// setup places processes, or a generated workload when processes is empty.
// Requested sizes are capped by the configured limits before anything is
// allocated.
func (s *SchedulerHandlerImpl) setup(request requests.SetupRequest, processes []core.Process) (simulation.Setup, error) {
	if request.NumNodes > s.config.MaxNodes {
		return simulation.Setup{}, core.InvalidArgument("node count %d exceeds the limit of %d", request.NumNodes, s.config.MaxNodes)
	}
	if len(processes) > 0 {
		if err := schedulers.ValidateWorkload(processes); err != nil {
			return simulation.Setup{}, err
		}
		return simulation.Place(processes, request.NumNodes, request.EnableMigration)
	}

	if request.NumProcesses > s.config.MaxProcesses {
		return simulation.Setup{}, core.InvalidArgument("process count %d exceeds the limit of %d", request.NumProcesses, s.config.MaxProcesses)
	}

	gen := workload.Default()
	if request.Seed != nil {
		gen = workload.NewGenerator(rand.NewSource(*request.Seed))
	}
	return simulation.Prepare(gen, request.NumNodes, request.NumProcesses, request.EnableMigration)
}

func (s *SchedulerHandlerImpl) defaults() requests.Defaults {
	return requests.Defaults{
		NumNodes:        s.config.NumNodes,
		NumProcesses:    s.config.NumProcesses,
		Quantum:         s.config.RoundRobinTimeQuantum,
		EnableMigration: s.config.EnableMigration,
	}
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, msg string) error {
	s.logger.Warn("rejected request", "path", ctx.Path(), "reason", msg)
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: msg})
}

// fail maps engine errors to HTTP: invalid input is the caller's problem,
// anything else is ours.
func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	var engineErr *core.Error
	if !errors.As(err, &engineErr) {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: err.Error()})
	}

	status := fiber.StatusInternalServerError
	if engineErr.Code == core.ErrInvalidArgument {
		status = fiber.StatusBadRequest
		s.logger.Warn("rejected request", "path", ctx.Path(), "error", engineErr.Message)
	} else {
		s.logger.Error("request failed", "path", ctx.Path(), "error", engineErr.Message)
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{
		Error: engineErr.Message,
		Code:  string(engineErr.Code),
	})
}
