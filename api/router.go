package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hashicorp/go-hclog"
)

// NewApp builds the fiber app with every route registered.
func NewApp(handler SchedulerHandler, log hclog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "sched-sim",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: log.StandardWriter(&hclog.StandardLoggerOptions{ForceLevel: hclog.Debug}),
		Format: "${status} ${method} ${path} ${latency}\n",
	}))

	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Post("/coordinator", handler.Coordinator)

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjn", handler.ShortestJobNext)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/dispatch", handler.Dispatch)
	}

	return app
}
