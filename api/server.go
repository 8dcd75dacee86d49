package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"
)

const shutdownTimeout = 30 * time.Second

// Serve listens on port until ctx is cancelled, then shuts the app down,
// giving in-flight requests up to shutdownTimeout to finish.
func Serve(ctx context.Context, app *fiber.App, port int, logger hclog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", port)
		errc <- app.Listen(fmt.Sprintf(":%d", port))
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listening on :%d: %w", port, err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
