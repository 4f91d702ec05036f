package cli

import (
	"context"
	"log/slog"

	"taskboard/internal/logging"
	"taskboard/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	app    *App
	logger *slog.Logger
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(app *App, logger *slog.Logger) *ServeCommand {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ServeCommand{app: app, logger: logger}
}

// Execute seeds the board when configured, then serves until ctx is cancelled
func (c *ServeCommand) Execute(ctx context.Context) error {
	if c.app.config.Seed.Enabled {
		inserted, err := c.app.businessAPI.SeedSampleTasks(ctx)
		if err != nil {
			return c.app.errorHandler.Handle("seed tasks", err)
		}
		c.logger.Info("seeded sample tasks", "count", inserted)
	}

	srv, err := server.New(c.app.businessAPI, c.app.config.Server, c.logger)
	if err != nil {
		return c.app.errorHandler.Handle("start server", err)
	}

	c.logger.Info("starting server",
		"addr", c.app.config.Server.Addr,
		"driver", c.app.config.Database.Driver,
	)
	return srv.ListenAndServe(ctx)
}
