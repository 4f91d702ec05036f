package cli

import (
	"context"
	"io"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/repository"
)

// App bundles what command handlers need
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		businessAPI:  businessAPI,
		config:       cfg,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

// Opener builds the BusinessAPI for a loaded configuration. The returned
// close function releases the underlying store.
type Opener func(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error)

// OpenStore is the production Opener: it opens the configured store and
// wires repository, services and api on top of it.
func OpenStore(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
	s, err := config.CreateStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return api.New(repository.New(s), cfg), s.Close, nil
}
