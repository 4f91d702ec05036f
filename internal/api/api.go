// Package api is the facade the HTTP server and the CLI talk to. It owns the
// per-request deadlines and delegates to the dispatcher and listing services.
package api

import (
	"context"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/services"
	"taskboard/internal/validation"
)

// BusinessAPI defines the operations exposed to the outer surfaces
type BusinessAPI interface {
	// Submit validates and applies one mutation request.
	Submit(ctx context.Context, payload services.Payload) (*services.Result, error)

	// AddTask, EditTask and DeleteTask build the matching payload and submit it.
	AddTask(ctx context.Context, description string, priority int64) (*domain.Task, error)
	EditTask(ctx context.Context, id int64, description string, priority int64) (int64, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)

	// ListTasks returns every task, priority ascending then id ascending.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// SeedSampleTasks inserts the sample tasks into an empty board.
	SeedSampleTasks(ctx context.Context) (int, error)
}

// Timeouts bounds each call made through the facade. A zero value disables the bound.
type Timeouts struct {
	Query time.Duration
	Write time.Duration
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services *services.ServiceContainer
	timeouts Timeouts
}

// NewBusinessAPI creates a BusinessAPI over an existing service container
func NewBusinessAPI(container *services.ServiceContainer, timeouts Timeouts) BusinessAPI {
	return &businessAPIImpl{
		services: container,
		timeouts: timeouts,
	}
}

// New wires repository, validator and services from the configuration
func New(repo repository.Repository, cfg *config.Config) BusinessAPI {
	container := &services.ServiceContainer{
		Dispatcher: services.NewDispatcher(repo, validation.NewTaskValidatorWithConfig(cfg)),
		Listing:    services.NewListingQuery(repo),
	}
	return NewBusinessAPI(container, Timeouts{
		Query: cfg.GetQueryTimeout(),
		Write: cfg.GetWriteTimeout(),
	})
}

func (b *businessAPIImpl) Submit(ctx context.Context, payload services.Payload) (*services.Result, error) {
	// Validation happens before the deadline starts.
	action, err := b.services.Dispatcher.Decode(payload)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, b.timeouts.Write)
	defer cancel()

	return b.services.Dispatcher.Execute(ctx, action)
}

func (b *businessAPIImpl) AddTask(ctx context.Context, description string, priority int64) (*domain.Task, error) {
	result, err := b.Submit(ctx, services.Payload{
		Action:      domain.ActionAdd.String(),
		Description: &description,
		Priority:    &priority,
	})
	if err != nil {
		return nil, err
	}
	return result.Task, nil
}

func (b *businessAPIImpl) EditTask(ctx context.Context, id int64, description string, priority int64) (int64, error) {
	result, err := b.Submit(ctx, services.Payload{
		Action:      domain.ActionEdit.String(),
		ID:          &id,
		Description: &description,
		Priority:    &priority,
	})
	if err != nil {
		return 0, err
	}
	return result.Affected, nil
}

func (b *businessAPIImpl) DeleteTask(ctx context.Context, id int64) (int64, error) {
	result, err := b.Submit(ctx, services.Payload{
		Action: domain.ActionDelete.String(),
		ID:     &id,
	})
	if err != nil {
		return 0, err
	}
	return result.Affected, nil
}

func (b *businessAPIImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, b.timeouts.Query)
	defer cancel()

	return b.services.Listing.List(ctx)
}

func (b *businessAPIImpl) SeedSampleTasks(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, b.timeouts.Write)
	defer cancel()

	return services.Seed(ctx, b.services.Listing, b.services.Dispatcher)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
