package main

import (
	"context"
	"os"

	"taskboard/internal/api"
	"taskboard/internal/cli"
	"taskboard/internal/config"
)

// EnvironmentVar selects the environment the binary runs in
const EnvironmentVar = "TASKBOARD_ENV"

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// developmentDatabase is created in the working directory
const developmentDatabase = "taskboard.db"

// StoreFactory opens the store according to the environment
type StoreFactory struct {
	env Environment
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment) *StoreFactory {
	return &StoreFactory{env: env}
}

// Opener returns the cli.Opener for the environment. Development and testing
// always use sqlite; production opens whatever the configuration names.
func (f *StoreFactory) Opener() cli.Opener {
	return func(ctx context.Context, cfg *config.Config) (api.BusinessAPI, func() error, error) {
		return cli.OpenStore(ctx, f.Configure(cfg))
	}
}

// Configure adjusts the database section of cfg for the environment
func (f *StoreFactory) Configure(cfg *config.Config) *config.Config {
	switch f.env {
	case Development:
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ""
		cfg.Database.Dir = "."
		cfg.Database.Filename = developmentDatabase
	case Testing:
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ""
		cfg.Database.Filename = config.MemoryDatabase
	}
	return cfg
}

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	switch Environment(os.Getenv(EnvironmentVar)) {
	case Development:
		return Development
	case Testing:
		return Testing
	default:
		// Default to production
		return Production
	}
}
