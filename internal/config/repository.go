package config

import (
	"context"
	"fmt"
	"os"

	"taskboard/internal/store"
)

// CreateStore opens the store described by the configuration
func CreateStore(ctx context.Context, config *Config) (store.Store, error) {
	dialect, err := store.LookupDialect(config.Database.Driver)
	if err != nil {
		return nil, err
	}

	if config.IsSQLite() && config.Database.DSN == "" && config.Database.Filename != MemoryDatabase {
		if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	s, err := store.Open(ctx, store.Options{
		Dialect:      dialect,
		DSN:          config.GetDatabaseDSN(),
		MaxOpenConns: config.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (store.Store, error) {
	s, err := store.New("sqlite", MemoryDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return s, nil
}
