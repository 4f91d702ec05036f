package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskboard/internal/config"
)

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		value    string
		expected Environment
	}{
		{"development", Development},
		{"testing", Testing},
		{"production", Production},
		{"", Production},
		{"staging", Production},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(EnvironmentVar, tt.value)
			assert.Equal(t, tt.expected, GetEnvironment())
		})
	}
}

func TestStoreFactory_Configure(t *testing.T) {
	t.Run("testing forces in-memory sqlite", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Database.Driver = "postgres"
		cfg.Database.DSN = "postgres://localhost/taskboard"

		got := NewStoreFactory(Testing).Configure(cfg)
		assert.Equal(t, "sqlite", got.Database.Driver)
		assert.Empty(t, got.Database.DSN)
		assert.Equal(t, config.MemoryDatabase, got.GetDatabaseDSN())
	})

	t.Run("development uses the working directory", func(t *testing.T) {
		got := NewStoreFactory(Development).Configure(config.NewConfig())
		assert.Equal(t, "taskboard.db", got.GetDatabasePath())
	})

	t.Run("production leaves the configuration alone", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Database.Filename = "prod.db"

		got := NewStoreFactory(Production).Configure(cfg)
		assert.Equal(t, "prod.db", got.Database.Filename)
	})
}

func TestStoreFactory_OpenerTesting(t *testing.T) {
	businessAPI, closeFn, err := NewStoreFactory(Testing).Opener()(context.Background(), config.NewConfig())
	require.NoError(t, err)
	defer closeFn()

	task, err := businessAPI.AddTask(context.Background(), "In memory", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
}
