package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "taskboard.db", cfg.Database.Filename)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, DefaultDescriptionMaxLength, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, DefaultMaxPriority, cfg.Validation.MaxPriority)
	assert.False(t, cfg.Seed.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_GetDatabaseDSN(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *Config)
		expected string
	}{
		{
			name: "sqlite file",
			modify: func(c *Config) {
				c.Database.Dir = "/tmp/tb"
				c.Database.Filename = "tasks.db"
			},
			expected: filepath.Join("/tmp/tb", "tasks.db"),
		},
		{
			name:     "sqlite memory",
			modify:   func(c *Config) { c.Database.Filename = MemoryDatabase },
			expected: MemoryDatabase,
		},
		{
			name: "explicit dsn wins",
			modify: func(c *Config) {
				c.Database.Driver = "mysql"
				c.Database.DSN = "user:pass@tcp(localhost:3306)/tasks"
			},
			expected: "user:pass@tcp(localhost:3306)/tasks",
		},
		{
			name:     "postgres without dsn",
			modify:   func(c *Config) { c.Database.Driver = "postgres" },
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			assert.Equal(t, tt.expected, cfg.GetDatabaseDSN())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(c *Config)
		expectedField string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver"},
		{"empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"empty dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"memory needs no dir", func(c *Config) {
			c.Database.Dir = ""
			c.Database.Filename = MemoryDatabase
		}, ""},
		{"mysql without dsn", func(c *Config) { c.Database.Driver = "mysql" }, "database.dsn"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"negative write timeout", func(c *Config) { c.Database.WriteTimeout = -time.Second }, "database.write_timeout"},
		{"negative pool size", func(c *Config) { c.Database.MaxOpenConns = -1 }, "database.max_open_conns"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "server.shutdown_timeout"},
		{"unlimited description length", func(c *Config) { c.Validation.DescriptionMaxLength = 0 }, ""},
		{"negative description length", func(c *Config) { c.Validation.DescriptionMaxLength = -1 }, "validation.description_max_length"},
		{"negative max priority", func(c *Config) { c.Validation.MaxPriority = -1 }, "validation.max_priority"},
		{"max priority beyond the stored range", func(c *Config) { c.Validation.MaxPriority = MaxStoredPriority + 1 }, "validation.max_priority"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			var configErr *ConfigError
			require.True(t, errors.As(err, &configErr), "expected *ConfigError, got %v", err)
			assert.Equal(t, tt.expectedField, configErr.Field)
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	assert.Equal(t, "server.addr: listen address cannot be empty", err.Error())
}
