package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultDescriptionMaxLength of 0 leaves descriptions unbounded
	DefaultDescriptionMaxLength = 0

	// MaxStoredPriority is the largest priority every dialect's column holds
	MaxStoredPriority int64 = math.MaxInt32

	// DefaultMaxPriority bounds task priorities when no config is supplied
	DefaultMaxPriority = MaxStoredPriority

	// MemoryDatabase selects an in-memory sqlite database
	MemoryDatabase = ":memory:"
)

// Config holds all configuration options for the taskboard application
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
	Validation ValidationConfig `mapstructure:"validation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Seed       SeedConfig       `mapstructure:"seed"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver"`
	DSN            string        `mapstructure:"dsn"`
	Dir            string        `mapstructure:"dir"`
	Filename       string        `mapstructure:"filename"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxOpenConns   int           `mapstructure:"max_open_conns"`
	DirPermissions uint32        `mapstructure:"dir_permissions"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	StaticDir       string        `mapstructure:"static_dir"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int   `mapstructure:"description_max_length"`
	MaxPriority          int64 `mapstructure:"max_priority"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SeedConfig controls the sample tasks inserted on startup
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".taskboard")

	return &Config{
		Database: DatabaseConfig{
			Driver:         "sqlite",
			Dir:            defaultDBDir,
			Filename:       "taskboard.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			MaxOpenConns:   10,
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: DefaultDescriptionMaxLength,
			MaxPriority:          DefaultMaxPriority,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Seed: SeedConfig{
			Enabled: false,
		},
	}
}

// IsSQLite reports whether the configured driver is the embedded sqlite engine
func (c *Config) IsSQLite() bool {
	switch strings.ToLower(c.Database.Driver) {
	case "", "sqlite", "sqlite3":
		return true
	}
	return false
}

// GetDatabasePath returns the full path to the sqlite database file
func (c *Config) GetDatabasePath() string {
	if c.Database.Filename == MemoryDatabase {
		return MemoryDatabase
	}
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetDatabaseDSN returns the DSN handed to the driver. An explicit dsn wins;
// sqlite falls back to dir/filename.
func (c *Config) GetDatabaseDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	if c.IsSQLite() {
		return c.GetDatabasePath()
	}
	return ""
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch strings.ToLower(c.Database.Driver) {
	case "sqlite", "sqlite3", "mysql", "postgres", "postgresql", "pgx":
	default:
		return &ConfigError{Field: "database.driver", Message: "driver must be one of sqlite, mysql, postgres"}
	}
	if c.IsSQLite() && c.Database.DSN == "" {
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
		if c.Database.Filename != MemoryDatabase && c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
	}
	if !c.IsSQLite() && c.Database.DSN == "" {
		return &ConfigError{Field: "database.dsn", Message: "dsn is required for " + c.Database.Driver}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Database.MaxOpenConns < 0 {
		return &ConfigError{Field: "database.max_open_conns", Message: "max open connections cannot be negative"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative (0 means unlimited)"}
	}
	if c.Validation.MaxPriority < 0 {
		return &ConfigError{Field: "validation.max_priority", Message: "max priority cannot be negative"}
	}
	if c.Validation.MaxPriority > MaxStoredPriority {
		return &ConfigError{Field: "validation.max_priority", Message: fmt.Sprintf("max priority cannot exceed %d", MaxStoredPriority)}
	}

	// Validate logging configuration
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "level must be one of debug, info, warn, error"}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be text or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
