package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// TASKBOARD_DATABASE_DRIVER for database.driver.
const EnvPrefix = "TASKBOARD"

// Loader handles loading configuration from multiple sources
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// WithConfigFile makes the loader read the given YAML file. A missing
// explicit file is an error; without one the loader looks for an optional
// taskboard.yaml in the working directory.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.read()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigFileUsed returns the config file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) read() (*Config, error) {
	setDefaults(l.v, NewConfig())

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
	} else {
		l.v.SetConfigName("taskboard")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// setDefaults registers every key so environment variables are seen by Unmarshal
func setDefaults(v *viper.Viper, defaults *Config) {
	// Database defaults
	v.SetDefault("database.driver", defaults.Database.Driver)
	v.SetDefault("database.dsn", defaults.Database.DSN)
	v.SetDefault("database.dir", defaults.Database.Dir)
	v.SetDefault("database.filename", defaults.Database.Filename)
	v.SetDefault("database.query_timeout", defaults.Database.QueryTimeout)
	v.SetDefault("database.write_timeout", defaults.Database.WriteTimeout)
	v.SetDefault("database.max_open_conns", defaults.Database.MaxOpenConns)
	v.SetDefault("database.dir_permissions", defaults.Database.DirPermissions)

	// Server defaults
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("server.static_dir", defaults.Server.StaticDir)

	// Validation defaults
	v.SetDefault("validation.description_max_length", defaults.Validation.DescriptionMaxLength)
	v.SetDefault("validation.max_priority", defaults.Validation.MaxPriority)

	// Logging defaults
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	// Seed defaults
	v.SetDefault("seed.enabled", defaults.Seed.Enabled)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDriver       *string
	DBDSN          *string
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Server overrides
	Addr      *string
	StaticDir *string

	// Validation overrides
	DescriptionMaxLength *int
	MaxPriority          *int64

	// Logging overrides
	LogLevel  *string
	LogFormat *string

	// Seed overrides
	Seed *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDriver != nil {
		config.Database.Driver = *overrides.DBDriver
	}
	if overrides.DBDSN != nil {
		config.Database.DSN = *overrides.DBDSN
	}
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Server overrides
	if overrides.Addr != nil {
		config.Server.Addr = *overrides.Addr
	}
	if overrides.StaticDir != nil {
		config.Server.StaticDir = *overrides.StaticDir
	}

	// Validation overrides
	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}
	if overrides.MaxPriority != nil {
		config.Validation.MaxPriority = *overrides.MaxPriority
	}

	// Logging overrides
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}

	// Seed overrides
	if overrides.Seed != nil {
		config.Seed.Enabled = *overrides.Seed
	}
}
