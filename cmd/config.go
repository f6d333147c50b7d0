package cmd

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"orderdesk/internal/adapters/out/gormdb"
	"orderdesk/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration. Values come from, in increasing
// priority: defaults, config.yaml, a .env file and the process environment.
// Environment keys are the upper-cased paths with dots replaced by
// underscores, so server.port is SERVER_PORT.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   string `mapstructure:"port"`
	Mode                   string `mapstructure:"mode"` // debug / release
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
}

// Addr is the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ShutdownTimeout bounds graceful shutdown.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// DatabasePoolConfig tunes the connection pool.
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig selects the store. An empty DSN with the sqlite driver
// opens orderdesk.db in the working directory.
type DatabaseConfig struct {
	Driver          string             `mapstructure:"driver"`
	DSN             string             `mapstructure:"dsn"`
	SlowThresholdMS int                `mapstructure:"slow_threshold_ms"`
	Pool            DatabasePoolConfig `mapstructure:"pool"`
}

// ToGormOptions converts to gormdb options.
func (c DatabaseConfig) ToGormOptions() gormdb.Options {
	return gormdb.Options{
		Driver: c.Driver,
		DSN:    c.DSN,
		Pool: gormdb.PoolConfig{
			MaxOpenConns:           c.Pool.MaxOpenConns,
			MaxIdleConns:           c.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: c.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: c.Pool.ConnMaxIdleTimeSeconds,
		},
		SlowThreshold: time.Duration(c.SlowThresholdMS) * time.Millisecond,
	}
}

// LogConfig configures release-mode file logging.
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions converts to logger options.
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// LoadConfig reads config.yaml from the given directories (default "." and
// "./etc"). A missing file or .env is not an error.
func LoadConfig(configPaths ...string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./etc"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Database.Driver = gormdb.NormalizeDriver(cfg.Database.Driver)

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("app.env", "development")

	v.SetDefault("database.driver", gormdb.DriverSQLite)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.slow_threshold_ms", 200)
	v.SetDefault("database.pool.max_open_conns", 0)
	v.SetDefault("database.pool.max_idle_conns", 0)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("database.pool.conn_max_idle_time_seconds", 0)

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.filename", "app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
}
