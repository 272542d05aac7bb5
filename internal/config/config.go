package config

import (
	"github.com/hooprivals/stats-service/internal/logger"
)

// Config is the root application configuration, loaded once at bootstrap and
// passed down by value reference; no component reads the environment itself.
type Config struct {
	Logger   logger.Config  `mapstructure:"logger"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Server   ServerConfig   `mapstructure:"server"`
}

// PostgresConfig carries connection and pool tuning parameters for pgx.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`    // seconds
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`   // seconds
	HealthCheckPeriod int    `mapstructure:"health_check_period"`  // seconds
}

// ServerConfig tunes the HTTP listener.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // seconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}
