// Package logger builds the application's root zerolog logger from config.
// Every layer derives child loggers from it with module/component fields.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Config controls the shape of the root logger. Validated before use so a
// typo in config fails fast at startup instead of producing silent defaults.
type Config struct {
	Level          string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format         string `mapstructure:"format" validate:"oneof=json console"`
	TimeField      string `mapstructure:"time_field"`
	TimeFormat     string `mapstructure:"time_format"`
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Env            string `mapstructure:"env" validate:"oneof=dev staging prod"`
	WithCaller     bool   `mapstructure:"with_caller"`
}

// New builds the root logger. Production-like environments always log JSON to
// stdout; dev gets a human console writer on stderr.
func New(cfg *Config) (zerolog.Logger, error) {
	cfg.setDefaults()

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = cfg.TimeFormat

	var logger zerolog.Logger
	if cfg.Format == "console" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		logger = zerolog.New(writer)
	} else {
		logger = zerolog.New(os.Stdout)
	}
	logger = logger.With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("version", cfg.ServiceVersion).
		Str("env", cfg.Env).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "prod"
	}
	if c.Level == "" {
		if c.Env == "dev" {
			c.Level = "debug"
		} else {
			c.Level = "info"
		}
	}
	if c.Format == "" {
		if c.Env == "dev" {
			c.Format = "console"
		} else {
			c.Format = "json"
		}
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = time.RFC3339Nano
	}
	if !c.WithCaller && c.Env == "dev" {
		c.WithCaller = true
	}
	if c.ServiceName == "" {
		c.ServiceName = "hooprivals-stats-service"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = "0.1.0"
	}
}
