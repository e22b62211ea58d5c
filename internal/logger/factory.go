package logger

import (
	"os"
	"strings"
)

// NewLoggerFromEnv creates a logger configured from SKIRMISH_* environment
// variables.
func NewLoggerFromEnv() (Logger, error) {
	return NewZapLogger(configFromEnv())
}

// NewLoggerWithComponent creates a logger with a component field pre-set.
func NewLoggerWithComponent(component string) (Logger, error) {
	logger, err := NewZapLogger(configFromEnv())
	if err != nil {
		return nil, err
	}
	return logger.With(Field{Key: "component", Value: component}), nil
}

func configFromEnv() Config {
	cfg := DefaultConfig()
	if strings.EqualFold(os.Getenv("SKIRMISH_ENV"), "development") {
		cfg = DevelopmentConfig()
	}

	if level := os.Getenv("SKIRMISH_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("SKIRMISH_LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if sampling := os.Getenv("SKIRMISH_LOG_SAMPLING"); sampling != "" {
		cfg.EnableSampling = strings.EqualFold(sampling, "true")
	}

	return cfg
}
