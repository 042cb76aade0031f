package app

import (
	"errors"

	"github.com/tasyrkin/filemanipulator/internal/command"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// FilePath names the input file whose lines are transformed.
	FilePath string
	// Plan is the ordered command plan, immutable during processing. An
	// empty plan is valid: no line changes and nothing is emitted.
	Plan command.Plan

	LogFormat string
	LogLevel  string
}

// NewConfig validates the given configuration and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FilePath == "" {
		return nil, errors.New("FilePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
