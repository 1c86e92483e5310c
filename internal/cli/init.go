// Package cli provides the process-level setup shared by finplan commands:
// environment loading, settings validation and logger construction.
package cli

import (
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/rpgo/finplan/internal/log"
)

// LoadEnvFile loads a .env file for local use.
// A missing file is not an error; settings fall back to defaults.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// SetupLogger builds the structured logger described by settings, writing to w,
// and installs it as the slog default.
func SetupLogger(settings *Settings, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	cfg := log.DefaultConfig()
	cfg.Level = level
	cfg.Format = settings.LogFormat
	if w != nil {
		cfg.Output = w
	}
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger, nil
}
