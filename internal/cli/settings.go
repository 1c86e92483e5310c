package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/log"
	"github.com/rpgo/finplan/internal/output"
)

// Settings are process-level options read from the environment
type Settings struct {
	LogLevel  string
	LogFormat string
	// Format is the default report format for `finplan run`
	Format string
	// Workers bounds concurrent scenario evaluation
	Workers int
	// Currency overrides the symbol of scenario files that do not set one
	Currency string
}

// LoadSettings reads FINPLAN_* variables, falling back to defaults
func LoadSettings() *Settings {
	return &Settings{
		LogLevel:  getEnv("FINPLAN_LOG_LEVEL", "warn"),
		LogFormat: getEnv("FINPLAN_LOG_FORMAT", log.FormatText),
		Format:    getEnv("FINPLAN_FORMAT", "console"),
		Workers:   getEnvInt("FINPLAN_WORKERS", calculation.DefaultWorkers),
		Currency:  getEnv("FINPLAN_CURRENCY", ""),
	}
}

// Validate validates the settings and returns every problem at once
func (s *Settings) Validate() error {
	var errors []string

	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	switch strings.ToLower(s.LogFormat) {
	case log.FormatText, log.FormatJSON:
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", s.LogFormat))
	}

	if output.GetFormatterByName(s.Format) == nil && !strings.EqualFold(s.Format, "all") {
		errors = append(errors, fmt.Sprintf("invalid report format '%s': must be one of %v", s.Format, output.AvailableFormatterNames()))
	}

	if s.Workers < 1 {
		errors = append(errors, fmt.Sprintf("invalid worker count %d: must be at least 1", s.Workers))
	} else if s.Workers > 256 {
		errors = append(errors, fmt.Sprintf("invalid worker count %d: must be at most 256", s.Workers))
	}

	if len(errors) > 0 {
		return fmt.Errorf("settings validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns -1 for a set but unparsable value so Validate reports it
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return -1
		}
		return i
	}
	return defaultValue
}
