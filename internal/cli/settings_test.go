package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FINPLAN_LOG_LEVEL", "FINPLAN_LOG_FORMAT", "FINPLAN_FORMAT", "FINPLAN_WORKERS", "FINPLAN_CURRENCY"} {
		t.Setenv(k, "")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearEnv(t)
	s := LoadSettings()
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
	assert.Equal(t, "console", s.Format)
	assert.Equal(t, calculation.DefaultWorkers, s.Workers)
	assert.Empty(t, s.Currency)
	assert.NoError(t, s.Validate())
}

func TestLoadSettingsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINPLAN_LOG_LEVEL", "debug")
	t.Setenv("FINPLAN_LOG_FORMAT", "json")
	t.Setenv("FINPLAN_FORMAT", "csv-detailed")
	t.Setenv("FINPLAN_WORKERS", "8")
	t.Setenv("FINPLAN_CURRENCY", "€")

	s := LoadSettings()
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, "csv-detailed", s.Format)
	assert.Equal(t, 8, s.Workers)
	assert.Equal(t, "€", s.Currency)
	assert.NoError(t, s.Validate())
}

func TestValidateAggregatesErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINPLAN_LOG_LEVEL", "loud")
	t.Setenv("FINPLAN_LOG_FORMAT", "xml")
	t.Setenv("FINPLAN_FORMAT", "pdf")
	t.Setenv("FINPLAN_WORKERS", "many")

	err := LoadSettings().Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "settings validation failed")
	assert.Contains(t, msg, "unknown log level")
	assert.Contains(t, msg, "invalid log format 'xml'")
	assert.Contains(t, msg, "invalid report format 'pdf'")
	assert.Contains(t, msg, "invalid worker count -1")
}

func TestValidateWorkerBounds(t *testing.T) {
	s := &Settings{LogLevel: "info", LogFormat: "text", Format: "all", Workers: 1000}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 256")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FINPLAN_WORKERS=2\n"), 0o644))
	// t.Setenv above left the variable empty; godotenv does not override set
	// variables, so unset it first.
	require.NoError(t, os.Unsetenv("FINPLAN_WORKERS"))

	LoadEnvFile(path)
	assert.Equal(t, 2, LoadSettings().Workers)

	// missing files are ignored
	LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := SetupLogger(&Settings{LogLevel: "info", LogFormat: "json"}, &buf)
	require.NoError(t, err)
	logger.Info("ready")
	assert.Contains(t, buf.String(), `"msg":"ready"`)
	assert.Contains(t, buf.String(), `"component":"app"`)

	_, err = SetupLogger(&Settings{LogLevel: "chatty"}, &buf)
	assert.Error(t, err)
}
