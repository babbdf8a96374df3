package config

import (
	"testing"

	"github.com/baditaflorin/go_format_normalizer/internal/adapters/logger"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("normalize", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Load(fs)
}

func TestLoadFromFlags(t *testing.T) {
	cfg, err := load(t,
		"--type", "date",
		"--input", "03/14/2024",
		"--input_format", "MM/DD/YYYY",
		"--output_format", "%d.%m.%Y",
		"--log_level", "debug",
		"--region", "gb",
	)
	require.NoError(t, err)

	assert.Equal(t, "date", cfg.Type)
	assert.Equal(t, "03/14/2024", cfg.Input)
	assert.Equal(t, "MM/DD/YYYY", cfg.InputFormat)
	assert.Equal(t, "%d.%m.%Y", cfg.OutputFormat)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "GB", cfg.Region)
	assert.False(t, cfg.LogJSON)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, "--type", "phone", "--input", "5551234567")
	require.NoError(t, err)

	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Empty(t, cfg.InputFormat)
	assert.Empty(t, cfg.OutputFormat)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("NORMALIZE_LOG_LEVEL", "ERROR")
	t.Setenv("NORMALIZE_OUTPUT_FORMAT", "e164")
	t.Setenv("NORMALIZE_LOG_JSON", "true")

	cfg, err := load(t, "--type", "phone", "--input", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, logger.LevelError, cfg.LogLevel)
	assert.Equal(t, "e164", cfg.OutputFormat)
	assert.True(t, cfg.LogJSON)

	// Flags win over the environment.
	cfg, err = load(t, "--type", "phone", "--input", "5551234567", "--log_level", "WARNING")
	require.NoError(t, err)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing type", []string{"--input", "x"}},
		{"missing input", []string{"--type", "phone"}},
		{"bad log level", []string{"--type", "phone", "--input", "x", "--log_level", "LOUD"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestEmptyInputFlagIsAccepted(t *testing.T) {
	cfg, err := load(t, "--type", "string", "--input", "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Input)
}
