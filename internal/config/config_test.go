package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evenflow/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evenflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoad_Defaults uses an empty file so the search path is not consulted.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""), nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultWorkers, cfg.Solve.Workers)
	assert.Equal(t, config.DefaultFormat, cfg.Solve.Format)
	assert.False(t, cfg.Solve.Exhaustive)
	assert.Equal(t, config.DefaultGenJunctions, cfg.Generate.Junctions)
	assert.InDelta(t, config.DefaultGenDensity, cfg.Generate.Density, 1e-9)
}

// TestLoad_FileEnvFlagPriority checks file < env < flag.
func TestLoad_FileEnvFlagPriority(t *testing.T) {
	path := writeConfig(t, `
log_level: info
solve:
  workers: 2
  format: json
generate:
  count: 9
`)
	t.Setenv("EVENFLOW_SOLVE_WORKERS", "6")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "plain", "")
	require.NoError(t, fs.Parse([]string{"--format", "table"}))

	cfg, err := config.Load(path, map[string]*pflag.Flag{
		"solve.format": fs.Lookup("format"),
		"solve.unset":  nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Solve.Workers)
	assert.Equal(t, "table", cfg.Solve.Format)
	assert.Equal(t, 9, cfg.Generate.Count)
}

// TestLoad_Invalid rejects bad values and malformed files.
func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeConfig(t, "solve:\n  workers: 0\n"), nil)
	assert.ErrorIs(t, err, config.ErrInvalidWorkers)

	_, err = config.Load(writeConfig(t, "solve:\n  format: xml\n"), nil)
	assert.Error(t, err)

	_, err = config.Load(writeConfig(t, "generate:\n  count: -1\n"), nil)
	assert.ErrorIs(t, err, config.ErrInvalidCount)

	_, err = config.Load(writeConfig(t, "solve: [unbalanced\n"), nil)
	assert.Error(t, err)
}
