package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qop.yaml")
	body := "schema:\n  major_version: 3\n  minor_version: 1\nmatrix:\n  max_modes: 8\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, uint32(3), cfg.Schema.MajorVersion)
	require.Equal(t, uint32(1), cfg.Schema.MinorVersion)
	require.Equal(t, 8, cfg.Matrix.MaxModes)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QOP_MATRIX_MAX_MODES", "5")
	t.Setenv("QOP_LOG_LEVEL", "warn")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Matrix.MaxModes)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("QOP_MATRIX_MAX_MODES", "40")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestGet_Stable(t *testing.T) {
	require.Equal(t, config.Get(), config.Get())
}
