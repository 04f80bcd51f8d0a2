package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qop/config"
	"github.com/katalvlaran/qop/logger"
)

// TestGet_SilentByDefault keeps library logging off until a logger is installed.
func TestGet_SilentByDefault(t *testing.T) {
	require.Equal(t, zerolog.Disabled, logger.Get().GetLevel())

	var buf bytes.Buffer
	logger.SetGlobalLogger(logger.New(logger.Config{Level: "debug", Out: &buf}))
	t.Cleanup(func() {
		logger.SetGlobalLogger(zerolog.Nop())
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	logger.Get().Debug().Msg("installed")
	require.Contains(t, buf.String(), "installed")
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "info", Out: &buf})
	l.Info().Int("terms", 3).Msg("converted")

	require.Contains(t, buf.String(), `"message":"converted"`)
	require.Contains(t, buf.String(), `"terms":3`)
	require.Contains(t, buf.String(), `"component":"qop"`)
}

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
		{"unknown defaults to info", "verbose", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger.New(logger.Config{Level: tc.level, Out: &bytes.Buffer{}})
			require.Equal(t, tc.want, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestNew_DebugFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "info", Out: &buf})
	l.Debug().Msg("hidden")
	require.Empty(t, buf.String())
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Level: "info", Pretty: true, Out: &buf})
	l.Info().Msg("pretty")
	require.Contains(t, buf.String(), "pretty")
	require.NotContains(t, buf.String(), `"message"`)
}

func TestFromConfig(t *testing.T) {
	c := logger.FromConfig(config.Log{Level: "warn", Pretty: true})
	require.Equal(t, "warn", c.Level)
	require.True(t, c.Pretty)
}

func TestInit_InstallsGlobal(t *testing.T) {
	l := logger.Init()
	t.Cleanup(func() {
		logger.SetGlobalLogger(zerolog.Nop())
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	require.Equal(t, logger.ParseLevel(config.Get().Log.Level), zerolog.GlobalLevel())
	require.NotEqual(t, zerolog.Disabled, l.GetLevel())
}
