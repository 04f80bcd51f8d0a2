// Package logger builds the zerolog logger used across the engine.
// Library packages log through Get, which stays silent until Init or
// SetGlobalLogger installs a logger.
package logger

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/qop/config"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // console output instead of JSON
	Out    io.Writer
}

// FromConfig converts the process log settings.
func FromConfig(c config.Log) Config {
	return Config{Level: c.Level, Pretty: c.Pretty}
}

// ParseLevel maps a level name to zerolog, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a structured logger and sets the global level.
func New(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).With().Timestamp().Str("component", "qop").Logger()
}

var current atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	current.Store(&nop)
}

// Get returns the engine logger, zerolog.Nop until one is installed.
func Get() *zerolog.Logger { return current.Load() }

// SetGlobalLogger installs l for the engine and for zerolog/log.
func SetGlobalLogger(l zerolog.Logger) {
	current.Store(&l)
	log.Logger = l
}

// Init configures the global logger from the process configuration.
func Init() zerolog.Logger {
	l := New(FromConfig(config.Get().Log))
	SetGlobalLogger(l)

	return l
}
