// Package logging configures the single process-wide zerolog logger
// this module's CORE and CLI share. The CORE only ever logs
// observationally (build-phase diagnostics); nothing here affects
// control flow.
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger zerolog.Logger
)

func init() {
	setDefault(zerolog.InfoLevel)
}

func setDefault(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(writer).With().Timestamp().Logger().Level(level)
}

// Configure sets the process-wide logger's minimum level and output
// format. verbose selects debug-level console output; the CLI calls
// this once, from a -v/--verbose flag, before running any command.
func Configure(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	setDefault(level)
}

// Get returns the shared logger.
func Get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return &logger
}
