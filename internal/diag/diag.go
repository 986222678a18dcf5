// ABOUTME: Structured file logging and panic isolation for the reader.
// ABOUTME: Routes zerolog output to a rotated file since the TUI owns the terminal.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global zerolog logger to write to a rotated file at
// path. An empty path discards output, which keeps tests quiet.
func Setup(path string) error {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = io.Discard
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Logger returns a logger tagged with the given component name.
func Logger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Error logs err with contextual fields under the given component.
func Error(component string, err error, fields map[string]string) {
	logger := Logger(component)
	ev := logger.Error().Err(err)
	for k, v := range fields {
		ev = ev.Str(k, v)
	}
	ev.Msg("recovered error")
}

// Recover runs fn and converts any panic into a logged error. It is the
// isolate-and-report boundary wrapped around each unit of render/fetch work
// so that one malformed record cannot take down the program loop.
func Recover(component string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", component, r)
			Error(component, err, nil)
		}
	}()
	fn()
	return nil
}
