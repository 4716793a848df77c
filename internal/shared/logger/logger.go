package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New initializes the application logger. devMode switches to human-readable
// console output; level is a zerolog level name such as "debug" or "info".
func New(devMode bool, level string) (zerolog.Logger, error) {
	return newLogger(os.Stderr, devMode, level)
}

func newLogger(out io.Writer, devMode bool, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("unknown log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if devMode {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	logger := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	// zerolog.Ctx falls back to this for contexts without a logger
	zerolog.DefaultContextLogger = &logger
	return logger, nil
}
