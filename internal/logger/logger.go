package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. Level comes from FAKTURO_LOG_LEVEL
// (default warn) and format from FAKTURO_LOG_FORMAT ("console" or "json").
// Everything goes to stderr: stdout is reserved for the output path.
func Setup() error {
	levelName := os.Getenv("FAKTURO_LOG_LEVEL")
	if levelName == "" {
		levelName = "warn"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	var output = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if strings.EqualFold(os.Getenv("FAKTURO_LOG_FORMAT"), "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return nil
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return nil
}

// WithComponent returns a logger with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
