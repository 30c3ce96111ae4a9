package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. The level string comes from the
// LOG_LEVEL environment variable; anything unrecognized means info.
func New(level string) *zerolog.Logger {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	log := zerolog.New(os.Stdout).
		Level(parsedLevel).
		With().
		Timestamp().
		Logger()

	return &log
}
