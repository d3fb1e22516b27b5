package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. Pretty console output on a TTY-ish
// dev setup is not worth the dependency surface; plain JSON everywhere.
func New(service string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", service).
		Logger()
}
