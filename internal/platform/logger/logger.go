// Package logger provides a configured zerolog logger.
package logger

import (
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

// New returns a zerolog.Logger writing JSON to stdout, tagged with the
// service name. DEVLINK_LOG_LEVEL overrides the default info level.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName string) zerolog.Logger {
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	level := zerolog.InfoLevel
	if raw := os.Getenv("DEVLINK_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	return zerolog.New(os.Stdout).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
