package logger

import (
	"os"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewPgxLogger builds the zerolog instance fed to the pgx trace adapter.
// Query logs carry a component field so they are filterable.
func NewPgxLogger(level zerolog.Level) *zerolog.Logger {
	pgxLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()

	return &pgxLogger
}

// GetPgxTraceLogLevel maps the application log level onto pgx's tracelog
// levels. Query-level tracing only appears at debug.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
