package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// pgxLogger adapts zerolog.Logger to pgx's tracelog interface.
type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(logger zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With().Str("module", "repository").Str("component", "pgx").Logger()}
}

var pgxLevels = map[tracelog.LogLevel]zerolog.Level{
	tracelog.LogLevelTrace: zerolog.TraceLevel,
	tracelog.LogLevelDebug: zerolog.DebugLevel,
	tracelog.LogLevelInfo:  zerolog.InfoLevel,
	tracelog.LogLevelWarn:  zerolog.WarnLevel,
	tracelog.LogLevelError: zerolog.ErrorLevel,
}

// Log implements tracelog.Logger. SQL text and args are only emitted at
// trace level; match snapshots are large JSON documents.
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	if level == tracelog.LogLevelNone {
		return
	}
	zl, ok := pgxLevels[level]
	if !ok {
		zl = zerolog.InfoLevel
	}
	event := l.logger.WithLevel(zl)
	if !ok {
		event = event.Str("pgx_log_level", level.String())
	}

	fields := make(map[string]any, len(data))
	for k, v := range data {
		if (k == "sql" || k == "args") && level != tracelog.LogLevelTrace {
			continue
		}
		fields[k] = v
	}
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}
