package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm/logger"
)

// defaultSlowQuery marks the point past which a query is logged as slow.
// Generous for a single-user deployment on a local Postgres.
const defaultSlowQuery = 200 * time.Millisecond

// QueryLogger adapts gorm's logger.Interface onto the global slog logger so
// query logs come out in the same format as the rest of the app.
type QueryLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewQueryLogger creates a query logger at the given level with the default
// slow-query threshold.
func NewQueryLogger(level logger.LogLevel) *QueryLogger {
	return &QueryLogger{
		level:         level,
		slowThreshold: defaultSlowQuery,
	}
}

func (l *QueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *QueryLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		Log.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *QueryLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		Log.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *QueryLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		Log.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && l.level >= logger.Error:
		Log.Error("query failed", append(attrs, slog.String("error", err.Error()))...)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		Log.Warn("slow query", attrs...)
	case l.level >= logger.Info:
		Log.Info("query", attrs...)
	}
}
