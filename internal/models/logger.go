package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as slow.
const slowQueryThreshold = 200 * time.Millisecond

// logger adapts zerolog to the gorm logger interface.
//
// Queries are logged at debug level. Queries that take longer than
// SlowThreshold are logged at warn level, failed queries at error level.
// Lookups that find no record are expected and never logged as errors.
type logger struct {
	Logger        zerolog.Logger
	SlowThreshold time.Duration
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	switch {
	case err != nil && !isNotFound(err):
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold:
		l.Logger.Warn().Fields(fields).Dur("threshold", l.SlowThreshold).Msg("[GORM] slow query")
	default:
		l.Logger.Debug().Fields(fields).Msg("[GORM] query")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm_logger.ErrRecordNotFound)
}
