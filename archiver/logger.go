package archiver

import (
	"context"
	"time"

	"go.uber.org/zap"
	glogger "gorm.io/gorm/logger"
)

// gormLogger forwards gorm diagnostics to zap at debug level.
type gormLogger struct {
	log *zap.Logger
}

func newGormLogger(log *zap.Logger) glogger.Interface {
	if log == nil {
		log = zap.NewNop()
	}
	return &gormLogger{log: log.Named("archiver")}
}

func (g *gormLogger) LogMode(glogger.LogLevel) glogger.Interface {
	return g
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	g.log.Sugar().Debugf(msg, args...)
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	g.log.Sugar().Warnf(msg, args...)
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	g.log.Sugar().Errorf(msg, args...)
}

func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	g.log.Debug("query",
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", time.Since(begin)),
		zap.Error(err),
	)
}
