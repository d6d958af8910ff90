package logging

import (
	"fmt"
	"strings"

	"go-shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ log.Logger = (*ZapLogger)(nil)

// ZapLogger is a kratos log.Logger that writes through zap.
type ZapLogger struct {
	log *zap.Logger
}

// NewZapLogger builds a zap logger from c. Kratos supplies ts and caller as
// ordinary key-values, so zap's own are disabled.
func NewZapLogger(c *conf.Log) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	if c != nil && strings.EqualFold(c.Format, "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""

	if c != nil && c.Level != "" {
		level, err := zap.ParseAtomicLevel(c.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		cfg.Level = level
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLoggerFrom(l), nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{log: l}
}

func (l *ZapLogger) Log(level log.Level, keyvals ...any) error {
	if len(keyvals) == 0 || len(keyvals)%2 != 0 {
		l.log.Warn(fmt.Sprint("keyvals must appear in pairs: ", keyvals))
		return nil
	}

	var msg string
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	if ce := l.log.Check(zapLevel(level), msg); ce != nil {
		ce.Write(fields...)
	}
	return nil
}

func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}

// zapLevel maps kratos levels onto zap. Fatal is logged at error level since
// kratos' helper exits the process itself.
func zapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError, log.LevelFatal:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
