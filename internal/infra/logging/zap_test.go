package logging

import (
	"testing"

	"go-shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := log.NewHelper(NewZapLoggerFrom(zap.New(core)))

	logger.Infow(log.DefaultMessageKey, "link created", "short_code", "aB3xY9")
	logger.Warnf("publish failed: %s", "timeout")
	logger.Errorw("op", "purge")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "link created", entries[0].Message)
	assert.Equal(t, "aB3xY9", entries[0].ContextMap()["short_code"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "publish failed: timeout", entries[1].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "purge", entries[2].ContextMap()["op"])
}

func TestZapLogger_OddKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFrom(zap.New(core))

	require.NoError(t, l.Log(log.LevelInfo, "dangling"))
	require.Len(t, logs.All(), 1)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(&conf.Log{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewZapLogger(&conf.Log{Level: "loud"})
	assert.Error(t, err)

	l, err = NewZapLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, l)
}
