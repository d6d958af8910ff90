package eventbus

import (
	"errors"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	levels  []log.Level
	entries []map[string]any
}

func (r *recordingLogger) Log(level log.Level, keyvals ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := make(map[string]any, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		entry[keyvals[i].(string)] = keyvals[i+1]
	}
	r.levels = append(r.levels, level)
	r.entries = append(r.entries, entry)
	return nil
}

func TestKratosLoggerAdapter(t *testing.T) {
	rec := &recordingLogger{}
	adapter := NewKratosLoggerAdapter(rec).With(watermill.LogFields{"topic": LinkEventsTopic})

	adapter.Info("subscribed", watermill.LogFields{"handler": "click_feed"})
	adapter.Error("handler failed", errors.New("boom"), nil)
	adapter.Trace("tick", nil)

	require.Len(t, rec.entries, 3)
	assert.Equal(t, []log.Level{log.LevelInfo, log.LevelError, log.LevelDebug}, rec.levels)

	assert.Equal(t, "subscribed", rec.entries[0][log.DefaultMessageKey])
	assert.Equal(t, "click_feed", rec.entries[0]["handler"])
	assert.Equal(t, LinkEventsTopic, rec.entries[0]["topic"])
	assert.Equal(t, "eventbus", rec.entries[0]["module"])

	assert.EqualError(t, rec.entries[1]["error"].(error), "boom")
}
