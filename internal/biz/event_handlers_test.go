package biz

import (
	"context"
	"testing"
	"time"

	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeFor(t *testing.T, e event.Event) *eventbus.EventEnvelope {
	t.Helper()
	msg, err := eventbus.NewMessage(e)
	require.NoError(t, err)
	envelope, err := eventbus.ParseEnvelope(msg)
	require.NoError(t, err)
	return envelope
}

func TestLoggingEventHandler(t *testing.T) {
	now := time.Now().UTC()
	snap := event.LinkSnapshot{ID: "id-1", ShortCode: "aB3xY9", OriginalURL: "https://example.com", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}

	tests := []struct {
		name string
		evt  event.Event
	}{
		{name: "created", evt: event.NewLinkCreated(snap)},
		{name: "clicked", evt: event.NewLinkClicked(snap)},
		{name: "deleted", evt: event.NewLinkDeleted("id-1", "aB3xY9")},
		{name: "purged", evt: event.NewLinkPurged(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLoggingEventHandler(log.DefaultLogger, tt.evt.EventName())
			assert.Equal(t, "logging_handler_"+tt.evt.EventName(), h.HandlerName())
			assert.NoError(t, h.Handle(context.Background(), envelopeFor(t, tt.evt)))
		})
	}
}

func TestLoggingEventHandler_BadPayload(t *testing.T) {
	h := NewLoggingEventHandler(log.DefaultLogger, event.LinkClickedName)

	err := h.Handle(context.Background(), &eventbus.EventEnvelope{
		EventName: event.LinkClickedName,
		Payload:   []byte(`{"link": 5}`),
	})
	assert.Error(t, err)
}
