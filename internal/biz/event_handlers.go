package biz

import (
	"context"

	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/go-kratos/kratos/v2/log"
)

var _ eventbus.EventHandler = (*LoggingEventHandler)(nil)

// LoggingEventHandler writes one line per link event.
type LoggingEventHandler struct {
	log       *log.Helper
	eventName string
}

func NewLoggingEventHandler(logger log.Logger, eventName string) *LoggingEventHandler {
	return &LoggingEventHandler{
		log:       log.NewHelper(logger),
		eventName: eventName,
	}
}

func (h *LoggingEventHandler) HandlerName() string {
	return "logging_handler_" + h.eventName
}

func (h *LoggingEventHandler) EventName() string {
	return h.eventName
}

func (h *LoggingEventHandler) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	switch envelope.EventName {
	case event.LinkCreatedName:
		var evt event.LinkCreated
		if err := envelope.Decode(&evt); err != nil {
			return err
		}
		h.log.Infof("[Event] link created: %s -> %s (expires %s)",
			evt.Link.ShortCode, evt.Link.OriginalURL, evt.Link.ExpiresAt.Format("15:04:05"))
	case event.LinkClickedName:
		var evt event.LinkClicked
		if err := envelope.Decode(&evt); err != nil {
			return err
		}
		h.log.Infof("[Event] link clicked: %s (clicks: %d)", evt.Link.ShortCode, evt.Link.Clicks)
	case event.LinkDeletedName:
		var evt event.LinkDeleted
		if err := envelope.Decode(&evt); err != nil {
			return err
		}
		h.log.Infof("[Event] link deleted: %s", evt.ShortCode)
	case event.LinkPurgedName:
		var evt event.LinkPurged
		if err := envelope.Decode(&evt); err != nil {
			return err
		}
		h.log.Infof("[Event] purged %d expired links", evt.Count)
	default:
		h.log.Infof("[Event] %s: %s", envelope.EventName, envelope.AggregateID)
	}
	return nil
}

// RegisterEventHandlers attaches the logging handlers plus any extra
// consumers to the router. It must run before the router starts.
func RegisterEventHandlers(router *eventbus.Router, logger log.Logger, extra ...eventbus.EventHandler) {
	for _, name := range []string{
		event.LinkCreatedName,
		event.LinkClickedName,
		event.LinkDeletedName,
		event.LinkPurgedName,
	} {
		router.AddHandler(NewLoggingEventHandler(logger, name))
	}
	for _, h := range extra {
		router.AddHandler(h)
	}
}
