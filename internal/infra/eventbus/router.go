package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// EventHandler consumes one kind of link event.
type EventHandler interface {
	HandlerName() string
	// EventName selects the events delivered to Handle.
	EventName() string
	Handle(ctx context.Context, envelope *EventEnvelope) error
}

const routerCloseTimeout = 5 * time.Second

// Router gives every registered handler its own subscription to the link
// topic, so each handler sees each event once and in publish order.
type Router struct {
	router *message.Router
	bus    *EventBus
	logger watermill.LoggerAdapter
}

func NewRouter(bus *EventBus, logger watermill.LoggerAdapter) (*Router, error) {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: routerCloseTimeout}, logger)
	if err != nil {
		return nil, err
	}
	return &Router{router: router, bus: bus, logger: logger}, nil
}

// AddHandler must be called before Run. Handler names must be unique.
func (r *Router) AddHandler(handler EventHandler) {
	r.router.AddNoPublisherHandler(
		handler.HandlerName(),
		LinkEventsTopic,
		r.bus.Subscriber(),
		r.dispatch(handler),
	)
}

// dispatch acks every message. gochannel redelivers a nacked message at once,
// so a failing or panicking consumer would spin on it forever.
func (r *Router) dispatch(handler EventHandler) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		if eventName(msg) != handler.EventName() {
			return nil
		}
		r.handle(handler, msg)
		return nil
	}
}

func (r *Router) handle(handler EventHandler, msg *message.Message) {
	fields := watermill.LogFields{
		"handler":    handler.HandlerName(),
		"event_name": eventName(msg),
		"event_id":   msg.UUID,
	}
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("event handler panicked", fmt.Errorf("%v", p), fields)
		}
	}()

	envelope, err := ParseEnvelope(msg)
	if err != nil {
		r.logger.Error("dropping unreadable event", err, fields)
		return
	}
	if err := handler.Handle(msg.Context(), envelope); err != nil {
		r.logger.Error("event handler failed", err, fields)
	}
}

// Run blocks until ctx is cancelled or Close is called.
func (r *Router) Run(ctx context.Context) error {
	return r.router.Run(ctx)
}

// Running is closed once all handlers are subscribed.
func (r *Router) Running() chan struct{} {
	return r.router.Running()
}

func (r *Router) Close() error {
	return r.router.Close()
}
