package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-shortlink/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// LinkEventsTopic carries every link event.
const LinkEventsTopic = "link.events"

// Message metadata keys. The payload is the event itself.
const (
	metadataEventName  = "event_name"
	metadataLinkID     = "link_id"
	metadataOccurredAt = "occurred_at"
)

const subscriberBuffer = 256

var ErrMalformedMessage = errors.New("malformed link event message")

// EventBus publishes link events on an in-process watermill channel.
// Delivery is at-most-once: events published while nobody subscribes are lost.
type EventBus struct {
	pubsub *gochannel.GoChannel
}

func NewEventBus(logger watermill.LoggerAdapter) *EventBus {
	return &EventBus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: subscriberBuffer,
		}, logger),
	}
}

func (b *EventBus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Publish hands e to the subscribers without waiting for them to handle it.
func (b *EventBus) Publish(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := NewMessage(e)
	if err != nil {
		return err
	}
	if err := b.pubsub.Publish(LinkEventsTopic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.EventName(), err)
	}
	return nil
}

func (b *EventBus) Close() error {
	return b.pubsub.Close()
}

// EventEnvelope is a received event: the routing headers plus the raw event
// body, decoded on demand by the handler that wants it.
type EventEnvelope struct {
	EventID     string
	EventName   string
	AggregateID string
	OccurredAt  time.Time
	Payload     json.RawMessage
}

// Decode unmarshals the payload into v.
func (e *EventEnvelope) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

// NewMessage encodes e with its name, link and time in the metadata so
// consumers can filter without touching the body.
func NewMessage(e event.Event) (*message.Message, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.EventName(), err)
	}

	msg := message.NewMessage(e.EventID(), payload)
	msg.Metadata.Set(metadataEventName, e.EventName())
	msg.Metadata.Set(metadataLinkID, e.AggregateID())
	msg.Metadata.Set(metadataOccurredAt, e.OccurredAt().UTC().Format(time.RFC3339Nano))
	return msg, nil
}

// ParseEnvelope is the inverse of NewMessage.
func ParseEnvelope(msg *message.Message) (*EventEnvelope, error) {
	name := msg.Metadata.Get(metadataEventName)
	if name == "" {
		return nil, fmt.Errorf("%w: no event name", ErrMalformedMessage)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, msg.Metadata.Get(metadataOccurredAt))
	if err != nil {
		return nil, fmt.Errorf("%w: occurred_at: %w", ErrMalformedMessage, err)
	}
	if !json.Valid(msg.Payload) {
		return nil, fmt.Errorf("%w: payload is not JSON", ErrMalformedMessage)
	}

	return &EventEnvelope{
		EventID:     msg.UUID,
		EventName:   name,
		AggregateID: msg.Metadata.Get(metadataLinkID),
		OccurredAt:  occurredAt,
		Payload:     json.RawMessage(msg.Payload),
	}, nil
}

func eventName(msg *message.Message) string {
	return msg.Metadata.Get(metadataEventName)
}
