package event

import (
	"time"

	"github.com/google/uuid"
)

// Event names published on the link topic.
const (
	LinkCreatedName = "link.created"
	LinkClickedName = "link.clicked"
	LinkDeletedName = "link.deleted"
	LinkPurgedName  = "link.purged"
)

// Event is the base interface for all domain events.
type Event interface {
	EventID() string
	EventName() string
	OccurredAt() time.Time
	// AggregateID identifies the link the event is about.
	AggregateID() string
}

// Base contains common fields for all events.
type Base struct {
	ID          string    `json:"event_id"`
	OccurredAtT time.Time `json:"occurred_at"`
	LinkID      string    `json:"link_id"`
}

// NewBase stamps a new event with a time-ordered id.
func NewBase(linkID string) Base {
	return Base{
		ID:          uuid.Must(uuid.NewV7()).String(),
		OccurredAtT: time.Now().UTC(),
		LinkID:      linkID,
	}
}

func (e Base) EventID() string {
	return e.ID
}

func (e Base) OccurredAt() time.Time {
	return e.OccurredAtT
}

func (e Base) AggregateID() string {
	return e.LinkID
}

// LinkSnapshot is the full record of a link at the moment an event was raised.
type LinkSnapshot struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
