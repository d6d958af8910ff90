package domain

import (
	"time"

	"go-shortlink/internal/domain/event"

	"github.com/google/uuid"
)

// Link maps a short code to its destination for a bounded lifetime.
//
// A link is live while the current time is strictly before expiresAt and
// expired from expiresAt onwards. Clicks only ever grow.
type Link struct {
	id          string
	shortCode   ShortCode
	originalURL OriginalURL
	clicks      int64
	createdAt   time.Time
	expiresAt   time.Time
}

// NewLink creates a link that expires ttl after now. All timestamps are UTC.
func NewLink(shortCode ShortCode, originalURL OriginalURL, now time.Time, ttl time.Duration) (*Link, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now = now.UTC()
	return &Link{
		id:          id.String(),
		shortCode:   shortCode,
		originalURL: originalURL,
		createdAt:   now,
		expiresAt:   now.Add(ttl),
	}, nil
}

// ReconstructLink rebuilds a link from persistence.
func ReconstructLink(
	id string,
	shortCode ShortCode,
	originalURL OriginalURL,
	clicks int64,
	createdAt time.Time,
	expiresAt time.Time,
) *Link {
	return &Link{
		id:          id,
		shortCode:   shortCode,
		originalURL: originalURL,
		clicks:      clicks,
		createdAt:   createdAt.UTC(),
		expiresAt:   expiresAt.UTC(),
	}
}

func (l *Link) ID() string               { return l.id }
func (l *Link) ShortCode() ShortCode     { return l.shortCode }
func (l *Link) OriginalURL() OriginalURL { return l.originalURL }
func (l *Link) Clicks() int64            { return l.clicks }
func (l *Link) CreatedAt() time.Time     { return l.createdAt }
func (l *Link) ExpiresAt() time.Time     { return l.expiresAt }

// IsExpiredAt reports whether the link no longer resolves at now.
func (l *Link) IsExpiredAt(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

// CheckRedirect returns ErrLinkExpired when the link cannot be followed at now.
func (l *Link) CheckRedirect(now time.Time) error {
	if l.IsExpiredAt(now) {
		return ErrLinkExpired
	}
	return nil
}

// TTLAt returns how long the link stays live after now, or zero if it is expired.
func (l *Link) TTLAt(now time.Time) time.Duration {
	if l.IsExpiredAt(now) {
		return 0
	}
	return l.expiresAt.Sub(now)
}

// Snapshot copies the link into its event representation.
func (l *Link) Snapshot() event.LinkSnapshot {
	return event.LinkSnapshot{
		ID:          l.id,
		ShortCode:   l.shortCode.String(),
		OriginalURL: l.originalURL.String(),
		Clicks:      l.clicks,
		CreatedAt:   l.createdAt,
		ExpiresAt:   l.expiresAt,
	}
}
