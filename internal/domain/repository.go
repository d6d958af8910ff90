package domain

//go:generate mockery --name=LinkRepository --output=../mocks --outpkg=mocks --with-expecter

import (
	"context"
	"time"
)

// LinkRepository is the durable link store. Implementations must be safe for
// concurrent use and wrap driver failures in ErrStoreUnavailable.
type LinkRepository interface {
	// Insert stores a new link. It fails with ErrShortCodeConflict when a live
	// link holds the same code. An expired holder is replaced.
	Insert(ctx context.Context, link *Link) error

	// FindByShortCode returns the link holding code, expired or not.
	// Returns nil if not found.
	FindByShortCode(ctx context.Context, code ShortCode) (*Link, error)

	// IncrementClicks atomically adds one click and returns the updated link.
	// Returns ErrLinkNotFound if the link is gone.
	IncrementClicks(ctx context.Context, id string) (*Link, error)

	// DeleteByShortCode removes the link holding code and returns it.
	// Returns nil if nothing was deleted.
	DeleteByShortCode(ctx context.Context, code ShortCode) (*Link, error)

	// ListLive returns links with expiresAt after now, newest first.
	ListLive(ctx context.Context, now time.Time) ([]*Link, error)

	// PurgeExpired deletes links with expiresAt at or before now and returns how many.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
