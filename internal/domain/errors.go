package domain

import (
	"errors"

	"go-shortlink/internal/domain/valueobject"
)

var (
	ErrLinkNotFound      = errors.New("link not found")
	ErrLinkExpired       = errors.New("link has expired")
	ErrShortCodeConflict = errors.New("short code is held by a live link")
	ErrExhaustedRetries  = errors.New("could not allocate a unique short code")
	ErrStoreUnavailable  = errors.New("link store unavailable")
	ErrInvalidTTL        = errors.New("link ttl must be positive")

	// Re-export value object errors for convenience.
	ErrInvalidURL  = valueobject.ErrInvalidURL
	ErrInvalidCode = valueobject.ErrInvalidCode
)
