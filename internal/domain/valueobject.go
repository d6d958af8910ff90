package domain

import (
	"go-shortlink/internal/domain/valueobject"
)

// Re-export value object types for convenience.
type (
	ShortCode   = valueobject.ShortCode
	OriginalURL = valueobject.OriginalURL
)

var (
	NewShortCode      = valueobject.NewShortCode
	GenerateShortCode = valueobject.GenerateShortCode
	NewOriginalURL    = valueobject.NewOriginalURL
	HTTPURL           = valueobject.HTTPURL
)

const (
	DefaultShortCodeLength = valueobject.DefaultShortCodeLength
	MaxShortCodeLength     = valueobject.MaxShortCodeLength
	MaxOriginalURLLength   = valueobject.MaxOriginalURLLength
)
