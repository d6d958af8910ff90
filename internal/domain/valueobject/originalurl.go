package valueobject

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxOriginalURLLength bounds the stored destination.
const MaxOriginalURLLength = 2048

// OriginalURL is the destination a short code redirects to. The core stores it
// as given; callers taking user input check it with HTTPURL first.
type OriginalURL struct {
	value string
}

// NewOriginalURL rejects only what cannot be stored: an empty destination or
// one longer than MaxOriginalURLLength.
func NewOriginalURL(rawURL string) (OriginalURL, error) {
	if err := validation.Validate(rawURL,
		validation.Required,
		validation.Length(1, MaxOriginalURLLength),
	); err != nil {
		return OriginalURL{}, ErrInvalidURL
	}
	return OriginalURL{value: rawURL}, nil
}

// HTTPURL accepts absolute http and https URLs with a host. Empty values pass
// so it composes with validation.Required.
var HTTPURL = validation.By(func(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	parsed, err := url.ParseRequestURI(raw)
	if err != nil || parsed.Host == "" {
		return ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ErrInvalidURL
	}
	return nil
})

func (o OriginalURL) String() string {
	return o.value
}

// Host returns the host portion of the URL, or "" when it does not parse.
func (o OriginalURL) Host() string {
	parsed, err := url.Parse(o.value)
	if err != nil {
		return ""
	}
	return parsed.Host
}

func (o OriginalURL) IsEmpty() bool {
	return o.value == ""
}
