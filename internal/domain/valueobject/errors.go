package valueobject

import "errors"

var (
	ErrInvalidURL  = errors.New("url_original must be an absolute http(s) URL")
	ErrInvalidCode = errors.New("short code must be alphanumeric")
)
