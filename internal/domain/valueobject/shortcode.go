package valueobject

import (
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the set of characters generated short codes are drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	DefaultShortCodeLength = 6
	MaxShortCodeLength     = 32
)

var shortCodeRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ShortCode is the public key of a link. It is immutable and only ever
// holds characters from Alphabet.
type ShortCode struct {
	value string
}

// NewShortCode parses a code received from a client or read back from storage.
func NewShortCode(code string) (ShortCode, error) {
	if err := validation.Validate(code,
		validation.Required,
		validation.Length(1, MaxShortCodeLength),
		validation.Match(shortCodeRegex),
	); err != nil {
		return ShortCode{}, ErrInvalidCode
	}
	return ShortCode{value: code}, nil
}

// GenerateShortCode draws a uniformly random code of the given length from
// Alphabet using a cryptographic source. A non-positive length falls back to
// DefaultShortCodeLength.
func GenerateShortCode(length int) (ShortCode, error) {
	if length <= 0 {
		length = DefaultShortCodeLength
	}
	if length > MaxShortCodeLength {
		return ShortCode{}, fmt.Errorf("%w: length %d exceeds %d", ErrInvalidCode, length, MaxShortCodeLength)
	}

	code, err := gonanoid.Generate(Alphabet, length)
	if err != nil {
		return ShortCode{}, err
	}
	return ShortCode{value: code}, nil
}

func (s ShortCode) String() string {
	return s.value
}

func (s ShortCode) IsEmpty() bool {
	return s.value == ""
}

func (s ShortCode) Equals(other ShortCode) bool {
	return s.value == other.value
}
