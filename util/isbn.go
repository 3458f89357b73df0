package util

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrInvalidISBN is returned for input that is not 10 or 13 digits after
// stripping the usual formatting characters.
var ErrInvalidISBN = errors.New("invalid ISBN format")

// NormalizeISBN strips hyphens and whitespace from raw and validates the
// digit-count contract. The returned string is purely numeric, of length 10
// or 13.
func NormalizeISBN(raw string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	isbn := sb.String()

	if len(isbn) != 10 && len(isbn) != 13 {
		return "", ErrInvalidISBN
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return "", ErrInvalidISBN
		}
	}
	return isbn, nil
}
