package util

import (
	"github.com/google/uuid"
)

func GenUUID() string {
	return uuid.New().String()
}

// Truncate cuts s at max characters. The external store rejects rich text
// longer than its field limit.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
