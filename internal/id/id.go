package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh opaque record id.
func New() string {
	return uuid.NewString()
}

// Ensure returns the given id, or a fresh one when blank. Snapshot
// loaders use this to stand in for the store's id assignment.
func Ensure(existing string) string {
	if strings.TrimSpace(existing) == "" {
		return New()
	}
	return existing
}
