package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewRandomID returns a new unique id string.
func NewRandomID() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// IsValidID returns true if the given string is an id we might have minted.
func IsValidID(id string) bool {
	if len(id) != 32 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
