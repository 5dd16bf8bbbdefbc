package utils

import "github.com/google/uuid"

// NewID generates a fresh record id.
func NewID() string {
	return uuid.NewString()
}
