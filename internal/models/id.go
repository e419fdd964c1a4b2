package models

import "github.com/google/uuid"

// NewID returns a fresh UUID string for use as a primary key.
func NewID() string {
	return uuid.NewString()
}
