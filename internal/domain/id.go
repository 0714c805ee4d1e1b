package domain

import "github.com/google/uuid"

// NewID returns an opaque unique token used as a document id.
func NewID() string {
	return uuid.NewString()
}
