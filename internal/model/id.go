package model

import "github.com/google/uuid"

// NewID generates an opaque unique entity id.
func NewID() string {
	return uuid.NewString()
}
