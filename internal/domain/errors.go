package domain

import "errors"

// Sentinel errors shared across repositories, stores, and services.
var (
	// ErrNotFound is returned when a requested record or asset key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request is structurally valid but semantically unusable.
	ErrInvalidInput = errors.New("invalid input")
)
