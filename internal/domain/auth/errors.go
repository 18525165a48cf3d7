package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrUnlinkedEmployee is returned when the authenticated user has no
	// employee association; attendance operations are rejected before any core
	// call proceeds.
	ErrUnlinkedEmployee = errors.New("user has no linked employee")
)
