package common

import "errors"

var (
	// ErrorNotFound is returned by lookups that found nothing.
	ErrorNotFound = errors.New("not found")

	// ErrorUnauthorized marks a missing or rejected credential.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken is returned when a credential cannot be parsed.
	ErrInvalidToken = errors.New("invalid token")
)
