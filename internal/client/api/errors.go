package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

var (
	ErrUnauthorized = common.ErrorUnauthorized
	ErrUnavailable  = errors.New("server unavailable")
	ErrNotFound     = common.ErrorNotFound
	ErrValidation   = errors.New("rejected by server")
)

// Error is the normalized failure shape of every call. StatusCode is 0 when
// no HTTP response was received.
type Error struct {
	Message    string
	StatusCode int

	transport bool
}

func (e *Error) Error() string {
	return e.Message
}

// Is maps the status code onto the package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrUnavailable:
		return e.transport ||
			e.StatusCode == http.StatusBadGateway ||
			e.StatusCode == http.StatusServiceUnavailable ||
			e.StatusCode == http.StatusGatewayTimeout
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest ||
			e.StatusCode == http.StatusConflict ||
			e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}

// Message extracts the human-readable text of err, falling back to fallback
// when err carries none.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
