package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport means the backend never answered
	ErrTransport = errors.New("backend unreachable")
	// ErrUnauthorized means the bearer token is missing, invalid or expired
	ErrUnauthorized = errors.New("backend rejected credentials")
	ErrNotFound     = errors.New("record not found")
)

// ValidationError carries the backend's explanation of a rejected input,
// e.g. a duplicate user or a bulk import where every user already exists.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("validation failed (%d)", e.Status)
	}
	return e.Message
}

// StatusError is any other non-2xx answer
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

func errorFromStatus(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return &ValidationError{Status: status, Message: message}
	default:
		return &StatusError{Status: status, Message: message}
	}
}

// IsValidation reports whether err is a backend validation failure
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
