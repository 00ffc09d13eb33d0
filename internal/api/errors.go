package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the wrapper produces.
// Every non-2xx response and every transport failure maps to exactly
// one of these; callers never see raw wire shapes.
type Kind string

const (
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
)

// Error is the normalized API failure. FieldErrors holds ordered
// per-field messages and is only populated for validation failures.
type Error struct {
	Kind        Kind
	Status      int // HTTP status; 0 when no response was received
	Message     string
	FieldErrors map[string][]string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

// AsError extracts the typed API error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an authorization failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindUnauthorized
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindValidation
}

// IsNetwork reports whether err is a transport failure (no response).
func IsNetwork(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNetwork
}

// errorBody is the server's error envelope: {message, errors?}.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindBadRequest
	}
}

// decodeError maps a non-2xx response to the typed error. A body that
// does not parse as the error envelope falls back to the status text.
func decodeError(status int, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	msg := eb.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	apiErr := &Error{
		Kind:    kindForStatus(status),
		Status:  status,
		Message: msg,
	}
	if apiErr.Kind == KindValidation {
		apiErr.FieldErrors = eb.Errors
	}
	return apiErr
}

// netError wraps a transport-level failure where no response arrived.
func netError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error()}
}
