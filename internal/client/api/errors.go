package api

import (
	"errors"
	"fmt"
)

// Kind classifies a request failure.
type Kind string

const (
	// KindNetwork covers transport failures: timeout, DNS, refused
	// connections. No server payload is available.
	KindNetwork Kind = "network"

	// KindServer covers non-2xx responses; Status and, when the server sent
	// one, Message are populated.
	KindServer Kind = "server"

	// KindValidation covers client-side rejections made before any request
	// is issued.
	KindValidation Kind = "validation"
)

// Error is the normalized failure produced at the API boundary. Every
// request error is wrapped exactly once, so callers never inspect response
// payloads themselves.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for network errors
	Message string // server-provided message, may be empty
	Err     error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Status != 0:
		return fmt.Sprintf("server returned status %d", e.Status)
	default:
		return string(e.Kind) + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ResolveMessage turns any request error into a user-facing string using the
// precedence: server-provided message, then the error's own text, then the
// supplied localized fallback.
func ResolveMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" && !isBare(err) {
		return err.Error()
	}
	return fallback
}

// isBare reports whether the error carries no text worth showing: a network
// failure with no server payload reads better as the localized fallback.
func isBare(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}
