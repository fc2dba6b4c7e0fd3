package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/app"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrEmptyQuery      = errors.New("empty search query")
	ErrSuspiciousQuery = errors.New("search query contains disallowed input")

	// ErrStaleResponse is returned by SearchSession.Fetch when a newer fetch
	// was issued before this one completed. The result was not applied.
	ErrStaleResponse = errors.New("stale response dropped")

	ErrNoToken         = errors.New("not signed in")
	ErrNothingChanged  = errors.New("nothing changed")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrNoPartID        = errors.New("part has no id")
)

// ValidationError is a failure detected locally, before any network call.
// It matches ErrValidation and, when set, Kind with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() []error {
	if e.Kind == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Kind}
}

func newValidationError(field, message string, kind error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: kind}
}

// UserMessage turns any error returned by this package into a short notice
// fit for display. Transport details are never exposed.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}

	if errors.Is(err, adapter.ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		return app.MsgNetworkError
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, ErrNoToken):
		return app.MsgSignInFirst
	case errors.Is(err, ErrNothingChanged):
		return app.MsgNoChanges
	}

	return app.MsgGenericError
}
