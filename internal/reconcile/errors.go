package reconcile

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindInvalidAction    Kind = "invalid_action"
	KindInvalidInput     Kind = "invalid_input"
	KindRecordNotFound   Kind = "record_not_found"
	KindStoreUnavailable Kind = "store_unavailable"
)

// Sentinels for errors.Is.
var (
	ErrUnauthorized     = &Error{Kind: KindUnauthorized}
	ErrForbidden        = &Error{Kind: KindForbidden}
	ErrInvalidAction    = &Error{Kind: KindInvalidAction}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrRecordNotFound   = &Error{Kind: KindRecordNotFound}
	ErrStoreUnavailable = &Error{Kind: KindStoreUnavailable}
)

// Error is the only error type Engine returns. Message is safe to show to
// the caller; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind so callers can compare against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidAction, KindInvalidInput:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindRecordNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func invalidInput(field, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

func storeUnavailable(err error) *Error {
	return &Error{Kind: KindStoreUnavailable, Message: "Internal server error", Err: err}
}

// AsError converts any error into an *Error, treating unknown errors as a
// store failure.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return storeUnavailable(err)
}
