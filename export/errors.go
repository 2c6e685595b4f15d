package export

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an export run stopped.
type FailureKind string

const (
	FailureConfiguration     FailureKind = "configuration"
	FailureLoginTimeout      FailureKind = "login_timeout"
	FailureNavigationTimeout FailureKind = "navigation_timeout"
	FailureIncompleteLoad    FailureKind = "incomplete_load"
	FailureUnexpected        FailureKind = "unexpected"
)

// ErrIncompleteLoad is returned when the connections list never stabilized
// within the configured scroll round cap.
var ErrIncompleteLoad = errors.New("connections list did not stabilize")

// ErrWaitTimeout marks a bounded wait that ran out of time. Drivers wrap it
// so the exporter can tell a timeout apart from a crashed browser.
var ErrWaitTimeout = errors.New("timed out waiting")

// Error ties a failure kind to its underlying cause.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with a failure kind.
func NewError(kind FailureKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the failure kind of err, or FailureUnexpected for anything
// not produced by the exporter.
func KindOf(err error) FailureKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return FailureUnexpected
}
