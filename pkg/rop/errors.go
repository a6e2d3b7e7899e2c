package rop

import "errors"

// ErrUnwrap is matched by every error returned from an unwrap or expect
// call on an absent Optional or a failed Outcome.
var ErrUnwrap = errors.New("unwrap failed")

// UnwrapError is returned (or panicked with, by the Must* variants) when a
// value is taken out of a container that does not hold one.
type UnwrapError struct {
	// Message is used when Cause is nil.
	Message string
	// Cause is the caller supplied error of an Expect call.
	Cause error
}

func NewUnwrapError(message string) *UnwrapError {
	return &UnwrapError{Message: message}
}

func WrapUnwrapError(cause error) *UnwrapError {
	return &UnwrapError{Cause: cause}
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func (e *UnwrapError) Unwrap() error {
	return e.Cause
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrap
}

// IsUnwrapError reports whether err came from a failed unwrap.
func IsUnwrapError(err error) bool {
	return errors.Is(err, ErrUnwrap)
}
