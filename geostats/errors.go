// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the cause of every error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

// Error represents an error that occurs while projecting or distributing a statistic
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func invalidArgument(format string, args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Cause:   ErrInvalidArgument,
	}
}
