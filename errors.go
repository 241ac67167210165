package libemit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError describes which argument of a subscribe or publish call was
// rejected and why. It unwraps to ErrInvalidArgument.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e ArgumentError) Unwrap() error { return ErrInvalidArgument }

func newArgumentError(arg, reason string) *ArgumentError {
	return &ArgumentError{
		Arg:    arg,
		Reason: reason,
	}
}
