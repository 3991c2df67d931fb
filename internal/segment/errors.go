package segment

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks every failure to construct a segmenter.
var ErrUnavailable = errors.New("segmenter unavailable")

// ErrUnknownSegmenter is the cause when no segmenter is registered under a name.
var ErrUnknownSegmenter = errors.New("unknown segmenter")

// UnavailableError reports that a named segmenter could not be initialized.
type UnavailableError struct {
	Name  string
	Cause error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("segmenter %q unavailable: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("segmenter %q unavailable", e.Name)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrUnavailable) match any UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
