package color

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every InvalidFormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid color format")

// InvalidFormatError reports a color string that could not be parsed.
type InvalidFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Reason)
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func invalidFormat(input, reason string) error {
	return &InvalidFormatError{Input: input, Reason: reason}
}
