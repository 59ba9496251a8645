package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput wraps business-rule violations the request schema cannot express.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
