// Package apperr holds error kinds shared by every feature.
package apperr

import (
	"errors"
	"fmt"
)

// ErrValidation marks malformed or missing caller input. It is always
// returned before any storage call is made.
var ErrValidation = errors.New("validation failed")

// Validation wraps ErrValidation with a formatted reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
