package computer

import (
	"errors"

	"github.com/mj1618/macos-computer/pkg/apperr"
)

// Validation failures. They are raised before any native event is issued and
// are reachable with errors.Is through the apperr wrapper.
var (
	ErrOutOfBounds      = errors.New("coordinates outside the logical canvas")
	ErrUnknownButton    = errors.New("unknown mouse button")
	ErrInvalidPath      = errors.New("drag path must contain at least 2 points")
	ErrInvalidDirection = errors.New("invalid scroll direction")
	ErrInvalidAmount    = errors.New("scroll amount must not be negative")
	ErrInvalidKey       = errors.New("empty key name")
)

// ErrFailSafe is returned when the pointer sits in a screen corner while the
// fail-safe is enabled. No event is issued.
var ErrFailSafe = errors.New("fail-safe triggered: pointer is in a screen corner")

// IsValidation reports whether err is a caller mistake rather than a
// failure of the desktop.
func IsValidation(err error) bool {
	return apperr.CodeOf(err) == apperr.CodeInvalidArgument
}
