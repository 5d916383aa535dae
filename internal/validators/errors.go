package validators

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every validation failure. Callers match it
// with errors.Is to tell bad input apart from infrastructure errors.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrInvalidInput)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrInvalidInput)

	ErrEmptyTitle           = fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	ErrEmptyStartDate       = fmt.Errorf("%w: start date is required", ErrInvalidInput)
	ErrEndDateNotAfterStart = fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	ErrInvalidColor         = fmt.Errorf("%w: color must be a hex color", ErrInvalidInput)
	ErrInvalidReminder      = fmt.Errorf("%w: unknown reminder type", ErrInvalidInput)
	ErrInvalidUserID        = fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
)
