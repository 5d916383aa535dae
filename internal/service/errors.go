package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calendar/internal/validators"
)

var (
	// ErrInvalidCredentials is deliberately generic: it does not reveal
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Validation failures produced by the event service. All of them wrap
// validators.ErrInvalidInput.
var (
	ErrInvalidStartDate = fmt.Errorf("%w: startDate is not a valid timestamp", validators.ErrInvalidInput)
	ErrInvalidEndDate   = fmt.Errorf("%w: endDate is not a valid timestamp", validators.ErrInvalidInput)
	ErrInvalidDateRange = fmt.Errorf("%w: endDate must be after startDate", validators.ErrInvalidInput)
	ErrInvalidMonth     = fmt.Errorf("%w: month must be between 1 and 12", validators.ErrInvalidInput)
	ErrInvalidYear      = fmt.Errorf("%w: year must be between 1 and 9999", validators.ErrInvalidInput)
)
