// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calendar/internal/validators"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding failures. All of them are validation errors.
var (
	ErrInvalidJSON       = fmt.Errorf("%w: invalid JSON was passed", validators.ErrInvalidInput)
	ErrInvalidLimit      = fmt.Errorf("%w: limit must be a positive integer", validators.ErrInvalidInput)
	ErrInvalidYearParam  = fmt.Errorf("%w: year must be an integer", validators.ErrInvalidInput)
	ErrInvalidMonthParam = fmt.Errorf("%w: month must be an integer", validators.ErrInvalidInput)
	ErrMissingDateRange  = fmt.Errorf("%w: startDate and endDate are required", validators.ErrInvalidInput)
	ErrInvalidDateParam  = fmt.Errorf("%w: startDate and endDate must be valid timestamps", validators.ErrInvalidInput)
)
