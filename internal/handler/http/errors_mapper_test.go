package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-calendar/internal/service"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validators.ErrInvalidInput, http.StatusBadRequest},
		{validators.ErrEndDateNotAfterStart, http.StatusBadRequest},
		{service.ErrInvalidDateRange, http.StatusBadRequest},
		{service.ErrInvalidMonth, http.StatusBadRequest},
		{ErrInvalidLimit, http.StatusBadRequest},
		{utils.ErrEmptyRequestBody, http.StatusBadRequest},
		{fmt.Errorf("event lookup failed: %w", store.ErrEventNotFound), http.StatusNotFound},
		{store.ErrNoUserWasFound, http.StatusNotFound},
		{fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_ServerErrorsHideDetails(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(rec, req, fmt.Errorf("%w: dial tcp 10.0.0.1:5432", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, "Internal Server Error", resp.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.1")
}

func TestWriteError_ClientErrorsCarryMessage(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	writeError(rec, req, store.ErrEventNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeError(t, rec.Body.Bytes())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, store.ErrEventNotFound.Error(), resp.Message)
	assert.Equal(t, "Not Found", resp.Error)
}

func TestWriteError_ClientMessageDropsContextWrappers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("event lookup failed: %w", store.ErrEventNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "event was not found",
		},
		{
			name:       "conflict",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    store.ErrEmailAlreadyExists.Error(),
		},
		{
			name:       "validation detail kept",
			err:        fmt.Errorf("error during event validation before update: %w", validators.ErrEndDateNotAfterStart),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid input: end date must be after start date",
		},
		{
			name:       "trailing detail kept",
			err:        fmt.Errorf("%w (index %d)", validators.ErrInvalidReminder, 2),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid input: unknown reminder type (index 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
			rec := httptest.NewRecorder()

			writeError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec.Body.Bytes()).Message)
		})
	}
}
