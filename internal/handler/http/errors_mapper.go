package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/service"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
)

// errorStatusMap is checked in order; more specific errors must come first.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},

	{validators.ErrInvalidInput, http.StatusBadRequest},
	{utils.ErrEmptyRequestBody, http.StatusBadRequest},

	{store.ErrEventNotFound, http.StatusNotFound},
	{store.ErrNoUserWasFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	status, _ := classifyError(err)
	return status
}

// classifyError returns the mapped status and the sentinel that matched, or
// nil for server errors.
func classifyError(err error) (int, error) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target
		}
	}
	return http.StatusInternalServerError, nil
}

// clientMessage strips the "context: " wrappers added on the way up so the
// client sees the sentinel text plus any detail attached to it.
func clientMessage(err, target error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil || !errors.Is(inner, target) || !strings.HasSuffix(err.Error(), ": "+inner.Error()) {
			return err.Error()
		}
		err = inner
	}
}

// writeError logs err and answers with its mapped status. Client errors carry
// the sentinel text; server errors carry only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := classifyError(err)

	var message string
	if target == nil {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		message = clientMessage(err, target)
	}

	writeErrorResponse(w, message, status)
}

func writeErrorResponse(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}, status)
}
