package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", response.User.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.ValidateUser(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	summary, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

// decodeBody decodes the JSON body into dst. Malformed bodies become
// validation errors.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyRequestBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
