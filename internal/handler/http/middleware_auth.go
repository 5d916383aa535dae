package http

import (
	"net/http"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token from the "Authorization" header is verified by
// [service.AuthService.ParseToken]. On success the user ID and email are put
// into the request context (see [utils.WithIdentity]) and the request logger
// gains a "user_id" field. Any failure is answered with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, token.UserID, token.Email)

		log := logger.FromContext(ctx).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
