package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-calendar/internal/service"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// ─────────────────────────────────────────────
// POST /api/auth/register
// ─────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	var got models.RegisterRequest
	authSvc := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
			got = req
			return models.AuthResponse{
				AccessToken: "jwt",
				User:        models.UserSummary{UserID: testUserID, Email: req.Email},
			}, nil
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","password":"secret1","firstName":"Bob","lastName":"Jones"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Bob", got.FirstName)
	assert.JSONEq(t,
		fmt.Sprintf(`{"access_token":"jwt","user":{"id":%q,"email":"bob@example.com","firstName":"","lastName":""}}`, testUserID),
		rec.Body.String())
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{name: "malformed JSON", body: `{"email":`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantMsg: "empty request body"},
		{
			name:       "validation failure",
			body:       `{"email":"nope"}`,
			serviceErr: fmt.Errorf("%w: email must be a valid email", validators.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid input: email must be a valid email",
		},
		{
			name:       "duplicate email",
			body:       `{"email":"bob@example.com"}`,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "storage failure hides details",
			body:       `{"email":"bob@example.com"}`,
			serviceErr: errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := &mockAuthService{
				registerFn: func(context.Context, models.RegisterRequest) (models.AuthResponse, error) {
					return models.AuthResponse{}, tt.serviceErr
				},
			}
			h := newTestHandler(authSvc, nil)

			rec := serve(t, h, http.MethodPost, "/api/auth/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeError(t, rec.Body.Bytes())
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp.Message)
			}
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/auth/login
// ─────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	user := models.User{UserID: testUserID, Email: testEmail, PasswordHash: "$2a$10$secret-hash"}
	authSvc := &mockAuthService{
		validateUserFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, testEmail, email)
			assert.Equal(t, "secret1", password)
			return user, nil
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret1"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testToken, resp.AccessToken)
	assert.Equal(t, testUserID, resp.User.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	authSvc := &mockAuthService{
		validateUserFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
		loginFn: func(context.Context, models.User) (models.AuthResponse, error) {
			t.Fatal("login must not be called for rejected credentials")
			return models.AuthResponse{}, nil
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"x@example.com","password":"bad"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeError(t, rec.Body.Bytes()).Message)
}

func TestLogin_TokenFailure(t *testing.T) {
	authSvc := &mockAuthService{
		loginFn: func(context.Context, models.User) (models.AuthResponse, error) {
			return models.AuthResponse{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret1"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/auth/profile
// ─────────────────────────────────────────────

func TestProfile_UsesTokenIdentity(t *testing.T) {
	authSvc := &mockAuthService{
		profileFn: func(_ context.Context, userID string) (models.UserSummary, error) {
			return models.UserSummary{UserID: userID, Email: testEmail}, nil
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodGet, "/api/auth/profile", "", testToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testUserID)
}

func TestProfile_RequiresToken(t *testing.T) {
	h := newTestHandler(nil, nil)

	rec := serve(t, h, http.MethodGet, "/api/auth/profile", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_DeletedUser(t *testing.T) {
	authSvc := &mockAuthService{
		profileFn: func(context.Context, string) (models.UserSummary, error) {
			return models.UserSummary{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(authSvc, nil)

	rec := serve(t, h, http.MethodGet, "/api/auth/profile", "", testToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
