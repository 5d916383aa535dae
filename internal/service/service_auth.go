package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; sessions are HS256 JWTs whose
// subject is the user ID.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	idGenerator    utils.IDGenerator
	now            func() time.Time

	// tokenSignKey is loaded once at startup and never changes afterwards.
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository and
// configured with the token and hashing parameters of cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		idGenerator:    utils.NewUUIDGenerator(),
		now:            time.Now,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// ValidateUser looks the account up by email and compares the password with
// the stored hash. Every failure that depends on the credentials themselves
// is reported as ErrInvalidCredentials.
func (a *authService) ValidateUser(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Debug().Str("user_id", user.UserID).Msg("login attempt for inactive user")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Login issues a session token carrying the user's email and ID.
func (a *authService) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("token creation failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{
		AccessToken: token.String(),
		User:        user.Summary(),
	}, nil
}

// Register validates the request, stores the new account and logs it in.
//
// Returns:
//   - an error wrapping validators.ErrInvalidInput for malformed requests;
//   - an error wrapping store.ErrEmailAlreadyExists for a taken email.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)
	request.FirstName = strings.TrimSpace(request.FirstName)
	request.LastName = strings.TrimSpace(request.LastName)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid registration data")
		return models.AuthResponse{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		UserID:       a.idGenerator.Generate(),
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user registered")

	return a.Login(ctx, created)
}

// ParseToken verifies the signature, issuer and expiry of tokenString.
// Any failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Profile(ctx context.Context, userID string) (models.UserSummary, error) {
	if userID == "" {
		return models.UserSummary{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("profile lookup failed")
		return models.UserSummary{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Summary(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
