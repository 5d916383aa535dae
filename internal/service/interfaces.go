package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-calendar/models"
)

// AuthService covers registration, credential checks and session tokens.
type AuthService interface {
	// ValidateUser returns the user owning the credentials. Unknown email,
	// wrong password and inactive accounts all yield ErrInvalidCredentials.
	ValidateUser(ctx context.Context, email, password string) (models.User, error)

	// Login issues a session token for an already validated user.
	Login(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Register creates the account and logs it in.
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)

	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Profile returns the public summary of the user.
	Profile(ctx context.Context, userID string) (models.UserSummary, error)
}

// EventService manages calendar events. Every method is scoped to userID:
// events of other users behave exactly like missing ones.
type EventService interface {
	Create(ctx context.Context, request models.CreateEventRequest, userID string) (models.Event, error)

	FindAll(ctx context.Context, userID string) ([]models.Event, error)

	// FindUpcoming returns at most limit events starting now or later.
	// A non-positive limit means DefaultUpcomingLimit.
	FindUpcoming(ctx context.Context, userID string, limit int) ([]models.Event, error)

	// FindByDateRange returns events starting within [start, end].
	FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error)

	// FindByMonth returns events starting within the calendar month; month is 1-indexed.
	FindByMonth(ctx context.Context, userID string, year, month int) ([]models.Event, error)

	FindOne(ctx context.Context, eventID, userID string) (models.Event, error)

	// Update merges the patch onto the stored event and validates the result.
	Update(ctx context.Context, eventID string, request models.UpdateEventRequest, userID string) (models.Event, error)

	Remove(ctx context.Context, eventID, userID string) error
}

// AppInfoService exposes version and build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// EventServiceWrapper defines middleware composition for EventService.
// Implementations wrap an existing EventService to add behavior such as
// validating.
type EventServiceWrapper interface {
	Wrap(EventService) EventService
}
