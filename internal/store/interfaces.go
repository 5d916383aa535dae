//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Package store implements persistence for users and calendar events on top
// of database/sql. PostgreSQL is the production backend, SQLite serves local
// development and tests; both share the same repositories and differ only in
// placeholder format and driver error classification.
package store

import (
	"context"

	"github.com/MKhiriev/go-calendar/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts a user. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrNoUserWasFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when no user has the id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// EventRepository persists events. Every single-event operation is filtered
// by both the event id and the owner id, so foreign events surface as
// [ErrEventNotFound].
type EventRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)

	// FindEvents lists the owner's events ordered by start date ascending.
	FindEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)

	FindEventByID(ctx context.Context, eventID, userID string) (models.Event, error)

	// UpdateEvent overwrites all mutable columns of the event.
	UpdateEvent(ctx context.Context, event models.Event) (models.Event, error)

	DeleteEvent(ctx context.Context, eventID, userID string) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
