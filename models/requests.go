package models

import "time"

// RegisterRequest carries the data needed to create a new account.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEventRequest is the input of event creation. Timestamps arrive as
// strings and are parsed by the event service.
type CreateEventRequest struct {
	Title       string         `json:"title" validate:"required,notblank"`
	Description *string        `json:"description,omitempty"`
	StartDate   string         `json:"startDate" validate:"required"`
	EndDate     *string        `json:"endDate,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Reminders   []ReminderType `json:"reminders,omitempty" validate:"omitempty,dive,reminder"`
	IsAllDay    *bool          `json:"isAllDay,omitempty"`
	Color       *string        `json:"color,omitempty" validate:"omitnil,hexcolor"`
}

// UpdateEventRequest is a partial update of an event.
// Only non-nil fields are applied.
type UpdateEventRequest struct {
	Title       *string        `json:"title,omitempty" validate:"omitnil,notblank"`
	Description *string        `json:"description,omitempty"`
	StartDate   *string        `json:"startDate,omitempty"`
	EndDate     *string        `json:"endDate,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Reminders   []ReminderType `json:"reminders,omitempty" validate:"omitempty,dive,reminder"`
	IsAllDay    *bool          `json:"isAllDay,omitempty"`
	Color       *string        `json:"color,omitempty" validate:"omitnil,hexcolor"`
}

// EventFilter narrows owner-scoped event listings. From and To are inclusive
// bounds on the start timestamp; Limit of zero means unbounded.
type EventFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  uint64
}
