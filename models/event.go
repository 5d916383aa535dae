package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DefaultEventColor is applied to events created without an explicit color.
const DefaultEventColor = "#3498db"

// ReminderType is an offset-before-start value attached to an event.
type ReminderType string

const (
	FiveMinutes    ReminderType = "FIVE_MINUTES"
	FifteenMinutes ReminderType = "FIFTEEN_MINUTES"
	ThirtyMinutes  ReminderType = "THIRTY_MINUTES"
	OneHour        ReminderType = "ONE_HOUR"
	TwoHours       ReminderType = "TWO_HOURS"
	OneDay         ReminderType = "ONE_DAY"
	OneWeek        ReminderType = "ONE_WEEK"
)

// Offset returns how long before the event start the reminder fires.
func (r ReminderType) Offset() time.Duration {
	switch r {
	case FiveMinutes:
		return 5 * time.Minute
	case FifteenMinutes:
		return 15 * time.Minute
	case ThirtyMinutes:
		return 30 * time.Minute
	case OneHour:
		return time.Hour
	case TwoHours:
		return 2 * time.Hour
	case OneDay:
		return 24 * time.Hour
	case OneWeek:
		return 7 * 24 * time.Hour
	}
	return 0
}

// Reminders is an ordered list of reminder kinds. In the database it is kept
// as a single comma separated text column; NULL maps to a nil slice.
type Reminders []ReminderType

// Value implements [driver.Valuer].
func (r Reminders) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}

	parts := make([]string, len(r))
	for i, reminder := range r {
		parts[i] = string(reminder)
	}

	return strings.Join(parts, ","), nil
}

// Scan implements [sql.Scanner].
func (r *Reminders) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Reminders", src)
	}

	if raw == "" {
		*r = Reminders{}
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make(Reminders, len(parts))
	for i, part := range parts {
		result[i] = ReminderType(part)
	}
	*r = result

	return nil
}

// Event is a calendar entry owned by a single user.
type Event struct {
	// ID is the unique identifier of the event (UUID).
	ID string `json:"id"`

	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`

	// StartDate is required. EndDate, when present, is strictly after StartDate.
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Location  *string   `json:"location,omitempty"`
	Reminders Reminders `json:"reminders,omitempty"`
	IsAllDay  bool      `json:"isAllDay"`
	Color     string    `json:"color"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Event model.
func (e Event) TableName() string {
	return "events"
}
