package store

import (
	"time"

	"github.com/MKhiriev/go-calendar/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable  = "users"
	eventsTable = "events"
)

var userColumns = []string{
	"user_id",
	"email",
	"first_name",
	"last_name",
	"password_hash",
	"is_active",
	"created_at",
	"updated_at",
}

var eventColumns = []string{
	"event_id",
	"title",
	"description",
	"start_date",
	"end_date",
	"location",
	"reminders",
	"is_all_day",
	"color",
	"user_id",
	"created_at",
	"updated_at",
}

func (db *DB) buildInsertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Email,
			user.FirstName,
			user.LastName,
			user.PasswordHash,
			user.IsActive,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

func (db *DB) buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) buildInsertEventQuery(event models.Event) (string, []any, error) {
	return db.builder.
		Insert(eventsTable).
		Columns(eventColumns...).
		Values(
			event.ID,
			event.Title,
			nullable(event.Description),
			event.StartDate,
			nullable(event.EndDate),
			nullable(event.Location),
			remindersArg(event.Reminders),
			event.IsAllDay,
			event.Color,
			event.UserID,
			event.CreatedAt,
			event.UpdatedAt,
		).
		ToSql()
}

// buildSelectEventsQuery lists the owner's events. From and To are inclusive
// bounds on start_date. Ties on start_date are broken by id so that paging
// with a limit is deterministic.
func (db *DB) buildSelectEventsQuery(filter models.EventFilter) (string, []any, error) {
	query := db.builder.
		Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"start_date": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"start_date": *filter.To})
	}

	query = query.OrderBy("start_date ASC", "event_id ASC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

func (db *DB) buildSelectEventByIDQuery(eventID, userID string) (string, []any, error) {
	return db.builder.
		Select(eventColumns...).
		From(eventsTable).
		Where(sq.Eq{"event_id": eventID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpdateEventQuery overwrites every mutable column. Ownership and
// creation time are never touched.
func (db *DB) buildUpdateEventQuery(event models.Event) (string, []any, error) {
	return db.builder.
		Update(eventsTable).
		Set("title", event.Title).
		Set("description", nullable(event.Description)).
		Set("start_date", event.StartDate).
		Set("end_date", nullable(event.EndDate)).
		Set("location", nullable(event.Location)).
		Set("reminders", remindersArg(event.Reminders)).
		Set("is_all_day", event.IsAllDay).
		Set("color", event.Color).
		Set("updated_at", event.UpdatedAt).
		Where(sq.Eq{"event_id": event.ID}).
		Where(sq.Eq{"user_id": event.UserID}).
		ToSql()
}

func (db *DB) buildDeleteEventQuery(eventID, userID string) (string, []any, error) {
	return db.builder.
		Delete(eventsTable).
		Where(sq.Eq{"event_id": eventID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// nullable dereferences optional values; nil becomes SQL NULL.
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// remindersArg converts reminders to the plain driver value so that every
// driver stores the same comma separated text.
func remindersArg(reminders models.Reminders) any {
	value, _ := reminders.Value()
	return value
}

// utc normalizes a scanned timestamp; drivers may return local times.
func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
