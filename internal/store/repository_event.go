package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/models"
)

// eventRepository is the SQL implementation of [EventRepository] over the
// "events" table.
type eventRepository struct {
	*DB
	logger *logger.Logger
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEvent inserts a fully populated event and returns it.
func (e *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.buildInsertEventQuery(event)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Msg("failed to build query")
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*eventRepository.CreateEvent").
			Str("user_id", event.UserID).
			Bool("retryable", e.errorClassificator.Classify(err) == Retryable).
			Msg("error inserting event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return event, nil
}

// FindEvents returns the owner's events matching the filter, ordered by
// start date ascending. An empty result is an empty, non-nil slice.
func (e *eventRepository) FindEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.buildSelectEventsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FindEvents").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*eventRepository.FindEvents").
			Str("user_id", filter.UserID).
			Msg("failed to execute query for events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*eventRepository.FindEvents").
				Str("user_id", filter.UserID).
				Msg("failed to scan event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*eventRepository.FindEvents").
			Str("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return events, nil
}

// FindEventByID returns [ErrEventNotFound] when the event does not exist or
// is owned by someone else.
func (e *eventRepository) FindEventByID(ctx context.Context, eventID, userID string) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.buildSelectEventByIDQuery(eventID, userID)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.FindEventByID").Msg("failed to build query")
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	event, err := scanEvent(e.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*eventRepository.FindEventByID").
			Str("event_id", eventID).
			Msg("failed to scan event row")
		return models.Event{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return event, nil
}

// UpdateEvent writes the event back. Zero affected rows means the event
// vanished or is not owned by event.UserID.
func (e *eventRepository) UpdateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := e.buildUpdateEventQuery(event)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.UpdateEvent").Msg("failed to build query")
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = e.execAffectingOne(ctx, "*eventRepository.UpdateEvent", event.ID, query, args); err != nil {
		return models.Event{}, err
	}

	return event, nil
}

func (e *eventRepository) DeleteEvent(ctx context.Context, eventID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := e.buildDeleteEventQuery(eventID, userID)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEvent").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return e.execAffectingOne(ctx, "*eventRepository.DeleteEvent", eventID, query, args)
}

func (e *eventRepository) execAffectingOne(ctx context.Context, funcName, eventID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("event_id", eventID).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("event_id", eventID).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event       models.Event
		description sql.NullString
		endDate     sql.NullTime
		location    sql.NullString
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&description,
		&event.StartDate,
		&endDate,
		&location,
		&event.Reminders,
		&event.IsAllDay,
		&event.Color,
		&event.UserID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	if description.Valid {
		event.Description = &description.String
	}
	if endDate.Valid {
		event.EndDate = utcPtr(&endDate.Time)
	}
	if location.Valid {
		event.Location = &location.String
	}
	event.StartDate = utc(event.StartDate)
	event.CreatedAt = utc(event.CreatedAt)
	event.UpdatedAt = utc(event.UpdatedAt)

	return event, nil
}
