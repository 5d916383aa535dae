// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/internal/utils"
	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
)

// DefaultUpcomingLimit caps FindUpcoming when the caller gives no limit.
const DefaultUpcomingLimit = 10

// eventService is the concrete implementation of EventService.
//
// Every operation is scoped to the owner: lookups, updates and deletes go
// through store queries filtered by both event ID and user ID.
type eventService struct {
	eventRepository store.EventRepository
	validator       validators.Validator
	idGenerator     utils.IDGenerator

	// now is the clock used for timestamps and the upcoming cut-off.
	now func() time.Time

	// location is where calendar months begin and end.
	location *time.Location

	logger *logger.Logger
}

// NewEventService constructs an EventService. A nil location means UTC.
func NewEventService(eventRepository store.EventRepository, validator validators.Validator, location *time.Location, logger *logger.Logger) EventService {
	if location == nil {
		location = time.UTC
	}

	return &eventService{
		eventRepository: eventRepository,
		validator:       validator,
		idGenerator:     utils.NewUUIDGenerator(),
		now:             time.Now,
		location:        location,
		logger:          logger,
	}
}

// Create builds the event from the request, applies defaults and validates
// the resulting candidate before persisting it.
func (s *eventService) Create(ctx context.Context, request models.CreateEventRequest, userID string) (models.Event, error) {
	log := logger.FromContext(ctx)

	startDate, err := utils.ParseTimestamp(request.StartDate)
	if err != nil {
		return models.Event{}, ErrInvalidStartDate
	}

	var endDate *time.Time
	if request.EndDate != nil {
		parsed, err := utils.ParseTimestamp(*request.EndDate)
		if err != nil {
			return models.Event{}, ErrInvalidEndDate
		}
		endDate = &parsed
	}

	now := utils.NormalizeTime(s.now())
	event := models.Event{
		ID:          s.idGenerator.Generate(),
		Title:       request.Title,
		Description: request.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    request.Location,
		Reminders:   models.Reminders(request.Reminders),
		Color:       models.DefaultEventColor,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if request.IsAllDay != nil {
		event.IsAllDay = *request.IsAllDay
	}
	if request.Color != nil {
		event.Color = *request.Color
	}

	if err = s.validator.Validate(ctx, event); err != nil {
		log.Debug().Err(err).Str("user_id", userID).Msg("event rejected")
		return models.Event{}, err
	}

	created, err := s.eventRepository.CreateEvent(ctx, event)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("event creation failed")
		return models.Event{}, fmt.Errorf("event creation failed: %w", err)
	}

	return created, nil
}

func (s *eventService) FindAll(ctx context.Context, userID string) ([]models.Event, error) {
	return s.find(ctx, models.EventFilter{UserID: userID})
}

func (s *eventService) FindUpcoming(ctx context.Context, userID string, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	from := utils.NormalizeTime(s.now())
	return s.find(ctx, models.EventFilter{
		UserID: userID,
		From:   &from,
		Limit:  uint64(limit),
	})
}

func (s *eventService) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error) {
	if !end.After(start) {
		return nil, ErrInvalidDateRange
	}

	start, end = utils.NormalizeTime(start), utils.NormalizeTime(end)
	return s.find(ctx, models.EventFilter{
		UserID: userID,
		From:   &start,
		To:     &end,
	})
}

func (s *eventService) FindByMonth(ctx context.Context, userID string, year, month int) ([]models.Event, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return nil, ErrInvalidYear
	}

	start, end := utils.MonthRange(year, time.Month(month), s.location)
	start, end = utils.NormalizeTime(start), utils.NormalizeTime(end)

	return s.find(ctx, models.EventFilter{
		UserID: userID,
		From:   &start,
		To:     &end,
	})
}

// FindOne returns store.ErrEventNotFound both for missing events and for
// events owned by someone else. IDs that are not UUIDs cannot exist.
func (s *eventService) FindOne(ctx context.Context, eventID, userID string) (models.Event, error) {
	if !utils.IsValidUUID(eventID) {
		return models.Event{}, store.ErrEventNotFound
	}

	event, err := s.eventRepository.FindEventByID(ctx, eventID, userID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("event_id", eventID).
			Str("user_id", userID).
			Msg("event lookup failed")
		return models.Event{}, fmt.Errorf("event lookup failed: %w", err)
	}

	return event, nil
}

// Update loads the owned event, merges the patch onto it and validates the
// merged candidate. The end>start rule is therefore checked against the
// stored counterpart when the patch carries only one of the two dates.
func (s *eventService) Update(ctx context.Context, eventID string, request models.UpdateEventRequest, userID string) (models.Event, error) {
	log := logger.FromContext(ctx)

	current, err := s.FindOne(ctx, eventID, userID)
	if err != nil {
		return models.Event{}, err
	}

	candidate, err := mergeEvent(current, request)
	if err != nil {
		return models.Event{}, err
	}
	candidate.UpdatedAt = utils.NormalizeTime(s.now())

	if err = s.validator.Validate(ctx, candidate); err != nil {
		log.Debug().Err(err).Str("event_id", eventID).Msg("event update rejected")
		return models.Event{}, err
	}

	updated, err := s.eventRepository.UpdateEvent(ctx, candidate)
	if err != nil {
		log.Err(err).Str("event_id", eventID).Msg("event update failed")
		return models.Event{}, fmt.Errorf("event update failed: %w", err)
	}

	return updated, nil
}

func (s *eventService) Remove(ctx context.Context, eventID, userID string) error {
	if _, err := s.FindOne(ctx, eventID, userID); err != nil {
		return err
	}

	if err := s.eventRepository.DeleteEvent(ctx, eventID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("event_id", eventID).Msg("event deletion failed")
		return fmt.Errorf("event deletion failed: %w", err)
	}

	return nil
}

func (s *eventService) find(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.eventRepository.FindEvents(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", filter.UserID).Msg("event listing failed")
		return nil, fmt.Errorf("event listing failed: %w", err)
	}

	return events, nil
}

// mergeEvent applies the non-nil fields of patch to a copy of current.
func mergeEvent(current models.Event, patch models.UpdateEventRequest) (models.Event, error) {
	merged := current

	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.StartDate != nil {
		startDate, err := utils.ParseTimestamp(*patch.StartDate)
		if err != nil {
			return models.Event{}, ErrInvalidStartDate
		}
		merged.StartDate = startDate
	}
	if patch.EndDate != nil {
		endDate, err := utils.ParseTimestamp(*patch.EndDate)
		if err != nil {
			return models.Event{}, ErrInvalidEndDate
		}
		merged.EndDate = &endDate
	}
	if patch.Location != nil {
		merged.Location = patch.Location
	}
	if patch.Reminders != nil {
		merged.Reminders = models.Reminders(patch.Reminders)
	}
	if patch.IsAllDay != nil {
		merged.IsAllDay = *patch.IsAllDay
	}
	if patch.Color != nil {
		merged.Color = *patch.Color
	}

	return merged, nil
}
