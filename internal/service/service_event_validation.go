package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
)

// EventValidationService is an EventService decorator that rejects malformed
// requests and anonymous callers before they reach the wrapped service.
type EventValidationService struct {
	inner     EventService
	validator validators.Validator
}

func NewEventValidationService(validator validators.Validator) EventServiceWrapper {
	return &EventValidationService{
		validator: validator,
	}
}

func (v *EventValidationService) Create(ctx context.Context, request models.CreateEventRequest, userID string) (models.Event, error) {
	if userID == "" {
		return models.Event{}, validators.ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Event{}, fmt.Errorf("error during event validation before saving: %w", err)
	}

	return v.inner.Create(ctx, request, userID)
}

func (v *EventValidationService) FindAll(ctx context.Context, userID string) ([]models.Event, error) {
	if userID == "" {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.FindAll(ctx, userID)
}

func (v *EventValidationService) FindUpcoming(ctx context.Context, userID string, limit int) ([]models.Event, error) {
	if userID == "" {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.FindUpcoming(ctx, userID, limit)
}

func (v *EventValidationService) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error) {
	if userID == "" {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.FindByDateRange(ctx, userID, start, end)
}

func (v *EventValidationService) FindByMonth(ctx context.Context, userID string, year, month int) ([]models.Event, error) {
	if userID == "" {
		return nil, validators.ErrInvalidUserID
	}

	return v.inner.FindByMonth(ctx, userID, year, month)
}

func (v *EventValidationService) FindOne(ctx context.Context, eventID, userID string) (models.Event, error) {
	if userID == "" {
		return models.Event{}, validators.ErrInvalidUserID
	}

	return v.inner.FindOne(ctx, eventID, userID)
}

func (v *EventValidationService) Update(ctx context.Context, eventID string, request models.UpdateEventRequest, userID string) (models.Event, error) {
	if userID == "" {
		return models.Event{}, validators.ErrInvalidUserID
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Event{}, fmt.Errorf("error during event validation before update: %w", err)
	}

	return v.inner.Update(ctx, eventID, request, userID)
}

func (v *EventValidationService) Remove(ctx context.Context, eventID, userID string) error {
	if userID == "" {
		return validators.ErrInvalidUserID
	}

	return v.inner.Remove(ctx, eventID, userID)
}

func (v *EventValidationService) Wrap(wrapper EventService) EventService {
	v.inner = wrapper
	return v
}
