package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-calendar/internal/validators"
	"github.com/MKhiriev/go-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerEventService struct {
	calls    int
	createFn func(ctx context.Context, req models.CreateEventRequest, userID string) (models.Event, error)
	updateFn func(ctx context.Context, eventID string, req models.UpdateEventRequest, userID string) (models.Event, error)
}

func (m *mockInnerEventService) Create(ctx context.Context, req models.CreateEventRequest, userID string) (models.Event, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, req, userID)
	}
	return models.Event{}, nil
}

func (m *mockInnerEventService) FindAll(ctx context.Context, userID string) ([]models.Event, error) {
	m.calls++
	return nil, nil
}

func (m *mockInnerEventService) FindUpcoming(ctx context.Context, userID string, limit int) ([]models.Event, error) {
	m.calls++
	return nil, nil
}

func (m *mockInnerEventService) FindByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Event, error) {
	m.calls++
	return nil, nil
}

func (m *mockInnerEventService) FindByMonth(ctx context.Context, userID string, year, month int) ([]models.Event, error) {
	m.calls++
	return nil, nil
}

func (m *mockInnerEventService) FindOne(ctx context.Context, eventID, userID string) (models.Event, error) {
	m.calls++
	return models.Event{}, nil
}

func (m *mockInnerEventService) Update(ctx context.Context, eventID string, req models.UpdateEventRequest, userID string) (models.Event, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, eventID, req, userID)
	}
	return models.Event{}, nil
}

func (m *mockInnerEventService) Remove(ctx context.Context, eventID, userID string) error {
	m.calls++
	return nil
}

type mockValidator struct {
	validateFn func(ctx context.Context, i any, fields ...string) error
}

func (m *mockValidator) Validate(ctx context.Context, i any, fields ...string) error {
	if m.validateFn != nil {
		return m.validateFn(ctx, i, fields...)
	}
	return nil
}

func newValidationService(inner EventService, v validators.Validator) EventService {
	return NewEventValidationService(v).Wrap(inner)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestEventValidation_Create_DelegatesValidRequest(t *testing.T) {
	inner := &mockInnerEventService{
		createFn: func(_ context.Context, req models.CreateEventRequest, userID string) (models.Event, error) {
			return models.Event{Title: req.Title, UserID: userID}, nil
		},
	}
	svc := newValidationService(inner, validators.NewRequestValidator())

	got, err := svc.Create(context.Background(), models.CreateEventRequest{
		Title:     "Sync",
		StartDate: "2024-01-15T10:00:00Z",
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Sync", got.Title)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 1, inner.calls)
}

func TestEventValidation_Create_RejectsInvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateEventRequest
	}{
		{name: "missing title", req: models.CreateEventRequest{StartDate: "2024-01-15"}},
		{name: "blank title", req: models.CreateEventRequest{Title: "  ", StartDate: "2024-01-15"}},
		{name: "missing start", req: models.CreateEventRequest{Title: "Sync"}},
		{name: "unknown reminder", req: models.CreateEventRequest{
			Title: "Sync", StartDate: "2024-01-15",
			Reminders: []models.ReminderType{"TEN_YEARS"},
		}},
		{name: "bad color", req: models.CreateEventRequest{
			Title: "Sync", StartDate: "2024-01-15", Color: ptr("blue"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerEventService{}
			svc := newValidationService(inner, validators.NewRequestValidator())

			_, err := svc.Create(context.Background(), tt.req, "user-1")

			assert.ErrorIs(t, err, validators.ErrInvalidInput)
			assert.Zero(t, inner.calls)
		})
	}
}

func TestEventValidation_Update_RejectsBlankTitle(t *testing.T) {
	inner := &mockInnerEventService{}
	svc := newValidationService(inner, validators.NewRequestValidator())

	_, err := svc.Update(context.Background(), testEventID, models.UpdateEventRequest{Title: ptr("")}, "user-1")

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
	assert.Zero(t, inner.calls)
}

func TestEventValidation_Update_PropagatesInnerError(t *testing.T) {
	innerErr := errors.New("inner failure")
	inner := &mockInnerEventService{
		updateFn: func(context.Context, string, models.UpdateEventRequest, string) (models.Event, error) {
			return models.Event{}, innerErr
		},
	}
	svc := newValidationService(inner, &mockValidator{})

	_, err := svc.Update(context.Background(), testEventID, models.UpdateEventRequest{}, "user-1")

	assert.ErrorIs(t, err, innerErr)
}

func TestEventValidation_ValidatorErrorIsWrapped(t *testing.T) {
	validatorErr := errors.New("validator exploded")
	inner := &mockInnerEventService{}
	svc := newValidationService(inner, &mockValidator{
		validateFn: func(context.Context, any, ...string) error { return validatorErr },
	})

	_, err := svc.Create(context.Background(), models.CreateEventRequest{}, "user-1")

	assert.ErrorIs(t, err, validatorErr)
	assert.Zero(t, inner.calls)
}

func TestEventValidation_AnonymousCallerIsRejected(t *testing.T) {
	inner := &mockInnerEventService{}
	svc := newValidationService(inner, &mockValidator{})
	ctx := context.Background()
	now := time.Now()

	calls := map[string]func() error{
		"Create": func() error {
			_, err := svc.Create(ctx, models.CreateEventRequest{}, "")
			return err
		},
		"FindAll": func() error {
			_, err := svc.FindAll(ctx, "")
			return err
		},
		"FindUpcoming": func() error {
			_, err := svc.FindUpcoming(ctx, "", 5)
			return err
		},
		"FindByDateRange": func() error {
			_, err := svc.FindByDateRange(ctx, "", now, now.Add(time.Hour))
			return err
		},
		"FindByMonth": func() error {
			_, err := svc.FindByMonth(ctx, "", 2024, 1)
			return err
		},
		"FindOne": func() error {
			_, err := svc.FindOne(ctx, testEventID, "")
			return err
		},
		"Update": func() error {
			_, err := svc.Update(ctx, testEventID, models.UpdateEventRequest{}, "")
			return err
		},
		"Remove": func() error {
			return svc.Remove(ctx, testEventID, "")
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), validators.ErrInvalidUserID)
		})
	}
	assert.Zero(t, inner.calls)
}

func TestEventValidation_ReadsAreDelegated(t *testing.T) {
	inner := &mockInnerEventService{}
	svc := newValidationService(inner, &mockValidator{})
	ctx := context.Background()

	_, _ = svc.FindAll(ctx, "user-1")
	_, _ = svc.FindUpcoming(ctx, "user-1", 0)
	_, _ = svc.FindByMonth(ctx, "user-1", 2024, 1)
	_, _ = svc.FindOne(ctx, testEventID, "user-1")
	_ = svc.Remove(ctx, testEventID, "user-1")

	assert.Equal(t, 5, inner.calls)
}
