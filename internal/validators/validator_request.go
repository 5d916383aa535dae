package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-calendar/models"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"
)

// Field names accepted when scoping validation of a models.Event.
const (
	FieldTitle     = "title"
	FieldStartDate = "start_date"
	FieldDates     = "dates"
	FieldColor     = "color"
	FieldReminders = "reminders"
	FieldUserID    = "user_id"
)

var allowedReminders = []models.ReminderType{
	models.FiveMinutes,
	models.FifteenMinutes,
	models.ThirtyMinutes,
	models.OneHour,
	models.TwoHours,
	models.OneDay,
	models.OneWeek,
}

// IsValidReminder reports whether r is one of the known reminder kinds.
func IsValidReminder(r models.ReminderType) bool {
	return slices.Contains(allowedReminders, r)
}

// RequestValidator validates transport requests through struct tags and
// merged event candidates through explicit rules.
//
// Supported types (value or pointer):
//   - models.RegisterRequest, models.LoginRequest
//   - models.CreateEventRequest, models.UpdateEventRequest
//   - models.Event
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds a RequestValidator with the custom "reminder"
// and "notblank" tags registered. Error messages use JSON field names.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// registration only fails for empty tags or nil functions
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	_ = v.RegisterValidation("reminder", func(fl validator.FieldLevel) bool {
		return IsValidReminder(models.ReminderType(fl.Field().String()))
	})

	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Event:
		return v.validateEvent(value, fields...)
	case *models.Event:
		return v.validateEvent(*value, fields...)

	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CreateEventRequest, *models.CreateEventRequest,
		models.UpdateEventRequest, *models.UpdateEventRequest:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateStruct runs tag-based validation; fields are Go struct field names.
func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "notblank":
		return fe.Field() + " must not be blank"
	case "hexcolor":
		return fe.Field() + " must be a hex color"
	case "reminder":
		return fmt.Sprintf("%s must be one of %v", fe.Field(), allowedReminders)
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// validateEvent checks a complete event as it is about to be persisted.
func (v *RequestValidator) validateEvent(event models.Event, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStartDate, FieldDates, FieldColor, FieldReminders, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(event.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldStartDate:
			if event.StartDate.IsZero() {
				return ErrEmptyStartDate
			}
		case FieldDates:
			if event.EndDate != nil && !event.EndDate.After(event.StartDate) {
				return ErrEndDateNotAfterStart
			}
		case FieldColor:
			if v.validate.Var(event.Color, "required,hexcolor") != nil {
				return ErrInvalidColor
			}
		case FieldReminders:
			for i, r := range event.Reminders {
				if !IsValidReminder(r) {
					return fmt.Errorf("%w (index %d)", ErrInvalidReminder, i)
				}
			}
		case FieldUserID:
			if event.UserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
