package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", "2024-03-10T09:30:00Z", time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 offset", "2024-03-10T12:30:00+03:00", time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", "2024-03-10T09:30:00.123456789Z", time.Date(2024, 3, 10, 9, 30, 0, 123456000, time.UTC)},
		{"zone-less", "2024-03-10T09:30:00", time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"zone-less minutes", "2024-03-10T09:30", time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)},
		{"date only", "2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC location, got %v", got.Location())
			}
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2024-13-01", "10/03/2024"} {
		if _, err := ParseTimestamp(input); !errors.Is(err, ErrInvalidTimestamp) {
			t.Errorf("%q: expected ErrInvalidTimestamp, got %v", input, err)
		}
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February, time.UTC)

	if !start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("unexpected end %v", end)
	}
}

func TestMonthRange_December(t *testing.T) {
	start, end := MonthRange(2023, time.December, nil)

	if !start.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", start)
	}
	if !end.Equal(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("unexpected end %v", end)
	}
}
