package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "winespa/internal/domain/errors"
)

// AbsenceKind tells whether the manicurist misses the day (or part of it) or arrives late.
type AbsenceKind string

const (
	AbsenceKindAbsent AbsenceKind = "absent"
	AbsenceKindLate   AbsenceKind = "late"
)

// AbsenceType tells how much of the day an absence covers.
type AbsenceType string

const (
	AbsenceTypeFull    AbsenceType = "full"
	AbsenceTypePartial AbsenceType = "partial"
)

// ClockTime is a time of day in minutes since midnight.
type ClockTime int

// NewClockTime builds a ClockTime, rejecting out-of-range values.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, domainerrors.ErrInvalidInput.WithDetails("invalid time of day")
	}

	return ClockTime(hour*60 + minute), nil
}

// ParseClockTime parses "15:04".
func ParseClockTime(value string) (ClockTime, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithDetails("time must be HH:MM")
	}

	return NewClockTime(t.Hour(), t.Minute())
}

// String formats the time as HH:MM.
func (c ClockTime) String() string {
	return time.Date(0, 1, 1, int(c)/60, int(c)%60, 0, 0, time.UTC).Format("15:04")
}

// Absence (novedad) records a manicurist missing work or arriving late on a given date.
type Absence struct {
	ID           uuid.UUID
	ManicuristID uuid.UUID
	Date         time.Time // Calendar date, midnight UTC.
	Kind         AbsenceKind
	Type         AbsenceType // Required when Kind is absent.
	ArrivalTime  *ClockTime  // Required when Kind is late.
	AbsenceStart *ClockTime  // Partial absences only.
	AbsenceEnd   *ClockTime  // Partial absences only.
	Notes        string
	CreatedAt    time.Time
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate checks the record against today's date and the kind/type combination rules.
func (a *Absence) Validate(today time.Time) error {
	if a.ManicuristID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("manicurist is required")
	}
	if DateOnly(a.Date).Before(DateOnly(today)) {
		return domainerrors.ErrValidationFailed.WithDetails("date must not be in the past")
	}

	switch a.Kind {
	case AbsenceKindLate:
		if a.ArrivalTime == nil {
			return domainerrors.ErrValidationFailed.WithDetails("late arrival requires an arrival time")
		}
		if a.Type != "" || a.AbsenceStart != nil || a.AbsenceEnd != nil {
			return domainerrors.ErrValidationFailed.WithDetails("late arrival cannot carry an absence window")
		}
	case AbsenceKindAbsent:
		if a.ArrivalTime != nil {
			return domainerrors.ErrValidationFailed.WithDetails("absence cannot carry an arrival time")
		}

		return a.validateAbsenceWindow()
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown absence kind: " + string(a.Kind))
	}

	return nil
}

func (a *Absence) validateAbsenceWindow() error {
	switch a.Type {
	case AbsenceTypeFull:
		if a.AbsenceStart != nil || a.AbsenceEnd != nil {
			return domainerrors.ErrValidationFailed.WithDetails("full-day absence cannot carry start or end times")
		}
	case AbsenceTypePartial:
		if a.AbsenceStart == nil || a.AbsenceEnd == nil {
			return domainerrors.ErrValidationFailed.WithDetails("partial absence requires start and end times")
		}
		if *a.AbsenceStart >= *a.AbsenceEnd {
			return domainerrors.ErrValidationFailed.WithDetails("absence start must be before its end")
		}
	case "":
		return domainerrors.ErrValidationFailed.WithDetails("absence requires a type")
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown absence type: " + string(a.Type))
	}

	return nil
}
