package kernel

import (
	"fmt"
	"time"

	"distribution/internal/pkg/errs"
)

// ErrDayIsNotConstructed is returned when attempting to use an improperly initialized Day.
// Days must be created using NewDay, DayOf or DayFromString constructors to ensure validity.
var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"day must be created via NewDay, DayOf or DayFromString constructors")

// dayLayout is the canonical string form of a Day.
const dayLayout = "2006-01-02"

// Day represents a day-bucketed calendar date. It is the key unit of the
// daily inventory allocation: pack-outs, sales and returns are all recorded
// against the day they happened, with the time-of-day truncated away.
//
// Day is an immutable value object. The zero value is invalid and will fail
// validation - use the constructors to create instances.
//
// Example:
//
//	today := kernel.DayOf(time.Now())
//	day, err := kernel.DayFromString("2026-03-14")
//	if err != nil {
//	    // Handle parse error
//	}
type Day struct {
	date          time.Time
	isConstructed bool
}

// NewDay creates a Day from explicit year/month/day components.
// The resulting Day is anchored at midnight UTC so that two Days for the
// same calendar date always compare equal regardless of the source zone.
func NewDay(year int, month time.Month, day int) Day {
	return Day{
		date:          time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		isConstructed: true,
	}
}

// DayOf buckets an instant into its calendar day.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// DayFromString parses a Day from its canonical "YYYY-MM-DD" form.
// This is the form used for persistence and for request payloads.
func DayFromString(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", fmt.Errorf("%q is not a valid day: %w", s, err))
	}
	return DayOf(t), nil
}

// Validate ensures the Day was created through one of the constructors.
func (d Day) Validate() error {
	if !d.isConstructed {
		return ErrDayIsNotConstructed
	}
	return nil
}

// String returns the canonical "YYYY-MM-DD" representation.
func (d Day) String() string {
	return d.date.Format(dayLayout)
}

// Time returns the midnight-UTC instant anchoring the day.
// Used by repositories when persisting day-bucketed records.
func (d Day) Time() time.Time {
	return d.date
}

// IsEqual reports whether two Days denote the same calendar date.
func (d Day) IsEqual(other Day) bool {
	return d.isConstructed && other.isConstructed && d.date.Equal(other.date)
}

// Before reports whether d falls strictly before other.
func (d Day) Before(other Day) bool {
	return d.date.Before(other.date)
}
