package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock hour/minute pair without a date or zone.
// Reminder rules store it as "HH:MM" and resolve it against local time
// each time an occurrence is computed.
type TimeOfDay struct {
	// Hour is the hour component in the 24-hour clock, 0-23.
	Hour int

	// Minute is the minute component, 0-59.
	Minute int
}

const timeOfDayLayout = "15:04"

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay. The whole
// string must be the two-digit form: trailing characters, single-digit
// hours, and out-of-range components are all rejected. The raw string is
// what gets persisted as notification_time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(timeOfDayLayout) {
		return TimeOfDay{}, fmt.Errorf("time of day %q: want HH:MM", s)
	}

	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}

	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String renders the value back to the persisted "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant on day's calendar date whose local time-of-day
// equals the receiver, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// NextAfter returns the earliest instant at or after now whose local
// time-of-day equals the receiver: today if that time has not passed yet,
// otherwise tomorrow.
func (t TimeOfDay) NextAfter(now time.Time) time.Time {
	candidate := t.On(now)
	if candidate.Before(now) {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return candidate
}
