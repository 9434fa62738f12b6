package models

import "time"

// Frequency defines how reminder occurrences repeat.
// The value is persisted verbatim in the user_settings record.
type Frequency string

const (
	// FrequencyDaily repeats every day.
	FrequencyDaily Frequency = "daily"

	// FrequencyWeekly repeats every 7 days.
	FrequencyWeekly Frequency = "weekly"

	// FrequencyEvery3Days repeats every 3 days.
	FrequencyEvery3Days Frequency = "every3days"

	// FrequencyEvery7Days repeats every 7 days.
	FrequencyEvery7Days Frequency = "every7days"

	// FrequencyCustom repeats every ReminderRule.CustomIntervalDays days.
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is one of the known frequency values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyEvery3Days, FrequencyEvery7Days, FrequencyCustom:
		return true
	}
	return false
}

// IntervalDays returns the minimum number of days between two consecutive
// occurrences. For FrequencyCustom the caller-supplied customDays is used;
// for every other frequency customDays is ignored.
func (f Frequency) IntervalDays(customDays int) int {
	switch f {
	case FrequencyWeekly, FrequencyEvery7Days:
		return 7
	case FrequencyEvery3Days:
		return 3
	case FrequencyCustom:
		return customDays
	default:
		return 1
	}
}

// ReminderRule is the user's recurring journal reminder configuration.
// When Enabled is false the rule is inert and the scheduler arms nothing.
type ReminderRule struct {
	// Enabled turns the reminder on or off.
	Enabled bool

	// TimeOfDay is the local wall-clock time at which occurrences fire.
	TimeOfDay TimeOfDay

	// Frequency defines how occurrences repeat.
	Frequency Frequency

	// CustomIntervalDays is the repeat interval in days, meaningful only
	// when Frequency is FrequencyCustom. Must be >= 1.
	CustomIntervalDays int

	// LastFiredAt is the instant of the most recent delivered occurrence,
	// nil if the reminder has never fired.
	LastFiredAt *time.Time
}

// NextOccurrence computes the next instant at which the rule is due,
// evaluated at now. The candidate is the next wall-clock instant matching
// TimeOfDay; when LastFiredAt is set the candidate is never earlier than
// LastFiredAt plus the frequency interval (normalised to TimeOfDay), and
// is advanced by whole intervals until it is at or after now. Missed
// occurrences are skipped, never replayed.
func (r ReminderRule) NextOccurrence(now time.Time) time.Time {
	candidate := r.TimeOfDay.NextAfter(now)

	if r.LastFiredAt == nil {
		return candidate
	}

	days := r.Frequency.IntervalDays(r.CustomIntervalDays)
	if days < 1 {
		days = 1
	}

	earliest := r.TimeOfDay.On(r.LastFiredAt.AddDate(0, 0, days))
	if candidate.Before(earliest) {
		candidate = earliest
	}
	for candidate.Before(now) {
		candidate = candidate.AddDate(0, 0, days)
	}
	return candidate
}
