package service

import (
	"context"
	"time"

	"github.com/memvault/memvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionGate decides whether the current session is behind the PIN
// challenge. The gate never blocks the user out on infrastructure
// failure: when the settings record cannot be read from the backend or
// the local cache, the session is treated as unlocked.
type SessionGate interface {
	// IsUnlocked evaluates the lock state at the current instant. True
	// when the PIN challenge is disabled, when the settings record is
	// unreadable, or when the last recorded interaction is within the
	// inactivity threshold.
	IsUnlocked(ctx context.Context, userID string) bool

	// SubmitPin checks candidate against the stored verifier. A match
	// unlocks the session and counts as user interaction; a mismatch
	// returns false with a nil error. The error is non-nil only when the
	// stored verifier cannot be read.
	SubmitPin(ctx context.Context, userID string, candidate string) (bool, error)

	// OnUserInteraction records a qualifying user interaction at the
	// current instant. Persistence failures are logged, not surfaced;
	// losing one timestamp only makes the gate stricter.
	OnUserInteraction(ctx context.Context)
}

// ReminderScheduler owns the single live timer for the recurring journal
// reminder. Start arms it from the current rule; any previous timer is
// cancelled first, so at most one timer exists per client no matter how
// often the rule changes.
type ReminderScheduler interface {
	// Start loads the reminder rule for userID, cancels any previously
	// armed timer, and arms a new one for the next occurrence. When the
	// rule is disabled or unreadable nothing is armed. The goroutine
	// exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, userID string)

	// Stop cancels the armed timer and blocks until the background
	// goroutine has fully exited. Safe to call when nothing is armed.
	Stop()

	// NextFireAt returns the instant the armed timer will fire, or false
	// when nothing is armed.
	NextFireAt() (time.Time, bool)
}

// ReminderDispatcher delivers computed reminders through the platform
// notification facility, gated by the locally persisted permission state.
type ReminderDispatcher interface {
	// Dispatch delivers a notification when permission is granted and is
	// a silent no-op otherwise. Permission is a user choice, not a
	// failure, so Dispatch never reports one; delivery errors are logged
	// and swallowed.
	Dispatch(ctx context.Context, title, body string)
}

// SettingsService reads and writes the per-user settings record through
// the backend adapter, keeping the local cache current so the gate and
// scheduler survive backend outages.
type SettingsService interface {
	// Current returns the settings record for userID, from the backend
	// when reachable and from the local cache otherwise. A successful
	// backend read refreshes the cache.
	Current(ctx context.Context, userID string) (models.UserSettings, error)

	// UpdateSecurity applies a PIN change. The clear PIN is validated and
	// hashed before anything is persisted.
	UpdateSecurity(ctx context.Context, userID string, change models.PinChange) error

	// UpdateReminder replaces the reminder fields of the settings record
	// and re-arms the scheduler.
	UpdateReminder(ctx context.Context, userID string, enabled bool, timeOfDay string, freq models.Frequency, customDays int) error

	// RecordNotified persists firedAt as the instant of the most recent
	// delivered reminder occurrence.
	RecordNotified(ctx context.Context, userID string, firedAt time.Time) error

	// SetPermission persists the desktop-notification permission state.
	SetPermission(ctx context.Context, state models.PermissionState) error

	// BindScheduler attaches the scheduler re-armed after reminder
	// updates. Called once during wiring; a nil scheduler leaves updates
	// passive.
	BindScheduler(scheduler ReminderScheduler)
}

// JournalService manages journal entries and keeps the streak record in
// step with them.
type JournalService interface {
	// Create validates and stores entry, then applies the streak rules
	// for the entry's calendar day.
	Create(ctx context.Context, userID string, entry models.JournalEntry) (models.JournalEntry, error)

	// List returns all entries owned by userID.
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// Update replaces the stored entry.
	Update(ctx context.Context, entry models.JournalEntry) error

	// Delete removes the entry by id.
	Delete(ctx context.Context, id string) error
}

// EventService manages calendar events and their one-shot local
// reminders.
type EventService interface {
	// Create stores event on the backend. When remindAt is non-nil a
	// one-shot reminder is queued locally for that instant.
	Create(ctx context.Context, userID string, event models.Event, remindAt *time.Time) (models.Event, error)

	// List returns all events owned by userID.
	List(ctx context.Context, userID string) ([]models.Event, error)

	// Update replaces the stored event.
	Update(ctx context.Context, event models.Event) error

	// Delete removes the event and any local reminders attached to it.
	Delete(ctx context.Context, id string) error

	// SetReminder queues a one-shot reminder for event at fireAt,
	// replacing any reminder previously attached to it.
	SetReminder(ctx context.Context, event models.Event, fireAt time.Time) error
}

// NoteService manages free-form notes.
type NoteService interface {
	Create(ctx context.Context, userID string, note models.Note) (models.Note, error)
	List(ctx context.Context, userID string) ([]models.Note, error)
	Update(ctx context.Context, note models.Note) error
	Delete(ctx context.Context, id string) error
}

// StreakService maintains the journaling streak record.
type StreakService interface {
	// Current returns the streak record for userID. A user who has never
	// journaled gets a zero-valued record, not an error.
	Current(ctx context.Context, userID string) (models.Streak, error)

	// RecordEntry applies the streak rules for a journal entry written on
	// entryDay: consecutive-day entries extend the streak, a gap resets
	// it to 1, repeat entries on the same day leave it untouched. Every
	// entry adds points.
	RecordEntry(ctx context.Context, userID string, entryDay time.Time) (models.Streak, error)
}

// EventReminderJob is the background worker that delivers one-shot event
// reminders. It sleeps until the earliest pending reminder's fire instant
// and rescans the store at least once per scan interval, so reminders
// added mid-sleep are picked up.
type EventReminderJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped before the new one begins. scanInterval bounds every
	// sleep, pending reminder or not; zero or negative defaults to one
	// minute.
	Start(ctx context.Context, scanInterval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
