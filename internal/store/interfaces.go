package store

import (
	"context"
	"time"

	"github.com/memvault/memvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ActivityRepository persists the timestamp of the user's most recent
// qualifying interaction. The record lives only in the client-local store
// and is owned by the session gate; no other component may interpret it.
type ActivityRepository interface {
	// RecordActivity overwrites the stored timestamp with at.
	RecordActivity(ctx context.Context, at time.Time) error

	// LastActivity returns the stored record. A record with Known=false
	// means no activity has ever been recorded; that is a valid state,
	// not an error.
	LastActivity(ctx context.Context) (models.ActivityRecord, error)
}

// SessionRepository caches the backend session between client starts.
type SessionRepository interface {
	// SaveSession stores s, replacing any previous session.
	SaveSession(ctx context.Context, s models.Session) error

	// Session returns the cached session or [ErrLocalSessionNotFound].
	Session(ctx context.Context) (models.Session, error)

	// DeleteSession removes the cached session. Deleting a missing
	// session is a no-op.
	DeleteSession(ctx context.Context) error
}

// SettingsCacheRepository keeps the most recently fetched user_settings
// record so the gate and scheduler can keep working through backend
// outages.
type SettingsCacheRepository interface {
	// CacheSettings stores s, replacing any previous copy for the user.
	CacheSettings(ctx context.Context, s models.UserSettings) error

	// CachedSettings returns the cached record for userID or
	// [ErrSettingsCacheMiss].
	CachedSettings(ctx context.Context, userID string) (models.UserSettings, error)
}

// PermissionRepository persists the desktop-notification permission state
// in the local key-value area. Asking the user for permission happens in
// the UI; this repository only records the answer.
type PermissionRepository interface {
	// SavePermission overwrites the stored state.
	SavePermission(ctx context.Context, state models.PermissionState) error

	// Permission returns the stored state. A missing record reads as
	// [models.PermissionDefault].
	Permission(ctx context.Context) (models.PermissionState, error)
}

// EventReminderRepository stores one-shot event reminders pending local
// delivery.
type EventReminderRepository interface {
	// SaveReminder inserts or replaces a reminder by ID.
	SaveReminder(ctx context.Context, r models.EventReminder) error

	// NextPending returns the undelivered reminder with the earliest
	// fire instant, or [ErrNoPendingReminders] when none exist.
	NextPending(ctx context.Context) (models.EventReminder, error)

	// MarkDelivered flags the reminder as dispatched.
	MarkDelivered(ctx context.Context, id string) error

	// DeleteByEvent removes all reminders attached to eventID.
	DeleteByEvent(ctx context.Context, eventID string) error
}
