package adapter

import (
	"context"

	"github.com/memvault/memvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter is the client's view of the hosted MemVault backend: an
// opaque record store keyed by user identity, reached over REST. The
// adapter carries no business logic; services own validation and the
// adapter owns transport, authentication headers, and error mapping.
type BackendAdapter interface {
	// SetToken stores the bearer token for all subsequent requests.
	SetToken(token string)

	// UserSettings fetches the single settings record for userID.
	UserSettings(ctx context.Context, userID string) (models.UserSettings, error)

	// SaveUserSettings replaces the settings record for s.UserID.
	SaveUserSettings(ctx context.Context, s models.UserSettings) error

	// CreateJournalEntry inserts entry and returns the stored record.
	CreateJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)

	// ListJournalEntries returns all entries owned by userID.
	ListJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// UpdateJournalEntry replaces the stored entry by entry.ID.
	UpdateJournalEntry(ctx context.Context, entry models.JournalEntry) error

	// DeleteJournalEntry removes the entry by id.
	DeleteJournalEntry(ctx context.Context, id string) error

	// CreateEvent inserts event and returns the stored record.
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)

	// ListEvents returns all events owned by userID.
	ListEvents(ctx context.Context, userID string) ([]models.Event, error)

	// UpdateEvent replaces the stored event by event.ID.
	UpdateEvent(ctx context.Context, event models.Event) error

	// DeleteEvent removes the event by id.
	DeleteEvent(ctx context.Context, id string) error

	// CreateNote inserts note and returns the stored record.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotes returns all notes owned by userID.
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)

	// UpdateNote replaces the stored note by note.ID.
	UpdateNote(ctx context.Context, note models.Note) error

	// DeleteNote removes the note by id.
	DeleteNote(ctx context.Context, id string) error

	// Streak fetches the gamification record for userID.
	Streak(ctx context.Context, userID string) (models.Streak, error)

	// SaveStreak replaces the gamification record for s.UserID.
	SaveStreak(ctx context.Context, s models.Streak) error
}
