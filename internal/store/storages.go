package store

import (
	"context"
	"fmt"

	"github.com/memvault/memvault/internal/config"
	"github.com/memvault/memvault/internal/logger"
)

// ClientStorages groups all client-local repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// Activity holds the last-interaction timestamp for the session gate.
	Activity ActivityRepository

	// Session caches the backend session between starts.
	Session SessionRepository

	// SettingsCache keeps the last fetched user_settings record.
	SettingsCache SettingsCacheRepository

	// Permission persists the desktop-notification permission state.
	Permission PermissionRepository

	// EventReminders holds one-shot event reminders pending delivery.
	EventReminders EventReminderRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.DBPath, creating
//     the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [ClientStorages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Activity:       NewActivityRepository(db, log),
		Session:        NewSessionRepository(db, log),
		SettingsCache:  NewSettingsCacheRepository(db, log),
		Permission:     NewPermissionRepository(db, log),
		EventReminders: NewEventReminderRepository(db, log),
	}, nil
}
