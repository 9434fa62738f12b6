package store

import "errors"

var (
	// ErrLocalSessionNotFound is returned when no session has been cached
	// locally.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSettingsCacheMiss is returned when no settings record has been
	// cached for the requested user.
	ErrSettingsCacheMiss = errors.New("settings cache miss")

	// ErrNoPendingReminders is returned when every stored event reminder
	// has already been delivered.
	ErrNoPendingReminders = errors.New("no pending event reminders")
)
