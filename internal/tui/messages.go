package tui

import (
	"github.com/memvault/memvault/models"
)

// NavigateTo switches the active page in [RootModel].
type NavigateTo struct {
	Page string
}

// SessionResult finishes the sign-in flow.
type SessionResult struct {
	Session models.Session
	Err     error
}

type pinResultMsg struct {
	ok  bool
	err error
}

type entriesLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type eventsLoadedMsg struct {
	events []models.Event
	err    error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type streakLoadedMsg struct {
	streak models.Streak
	err    error
}

type settingsLoadedMsg struct {
	settings models.UserSettings
	err      error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type clearStatusMsg struct{}
