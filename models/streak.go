package models

// Streak tracks consecutive journaling days for the gamification panel.
// Dates are calendar days in the user's local zone, stored as "YYYY-MM-DD".
type Streak struct {
	// UserID identifies the owning user.
	UserID string `json:"user_id"`

	// CurrentStreak is the number of consecutive days with at least one
	// journal entry, ending at LastJournalDate.
	CurrentStreak int `json:"current_streak"`

	// LongestStreak is the all-time maximum of CurrentStreak.
	LongestStreak int `json:"longest_streak"`

	// TotalPoints accumulates journaling points (10 per entry).
	TotalPoints int `json:"total_points"`

	// LastJournalDate is the calendar day of the most recent entry,
	// empty if the user has never journaled.
	LastJournalDate string `json:"last_journal_date"`
}
