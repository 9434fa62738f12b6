package models

import "time"

// JournalEntry is a single dated journal record stored on the backend.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	EntryDate string    `json:"entry_date"` // "YYYY-MM-DD"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
