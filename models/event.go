package models

import "time"

// Event is a calendar event stored on the backend.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventReminder is a one-shot reminder attached to an event. Unlike the
// recurring journal reminder it has an absolute fire instant and is
// discarded after delivery.
type EventReminder struct {
	// ID is a client-assigned UUID.
	ID string `json:"id"`

	// EventID references the event the reminder belongs to.
	EventID string `json:"event_id"`

	// EventTitle is denormalised into the reminder so delivery does not
	// need a backend round-trip.
	EventTitle string `json:"event_title"`

	// FireAt is the absolute instant at which the reminder is due.
	FireAt time.Time `json:"fire_at"`

	// Delivered marks reminders that have already been dispatched.
	Delivered bool `json:"delivered"`
}
