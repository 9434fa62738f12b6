package models

import "time"

// Session is the cached backend authentication state. It lives in the
// client-local store so the user is not asked to sign in on every start.
type Session struct {
	// UserID is the backend identity the token was issued for.
	UserID string `json:"user_id"`

	// Token is the bearer token presented to the backend.
	Token string `json:"token"`

	// SavedAt is when the session was cached locally.
	SavedAt time.Time `json:"saved_at"`
}
