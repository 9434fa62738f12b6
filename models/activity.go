package models

import "time"

// ActivityRecord holds the timestamp of the user's most recent qualifying
// interaction (key press, pointer input, window focus). It lives in the
// client-local store only and is owned exclusively by the session gate.
type ActivityRecord struct {
	// LastActivityAt is the most recent interaction instant.
	LastActivityAt time.Time

	// Known is false when no activity has ever been recorded. A missing
	// record is treated as if the inactivity threshold were already
	// exceeded.
	Known bool
}
