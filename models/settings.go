package models

import "time"

// SecuritySettings controls the PIN lock on the local session.
type SecuritySettings struct {
	// PinEnabled turns the PIN challenge on or off.
	PinEnabled bool

	// PinHash is the stored PIN verifier. New records hold an argon2id
	// hash string; records written by older clients may hold the bare
	// 4-digit code, which is still accepted for comparison.
	PinHash string
}

// PinChange is the boundary value for enabling, changing, or disabling the
// session PIN. Pin carries the clear 4-digit code; it is hashed before
// anything is persisted.
type PinChange struct {
	// Enabled is the requested state of the PIN challenge.
	Enabled bool

	// Pin is the clear 4-digit code. Required when enabling; ignored when
	// disabling.
	Pin string
}

// UserSettings is the single per-user settings record on the backend.
// Field names mirror the user_settings columns of the hosted store.
type UserSettings struct {
	// UserID identifies the owning user.
	UserID string `json:"user_id"`

	// PinEnabled turns the PIN challenge on or off.
	PinEnabled bool `json:"pin_enabled"`

	// PinCode is the stored PIN verifier, null when no PIN is set.
	PinCode *string `json:"pin_code"`

	// NotificationEnabled turns the journal reminder on or off.
	NotificationEnabled bool `json:"notification_enabled"`

	// NotificationTime is the reminder time-of-day as "HH:MM".
	NotificationTime string `json:"notification_time"`

	// NotificationFrequency is the reminder recurrence, one of the
	// Frequency constants.
	NotificationFrequency Frequency `json:"notification_frequency"`

	// CustomIntervalDays is the repeat interval for FrequencyCustom,
	// null otherwise.
	CustomIntervalDays *int `json:"custom_interval_days"`

	// LastNotifiedAt is the instant of the most recent delivered
	// reminder, null if none has been delivered yet.
	LastNotifiedAt *time.Time `json:"last_notified_at"`
}

// Security extracts the security view of the record.
func (s UserSettings) Security() SecuritySettings {
	sec := SecuritySettings{PinEnabled: s.PinEnabled}
	if s.PinCode != nil {
		sec.PinHash = *s.PinCode
	}
	return sec
}

// Reminder extracts the reminder rule view of the record. An unparseable
// NotificationTime yields a disabled rule rather than an error: a corrupt
// record must not wedge scheduling, it only suspends it.
func (s UserSettings) Reminder() ReminderRule {
	tod, err := ParseTimeOfDay(s.NotificationTime)
	if err != nil {
		return ReminderRule{}
	}

	rule := ReminderRule{
		Enabled:     s.NotificationEnabled,
		TimeOfDay:   tod,
		Frequency:   s.NotificationFrequency,
		LastFiredAt: s.LastNotifiedAt,
	}
	if s.CustomIntervalDays != nil {
		rule.CustomIntervalDays = *s.CustomIntervalDays
	}
	return rule
}
