package service

import "errors"

var (
	ErrSettingsUnavailable = errors.New("settings record unavailable")
	ErrPinNotSet           = errors.New("pin is enabled but no verifier is stored")

	ErrValidationNoUserID = errors.New("no user ID was given")
	ErrValidationNoTitle  = errors.New("title is required")
	ErrValidationNoEvent  = errors.New("event has no ID")
	ErrReminderInPast     = errors.New("reminder instant is in the past")
)
