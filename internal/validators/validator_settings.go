package validators

import (
	"context"
	"regexp"

	"github.com/memvault/memvault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a settings record.
	FieldUserID = "user_id"

	// FieldPin targets the clear 4-digit session PIN.
	FieldPin = "pin"

	// FieldNotificationTime targets the "HH:MM" reminder time-of-day.
	FieldNotificationTime = "notification_time"

	// FieldFrequency targets the reminder recurrence value.
	FieldFrequency = "notification_frequency"

	// FieldCustomInterval targets the repeat interval used by the custom
	// frequency.
	FieldCustomInterval = "custom_interval_days"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserSettings:
		return v.validateUserSettings(ctx, value, fields...)
	case *models.UserSettings:
		return v.validateUserSettings(ctx, *value, fields...)

	case models.PinChange:
		return v.validatePinChange(ctx, value, fields...)
	case *models.PinChange:
		return v.validatePinChange(ctx, *value, fields...)

	case models.ReminderRule:
		return v.validateReminderRule(ctx, value, fields...)
	case *models.ReminderRule:
		return v.validateReminderRule(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateUserSettings(_ context.Context, s models.UserSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNotificationTime, FieldFrequency, FieldCustomInterval}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if s.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldNotificationTime:
			// An empty time is allowed while the reminder is disabled.
			if !s.NotificationEnabled && s.NotificationTime == "" {
				continue
			}
			if _, err := models.ParseTimeOfDay(s.NotificationTime); err != nil {
				return ErrInvalidNotificationTime
			}
		case FieldFrequency:
			if !s.NotificationEnabled && s.NotificationFrequency == "" {
				continue
			}
			if !s.NotificationFrequency.Valid() {
				return ErrInvalidFrequency
			}
		case FieldCustomInterval:
			if s.NotificationFrequency != models.FrequencyCustom {
				continue
			}
			if s.CustomIntervalDays == nil || *s.CustomIntervalDays < 1 {
				return ErrInvalidCustomInterval
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SettingsValidator) validatePinChange(_ context.Context, change models.PinChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPin}
	}

	for _, f := range fields {
		switch f {
		case FieldPin:
			if !change.Enabled {
				continue
			}
			if !pinPattern.MatchString(change.Pin) {
				return ErrInvalidPin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SettingsValidator) validateReminderRule(_ context.Context, rule models.ReminderRule, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrequency, FieldCustomInterval}
	}

	for _, f := range fields {
		switch f {
		case FieldFrequency:
			if !rule.Enabled {
				continue
			}
			if !rule.Frequency.Valid() {
				return ErrInvalidFrequency
			}
		case FieldCustomInterval:
			if !rule.Enabled || rule.Frequency != models.FrequencyCustom {
				continue
			}
			if rule.CustomIntervalDays < 1 {
				return ErrInvalidCustomInterval
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
