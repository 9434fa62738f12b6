package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID           = errors.New("invalid user ID")
	ErrInvalidPin              = errors.New("pin must be exactly 4 digits")
	ErrInvalidNotificationTime = errors.New("notification time must be HH:MM")
	ErrInvalidFrequency        = errors.New("unknown notification frequency")
	ErrInvalidCustomInterval   = errors.New("custom interval must be at least 1 day")
)
