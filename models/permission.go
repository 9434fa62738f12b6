package models

// PermissionState is the locally persisted desktop-notification permission.
// It mirrors the web Notification API states so records written by either
// client stay readable.
type PermissionState string

const (
	// PermissionGranted allows the dispatcher to deliver notifications.
	PermissionGranted PermissionState = "granted"

	// PermissionDenied suppresses delivery; the user said no.
	PermissionDenied PermissionState = "denied"

	// PermissionDefault means the user has not been asked yet. Delivery
	// is suppressed the same as denied.
	PermissionDefault PermissionState = "default"
)

// Granted reports whether delivery is allowed.
func (p PermissionState) Granted() bool {
	return p == PermissionGranted
}
