package notify

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier delivers a message through the platform notification facility.
// It carries no permission logic; callers decide whether delivery is
// allowed before pushing.
type Notifier interface {
	// Push shows a notification with the given title and body. Returns an
	// error when the platform facility is unavailable or rejects the
	// delivery.
	Push(title, body string) error
}
