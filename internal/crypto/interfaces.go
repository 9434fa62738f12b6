//go:generate mockgen -source=interfaces.go -destination=../mock/pin_hasher_mock.go -package=mock

package crypto

// PinHasher derives and verifies the stored form of the 4-digit session
// PIN. The PIN never leaves the client in the clear; only the derived
// string is written to the settings store.
type PinHasher interface {
	// Hash derives the storable verifier string for pin. The result
	// embeds the random salt, so two calls with the same pin produce
	// different strings.
	Hash(pin string) (string, error)

	// Verify reports whether candidate matches the stored verifier.
	// A stored value that does not parse as a verifier is treated as a
	// legacy plaintext PIN and compared in constant time as-is.
	Verify(stored, candidate string) bool
}
