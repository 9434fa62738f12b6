// SPDX-License-Identifier: Apache-2.0

// Package crypto holds the credential-derivation primitives of the
// memvault client. The only credential the client manages itself is the
// session PIN; everything else is delegated to the hosted backend.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const pinHashPrefix = "argon2id"

// pinHasher is the private implementation of [PinHasher].
type pinHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPinHasher constructs a [PinHasher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPinHasher() PinHasher {
	return &pinHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Hash implements [PinHasher]. It reads a 16-byte salt from the OS CSPRNG,
// derives the Argon2id key, and encodes both into
// "argon2id$<base64 salt>$<base64 key>". Returns an error only if the
// random read fails.
func (h *pinHasher) Hash(pin string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate pin salt: %w", err)
	}

	key := h.derive(pin, salt)
	return strings.Join([]string{
		pinHashPrefix,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	}, "$"), nil
}

// Verify implements [PinHasher]. Stored verifiers are re-derived with the
// embedded salt and compared in constant time. Values that do not parse as
// a verifier (records written by clients that stored the PIN in the clear)
// fall back to a constant-time string comparison.
func (h *pinHasher) Verify(stored, candidate string) bool {
	salt, key, err := decodePinHash(stored)
	if err != nil {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
	}

	derived := h.derive(candidate, salt)
	return subtle.ConstantTimeCompare(key, derived) == 1
}

func (h *pinHasher) derive(pin string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(pin),
		salt,
		h.argonTime,
		h.argonMemory,
		h.argonThreads,
		h.argonKeyLen,
	)
}

func decodePinHash(stored string) (salt, key []byte, err error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != pinHashPrefix {
		return nil, nil, fmt.Errorf("not a pin verifier")
	}

	salt, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, nil, fmt.Errorf("decode pin salt: %w", err)
	}
	key, err = base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, fmt.Errorf("decode pin key: %w", err)
	}

	return salt, key, nil
}
