package utils

import "github.com/google/uuid"

// UUIDGenerator issues client-assigned identifiers for records created
// locally before the backend has seen them, such as pending event
// reminders. IDs are UUIDv7, so rows sort by creation time in the local
// store.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready-to-use generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string. When the randomness source fails
// a random v4 is returned instead; an ID is always produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
