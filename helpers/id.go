package helpers

import (
	"crypto/rand"
	"fmt"
	"io"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MeasurementIDLength is the length of the ids handed out for stored
// measurements.
const MeasurementIDLength = 16

// GenerateID returns a random alphanumeric string of the given length,
// sourced from crypto/rand.
func GenerateID(length int) (string, error) {
	randomBytes := make([]byte, length)

	if _, err := io.ReadFull(rand.Reader, randomBytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	result := make([]byte, length)
	for i, b := range randomBytes {
		result[i] = charset[int(b)%len(charset)]
	}

	return string(result), nil
}

// NewMeasurementID returns a fresh id for a stored measurement.
func NewMeasurementID() (string, error) {
	return GenerateID(MeasurementIDLength)
}
