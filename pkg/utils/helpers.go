package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GetStringOrDefault returns the value if not empty, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

// NormalizeFilename lowercases a filename and collapses spaces so extension
// checks and storage keys are stable.
func NormalizeFilename(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.Join(strings.Fields(name), "_")
}
