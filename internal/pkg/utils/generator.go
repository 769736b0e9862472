package utils

import (
	"yuktah-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateEmergencyToken returns a fresh UUIDv4 string, 122 random bits of
// entropy in the canonical 36-character shape.
func GenerateEmergencyToken() string {
	return uuid.NewString()
}
