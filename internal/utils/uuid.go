package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 so trace ids sort by request
// start. It falls back to a random UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
