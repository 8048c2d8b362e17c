package logging

import "github.com/google/uuid"

// GenerateSessionID creates a unique identifier for one process run.
// Every log line of the run carries it as session_id.
func GenerateSessionID() string {
	return uuid.NewString()
}

// ShortSessionID returns the first block of a session ID for display.
// Example: "9b2f0c1e-..." -> "9b2f0c1e"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 8 {
		return sessionID
	}
	return sessionID[:8]
}
