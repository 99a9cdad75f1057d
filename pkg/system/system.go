package system

import "github.com/google/uuid"

// GenerateSessionID returns a fresh identifier for one conversion run.
func GenerateSessionID() string {
	return uuid.NewString()
}
