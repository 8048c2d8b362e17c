package bootstrap

import (
	"github.com/joho/godotenv"
)

// envFiles are read from the working directory, first match wins per key.
var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads provisioning variables (KIOSK_*) from .env files.
// Variables already set in the environment are not overwritten.
// It returns the files that were loaded.
func LoadEnvFiles() []string {
	var loaded []string
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	return loaded
}
