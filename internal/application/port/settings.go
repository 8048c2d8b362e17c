package port

import "context"

// SettingsStore persists a small key-value set across restarts.
type SettingsStore interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a value, replacing any previous one.
	Set(ctx context.Context, key, value string) error
}
