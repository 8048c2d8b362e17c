package port

import "context"

// IdleInhibitor keeps the display from blanking while the kiosk runs.
// Inhibit and Uninhibit are refcounted; Close releases everything.
type IdleInhibitor interface {
	Inhibit(ctx context.Context, reason string) error
	Uninhibit(ctx context.Context) error
	IsInhibited() bool
	Close() error
}
