package port

import (
	"context"
	"time"
)

// Notifier shows transient messages to the user.
type Notifier interface {
	Show(ctx context.Context, message string, duration time.Duration)
}
