package port

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs callbacks later on the main thread.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// MainThread marshals work from background goroutines onto the UI thread.
type MainThread interface {
	Post(fn func())
}
