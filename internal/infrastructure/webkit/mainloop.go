package webkit

import (
	"time"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/kiosk/internal/application/port"
)

// MainLoop implements port.Scheduler and port.MainThread on the GLib
// default main context.
type MainLoop struct{}

var (
	_ port.Scheduler  = MainLoop{}
	_ port.MainThread = MainLoop{}
)

// AfterFunc runs fn on the main thread once d has elapsed.
func (MainLoop) AfterFunc(d time.Duration, fn func()) port.Timer {
	t := &glibTimer{}
	ms := uint(d / time.Millisecond)
	t.handle = coreglib.TimeoutAdd(ms, func() bool {
		if t.done {
			return false
		}
		t.done = true
		fn()
		return false
	})
	return t
}

// Post queues fn on the main thread. Safe from any goroutine.
func (MainLoop) Post(fn func()) {
	coreglib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// glibTimer is only touched from the main thread.
type glibTimer struct {
	handle coreglib.SourceHandle
	done   bool
}

func (t *glibTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	coreglib.SourceRemove(t.handle)
	return true
}
