package component

import (
	"context"
	"time"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// ToastLevel indicates the visual style of a toast notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

func (l ToastLevel) cssClass() string {
	switch l {
	case ToastSuccess:
		return "toast-success"
	case ToastError:
		return "toast-error"
	default:
		return "toast-info"
	}
}

// Toaster displays one toast at a time in an overlay. A new message while
// one is visible replaces the text and restarts the dismiss timer.
type Toaster struct {
	container *gtk.Box
	label     *gtk.Label
	scheduler port.Scheduler
	level     ToastLevel
	dismiss   port.Timer
}

var _ port.Notifier = (*Toaster)(nil)

// NewToaster creates a hidden toaster positioned at the bottom center.
func NewToaster(scheduler port.Scheduler) *Toaster {
	container := gtk.NewBox(gtk.OrientationHorizontal, 0)
	container.AddCSSClass("toast")
	container.AddCSSClass(ToastInfo.cssClass())
	container.SetHAlign(gtk.AlignCenter)
	container.SetVAlign(gtk.AlignEnd)
	// Clicks pass through to the page.
	container.SetCanTarget(false)
	container.SetCanFocus(false)
	container.SetVisible(false)

	label := gtk.NewLabel("")
	label.SetWrap(true)
	container.Append(label)

	return &Toaster{
		container: container,
		label:     label,
		scheduler: scheduler,
		level:     ToastInfo,
	}
}

// Show implements port.Notifier.
func (t *Toaster) Show(ctx context.Context, message string, duration time.Duration) {
	t.ShowLevel(ctx, message, ToastInfo, duration)
}

// ShowLevel displays message styled for level. A non-positive duration
// keeps the toast until Hide.
func (t *Toaster) ShowLevel(ctx context.Context, message string, level ToastLevel, duration time.Duration) {
	if t.level != level {
		t.container.RemoveCSSClass(t.level.cssClass())
		t.container.AddCSSClass(level.cssClass())
		t.level = level
	}
	t.label.SetText(message)

	if t.dismiss != nil {
		t.dismiss.Stop()
		t.dismiss = nil
	}
	t.container.SetVisible(true)

	if duration > 0 {
		t.dismiss = t.scheduler.AfterFunc(duration, func() {
			t.dismiss = nil
			t.container.SetVisible(false)
		})
	}

	logging.FromContext(ctx).Debug().
		Str("toast_message", message).
		Dur("duration", duration).
		Msg("toast shown")
}

// Hide dismisses the toast.
func (t *Toaster) Hide() {
	if t.dismiss != nil {
		t.dismiss.Stop()
		t.dismiss = nil
	}
	t.container.SetVisible(false)
}

// IsVisible returns whether a toast is shown.
func (t *Toaster) IsVisible() bool {
	return t.container.IsVisible()
}

// Widget returns the overlay child.
func (t *Toaster) Widget() gtk.Widgetter {
	return t.container
}
