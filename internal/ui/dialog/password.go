// Package dialog provides the modal windows of the kiosk shell.
package dialog

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// IncorrectPasswordMessage is shown inline after a rejected attempt.
const IncorrectPasswordMessage = "Incorrect password"

// PasswordDialog asks for the kiosk password in a modal window.
type PasswordDialog struct {
	parent *gtk.Window
	active bool
}

var _ port.PasswordPrompter = (*PasswordDialog)(nil)

// NewPasswordDialog creates a prompter whose windows are modal over parent.
func NewPasswordDialog(parent *gtk.Window) *PasswordDialog {
	return &PasswordDialog{parent: parent}
}

// PromptTitle returns the heading shown for reason.
func PromptTitle(reason port.AuthReason) string {
	switch reason {
	case port.AuthReasonSettings:
		return "Enter password to open settings"
	case port.AuthReasonClose:
		return "Enter password to close the application"
	default:
		return "Enter password"
	}
}

// PromptPassword implements port.PasswordPrompter. Only one prompt can be
// open; a second request is refused.
func (d *PasswordDialog) PromptPassword(ctx context.Context, reason port.AuthReason, validate func(string) bool, done func(bool)) {
	log := logging.FromContext(ctx)
	if d.active {
		log.Debug().Str("reason", string(reason)).Msg("password prompt already open")
		done(false)
		return
	}
	d.active = true

	win := newModal(d.parent, "Password")

	body := gtk.NewBox(gtk.OrientationVertical, 10)
	body.AddCSSClass("dialog-body")

	title := gtk.NewLabel(PromptTitle(reason))
	title.AddCSSClass("dialog-title")

	entry := gtk.NewPasswordEntry()
	entry.SetShowPeekIcon(true)

	errLabel := gtk.NewLabel(IncorrectPasswordMessage)
	errLabel.AddCSSClass("dialog-error")
	errLabel.SetVisible(false)

	ok := gtk.NewButtonWithLabel("OK")
	ok.AddCSSClass("suggested-action")
	cancel := gtk.NewButtonWithLabel("Cancel")

	buttons := gtk.NewBox(gtk.OrientationHorizontal, 8)
	buttons.SetHAlign(gtk.AlignEnd)
	buttons.Append(cancel)
	buttons.Append(ok)

	body.Append(title)
	body.Append(entry)
	body.Append(errLabel)
	body.Append(buttons)
	win.SetChild(body)

	finished := false
	finish := func(granted bool) {
		if finished {
			return
		}
		finished = true
		d.active = false
		win.Destroy()
		done(granted)
	}

	submit := func() {
		if validate(entry.Text()) {
			finish(true)
			return
		}
		errLabel.SetVisible(true)
		entry.SetText("")
		entry.GrabFocus()
	}

	ok.ConnectClicked(submit)
	entry.ConnectActivate(submit)
	cancel.ConnectClicked(func() { finish(false) })
	onEscape(win, func() { finish(false) })
	win.ConnectCloseRequest(func() bool {
		finish(false)
		return false
	})

	win.Present()
	entry.GrabFocus()
}

func newModal(parent *gtk.Window, title string) *gtk.Window {
	win := gtk.NewWindow()
	win.SetTitle(title)
	win.AddCSSClass("kiosk-dialog")
	win.SetModal(true)
	win.SetResizable(false)
	win.SetDecorated(false)
	if parent != nil {
		win.SetTransientFor(parent)
	}
	return win
}

func onEscape(win *gtk.Window, fn func()) {
	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval == gdk.KEY_Escape {
			fn()
			return true
		}
		return false
	})
	win.AddController(keys)
}
