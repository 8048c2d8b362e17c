package dialog

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// themeChoices is the order of the theme selector.
var themeChoices = []entity.Theme{entity.ThemeLight, entity.ThemeDark}

var themeLabels = []string{"Light", "Dark"}

// ThemeIndex returns the selector position of theme.
func ThemeIndex(theme entity.Theme) uint {
	for i, t := range themeChoices {
		if t == theme {
			return uint(i)
		}
	}
	return ThemeIndex(entity.DefaultTheme)
}

// ThemeAt returns the theme at a selector position.
func ThemeAt(index uint) entity.Theme {
	if int(index) >= len(themeChoices) {
		return entity.DefaultTheme
	}
	return themeChoices[index]
}

// SettingsDialog shows the theme selector.
type SettingsDialog struct {
	parent *gtk.Window
	open   *gtk.Window
}

// NewSettingsDialog creates a settings dialog modal over parent.
func NewSettingsDialog(parent *gtk.Window) *SettingsDialog {
	return &SettingsDialog{parent: parent}
}

// Show opens the dialog. Every selection change calls onTheme immediately.
func (d *SettingsDialog) Show(ctx context.Context, current entity.Theme, onTheme func(entity.Theme)) {
	if d.open != nil {
		d.open.Present()
		return
	}

	win := newModal(d.parent, "Settings")
	d.open = win

	body := gtk.NewBox(gtk.OrientationVertical, 12)
	body.AddCSSClass("dialog-body")

	title := gtk.NewLabel("Settings")
	title.AddCSSClass("dialog-title")
	title.SetXAlign(0)

	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	rowLabel := gtk.NewLabel("Theme:")
	rowLabel.SetHExpand(true)
	rowLabel.SetXAlign(0)
	selector := gtk.NewDropDownFromStrings(themeLabels)
	selector.SetSelected(ThemeIndex(current))
	row.Append(rowLabel)
	row.Append(selector)

	closeBtn := gtk.NewButtonWithLabel("Close")
	closeBtn.SetHAlign(gtk.AlignEnd)

	body.Append(title)
	body.Append(row)
	body.Append(closeBtn)
	win.SetChild(body)

	selector.Connect("notify::selected", func() {
		theme := ThemeAt(selector.Selected())
		logging.FromContext(ctx).Debug().Str("theme", string(theme)).Msg("theme selected")
		if onTheme != nil {
			onTheme(theme)
		}
	})

	closeDialog := func() {
		if d.open == win {
			d.open = nil
		}
		win.Destroy()
	}
	closeBtn.ConnectClicked(closeDialog)
	onEscape(win, closeDialog)
	win.ConnectCloseRequest(func() bool {
		if d.open == win {
			d.open = nil
		}
		return false
	})

	win.Present()
}
