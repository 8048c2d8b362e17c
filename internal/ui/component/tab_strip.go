package component

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/ui/coordinator"
)

const (
	primaryButton = gdk.BUTTON_PRIMARY
	middleButton  = gdk.BUTTON_MIDDLE

	tabLabelChars = 24
)

// TabStripActions are the commands the tab strip can trigger.
type TabStripActions struct {
	OnActivate func(id entity.TabID)
	OnClose    func(id entity.TabID)
	OnNewTab   func()
}

// TabStrip renders the tab list and the new-tab button.
type TabStrip struct {
	container *gtk.Box
	tabs      *gtk.Box
	newTab    *gtk.Button
	buttons   []*tabButton
	actions   TabStripActions
}

// NewTabStrip creates an empty tab strip.
func NewTabStrip(actions TabStripActions) *TabStrip {
	ts := &TabStrip{
		container: gtk.NewBox(gtk.OrientationHorizontal, 0),
		tabs:      gtk.NewBox(gtk.OrientationHorizontal, 0),
		newTab:    gtk.NewButtonFromIconName("list-add-symbolic"),
		actions:   actions,
	}
	ts.container.AddCSSClass("tab-strip")
	ts.tabs.SetHExpand(true)

	ts.newTab.AddCSSClass("tab-new")
	ts.newTab.SetTooltipText("New tab")
	ts.newTab.SetFocusOnClick(false)
	ts.newTab.ConnectClicked(safe(actions.OnNewTab))

	ts.container.Append(ts.tabs)
	ts.container.Append(ts.newTab)
	return ts
}

// Render replaces the displayed tabs. The new-tab button is disabled at capacity.
func (ts *TabStrip) Render(items []coordinator.TabItem, canAddTab bool) {
	for _, b := range ts.buttons {
		ts.tabs.Remove(b.root)
	}
	ts.buttons = ts.buttons[:0]

	for _, item := range items {
		b := newTabButton(item, ts.actions)
		ts.buttons = append(ts.buttons, b)
		ts.tabs.Append(b.root)
	}
	ts.newTab.SetSensitive(canAddTab)
}

// Widget returns the root widget.
func (ts *TabStrip) Widget() gtk.Widgetter {
	return ts.container
}

type tabButton struct {
	root  *gtk.Box
	label *gtk.Label
}

func newTabButton(item coordinator.TabItem, actions TabStripActions) *tabButton {
	b := &tabButton{
		root:  gtk.NewBox(gtk.OrientationHorizontal, 6),
		label: gtk.NewLabel(item.Label),
	}
	b.root.AddCSSClass("tab-button")
	if item.Active {
		b.root.AddCSSClass("tab-button-active")
	}

	icon := gtk.NewImageFromIconName("web-browser-symbolic")
	if item.FaviconURL != "" {
		icon.SetTooltipText(item.FaviconURL)
	}

	b.label.AddCSSClass("tab-title")
	b.label.SetMaxWidthChars(tabLabelChars)
	b.label.SetEllipsize(pango.EllipsizeEnd)
	b.label.SetTooltipText(item.Label)

	closeBtn := gtk.NewButtonFromIconName("window-close-symbolic")
	closeBtn.AddCSSClass("tab-close")
	closeBtn.SetTooltipText("Close tab")
	closeBtn.SetFocusOnClick(false)
	id := item.ID
	closeBtn.ConnectClicked(func() {
		if actions.OnClose != nil {
			actions.OnClose(id)
		}
	})

	// Primary and middle clicks both activate; a middle click never opens anything.
	click := gtk.NewGestureClick()
	click.SetButton(0)
	click.ConnectPressed(func(_ int, _, _ float64) {
		switch click.CurrentButton() {
		case primaryButton, middleButton:
			click.SetState(gtk.EventSequenceClaimed)
			if actions.OnActivate != nil {
				actions.OnActivate(id)
			}
		}
	})
	b.root.AddController(click)

	b.root.Append(icon)
	b.root.Append(b.label)
	b.root.Append(closeBtn)
	return b
}
