// Package component provides the GTK widgets of the kiosk shell.
package component

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
)

// NavBarActions are the commands the navigation bar can trigger.
type NavBarActions struct {
	OnBack         func()
	OnForward      func()
	OnReload       func()
	OnClearData    func()
	OnSettings     func()
	OnCloseRequest func()
}

// NavBar shows back/forward/reload, the read-only URL and the menu.
type NavBar struct {
	container *gtk.Box
	back      *gtk.Button
	forward   *gtk.Button
	reload    *gtk.Button
	url       *gtk.Label
	menu      *gtk.MenuButton
	popover   *gtk.Popover
}

// NewNavBar creates the navigation bar wired to actions.
func NewNavBar(actions NavBarActions) *NavBar {
	nb := &NavBar{
		container: gtk.NewBox(gtk.OrientationHorizontal, 4),
		back:      iconButton("go-previous-symbolic", "Back"),
		forward:   iconButton("go-next-symbolic", "Forward"),
		reload:    iconButton("view-refresh-symbolic", "Reload"),
		url:       gtk.NewLabel(""),
	}
	nb.container.AddCSSClass("nav-bar")

	nb.back.ConnectClicked(safe(actions.OnBack))
	nb.forward.ConnectClicked(safe(actions.OnForward))
	nb.reload.ConnectClicked(safe(actions.OnReload))

	// Read-only display: the kiosk never takes typed URLs.
	nb.url.AddCSSClass("url-display")
	nb.url.SetHExpand(true)
	nb.url.SetXAlign(0)
	nb.url.SetEllipsize(pango.EllipsizeEnd)
	nb.url.SetSelectable(false)

	nb.buildMenu(actions)

	nb.container.Append(nb.back)
	nb.container.Append(nb.forward)
	nb.container.Append(nb.reload)
	nb.container.Append(nb.url)
	nb.container.Append(nb.menu)
	return nb
}

func (nb *NavBar) buildMenu(actions NavBarActions) {
	items := gtk.NewBox(gtk.OrientationVertical, 2)

	entry := func(label string, fn func(), classes ...string) {
		btn := gtk.NewButtonWithLabel(label)
		btn.SetHasFrame(false)
		for _, c := range classes {
			btn.AddCSSClass(c)
		}
		btn.ConnectClicked(func() {
			nb.popover.Popdown()
			if fn != nil {
				fn()
			}
		})
		items.Append(btn)
	}
	entry("Settings", actions.OnSettings)
	entry("Clear all site data", actions.OnClearData)
	entry("Close application", actions.OnCloseRequest, "destructive")

	nb.popover = gtk.NewPopover()
	nb.popover.AddCSSClass("kiosk-menu")
	nb.popover.SetChild(items)

	nb.menu = gtk.NewMenuButton()
	nb.menu.SetIconName("open-menu-symbolic")
	nb.menu.SetTooltipText("Menu")
	nb.menu.SetPopover(nb.popover)
}

// SetURL updates the URL display.
func (nb *NavBar) SetURL(url string) {
	nb.url.SetText(url)
	nb.url.SetTooltipText(url)
}

// SetNavigation enables or disables the navigation buttons.
func (nb *NavBar) SetNavigation(canBack, canForward, canReload bool) {
	nb.back.SetSensitive(canBack)
	nb.forward.SetSensitive(canForward)
	nb.reload.SetSensitive(canReload)
}

// Widget returns the root widget.
func (nb *NavBar) Widget() gtk.Widgetter {
	return nb.container
}

func iconButton(icon, tooltip string) *gtk.Button {
	btn := gtk.NewButtonFromIconName(icon)
	btn.SetTooltipText(tooltip)
	// Keep keyboard focus in the page.
	btn.SetFocusOnClick(false)
	btn.SetCanFocus(false)
	return btn
}

func safe(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}
