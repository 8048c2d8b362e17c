// Package window builds the kiosk's single top-level window.
package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/component"
	"github.com/bnema/kiosk/internal/ui/coordinator"
	"github.com/bnema/kiosk/internal/ui/dialog"
	"github.com/bnema/kiosk/internal/ui/theme"
)

// Commands are the shell operations the window's widgets trigger.
type Commands interface {
	AddTab(ctx context.Context)
	CloseTab(ctx context.Context, id entity.TabID)
	ActivateTab(ctx context.Context, id entity.TabID)
	GoBack(ctx context.Context)
	GoForward(ctx context.Context)
	Reload(ctx context.Context)
	ClearAllData(ctx context.Context)
	OpenSettings(ctx context.Context)
	RequestClose(ctx context.Context)
}

// Options configures the window.
type Options struct {
	Title       string
	Fullscreen  bool
	AlwaysOnTop bool
	Width       int
	Height      int
}

// MainWindow is the undecorated kiosk window: nav bar, tab strip and the
// web content with a toast overlay.
type MainWindow struct {
	ctx    context.Context
	app    *gtk.Application
	window *gtk.ApplicationWindow

	navBar   *component.NavBar
	tabStrip *component.TabStrip
	content  *gtk.Box
	toaster  *component.Toaster
	settings *dialog.SettingsDialog
	password *dialog.PasswordDialog
	theme    *theme.Manager

	commands Commands
	quitting bool
}

var _ coordinator.View = (*MainWindow)(nil)

// New creates the window. Call Bind before presenting it.
func New(ctx context.Context, app *gtk.Application, opts Options, themes *theme.Manager, scheduler port.Scheduler) *MainWindow {
	log := logging.FromContext(ctx)

	w := &MainWindow{
		ctx:    ctx,
		app:    app,
		window: gtk.NewApplicationWindow(app),
		theme:  themes,
	}
	w.window.SetTitle(opts.Title)
	w.window.AddCSSClass("kiosk-window")
	w.window.SetDecorated(false)
	if opts.Width > 0 && opts.Height > 0 {
		w.window.SetDefaultSize(opts.Width, opts.Height)
	}
	if opts.Fullscreen {
		w.window.Fullscreen()
	}
	if opts.AlwaysOnTop {
		// GTK4 leaves stacking to the compositor.
		log.Debug().Msg("always_on_top requested, not supported by GTK4; rely on the compositor")
	}

	w.navBar = component.NewNavBar(component.NavBarActions{
		OnBack:         w.run(func(c Commands) { c.GoBack(ctx) }),
		OnForward:      w.run(func(c Commands) { c.GoForward(ctx) }),
		OnReload:       w.run(func(c Commands) { c.Reload(ctx) }),
		OnClearData:    w.run(func(c Commands) { c.ClearAllData(ctx) }),
		OnSettings:     w.run(func(c Commands) { c.OpenSettings(ctx) }),
		OnCloseRequest: w.run(func(c Commands) { c.RequestClose(ctx) }),
	})
	w.tabStrip = component.NewTabStrip(component.TabStripActions{
		OnActivate: func(id entity.TabID) {
			if w.commands != nil {
				w.commands.ActivateTab(ctx, id)
			}
		},
		OnClose: func(id entity.TabID) {
			if w.commands != nil {
				w.commands.CloseTab(ctx, id)
			}
		},
		OnNewTab: w.run(func(c Commands) { c.AddTab(ctx) }),
	})

	w.content = gtk.NewBox(gtk.OrientationVertical, 0)
	w.content.SetHExpand(true)
	w.content.SetVExpand(true)

	w.toaster = component.NewToaster(scheduler)

	overlay := gtk.NewOverlay()
	overlay.SetChild(w.content)
	overlay.AddOverlay(w.toaster.Widget())

	root := gtk.NewBox(gtk.OrientationVertical, 0)
	root.Append(w.navBar.Widget())
	root.Append(w.tabStrip.Widget())
	root.Append(overlay)
	w.window.SetChild(root)

	w.settings = dialog.NewSettingsDialog(&w.window.Window)
	w.password = dialog.NewPasswordDialog(&w.window.Window)

	// Closing the window goes through the password gate like the menu entry.
	w.window.ConnectCloseRequest(func() bool {
		if w.quitting {
			return false
		}
		if w.commands != nil {
			w.commands.RequestClose(ctx)
		}
		return true
	})

	log.Debug().
		Bool("fullscreen", opts.Fullscreen).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("main window created")
	return w
}

func (w *MainWindow) run(fn func(Commands)) func() {
	return func() {
		if w.commands != nil {
			fn(w.commands)
		}
	}
}

// Bind connects the widgets to the shell commands.
func (w *MainWindow) Bind(commands Commands) {
	w.commands = commands
}

// Present shows the window.
func (w *MainWindow) Present() {
	w.window.Present()
}

// Window returns the GTK window, used as parent for popups and dialogs.
func (w *MainWindow) Window() *gtk.Window {
	return &w.window.Window
}

// Content returns the box hosting web views.
func (w *MainWindow) Content() *gtk.Box {
	return w.content
}

// Toaster returns the notifier overlay.
func (w *MainWindow) Toaster() *component.Toaster {
	return w.toaster
}

// PasswordPrompter returns the password dialog.
func (w *MainWindow) PasswordPrompter() port.PasswordPrompter {
	return w.password
}

// RenderTabs implements coordinator.View.
func (w *MainWindow) RenderTabs(items []coordinator.TabItem, canAddTab bool) {
	w.tabStrip.Render(items, canAddTab)
}

// RenderNav implements coordinator.View.
func (w *MainWindow) RenderNav(nav coordinator.NavModel) {
	w.navBar.SetURL(nav.URL)
	w.navBar.SetNavigation(nav.CanGoBack, nav.CanGoForward, nav.CanReload)
}

// ApplyTheme implements coordinator.View.
func (w *MainWindow) ApplyTheme(t entity.Theme) {
	w.theme.SetTheme(w.ctx, t, w.window.Display())
}

// ShowSettings implements coordinator.View.
func (w *MainWindow) ShowSettings(ctx context.Context, current entity.Theme, onTheme func(entity.Theme)) {
	w.settings.Show(ctx, current, onTheme)
}

// Quit implements coordinator.View.
func (w *MainWindow) Quit() {
	w.quitting = true
	w.window.Destroy()
	w.app.Quit()
}
