package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/domain/popup"
	"github.com/bnema/kiosk/internal/logging"
)

const (
	defaultPopupWidth  = 800
	defaultPopupHeight = 600
)

// popupWindows hosts allowed popups in transient windows above the kiosk
// window. Popup views share the opener's web process and session through
// the related-view property, which keeps window.opener working for OAuth.
type popupWindows struct {
	parent *gtk.Window
	// windows maps each open popup to the callback run when it goes away.
	windows map[*gtk.Window]func()
}

func newPopupWindows(parent *gtk.Window) *popupWindows {
	return &popupWindows{
		parent:  parent,
		windows: make(map[*gtk.Window]func()),
	}
}

// relatedView creates the view WebKit asked for in its create signal.
// WebKit loads the request itself and emits ready-to-show.
func (p *popupWindows) relatedView(ctx context.Context, opener *webkit.WebView, intent entity.NavigationIntent) *webkit.WebView {
	view := newRelatedWebView(opener)
	if view == nil {
		logging.FromContext(ctx).Warn().Str("url", intent.URL).Msg("failed to create related popup view")
		return nil
	}
	win := p.wrap(ctx, view, intent, nil)
	view.ConnectReadyToShow(func() {
		win.Present()
	})
	return view
}

// open shows a popup for an intercepted window.open call. onClosed runs
// once when the window goes away, except on CloseAll.
func (p *popupWindows) open(ctx context.Context, opener *webkit.WebView, intent entity.NavigationIntent, onClosed func()) *gtk.Window {
	view := newRelatedWebView(opener)
	if view == nil {
		logging.FromContext(ctx).Warn().Str("url", intent.URL).Msg("failed to create popup view")
		return nil
	}
	win := p.wrap(ctx, view, intent, onClosed)
	if intent.URL != "" {
		view.LoadURI(intent.URL)
	}
	win.Present()
	return win
}

func (p *popupWindows) wrap(ctx context.Context, view *webkit.WebView, intent entity.NavigationIntent, onClosed func()) *gtk.Window {
	width, height := defaultPopupWidth, defaultPopupHeight
	features := popup.ParseWindowFeatures(intent.WindowFeatures)
	if w, ok := features.Width(); ok && w > 0 {
		width = w
	}
	if h, ok := features.Height(); ok && h > 0 {
		height = h
	}

	win := gtk.NewWindow()
	win.SetTitle(intent.URL)
	win.SetDefaultSize(width, height)
	if p.parent != nil {
		win.SetTransientFor(p.parent)
		win.SetModal(true)
	}
	view.SetHExpand(true)
	view.SetVExpand(true)
	win.SetChild(view)

	view.Connect("notify::title", func() {
		if title := view.Title(); title != "" {
			win.SetTitle(title)
		}
	})
	// window.close() from the popup page. Destroy does not emit
	// close-request, so the window is forgotten here as well.
	view.ConnectClose(func() {
		p.close(win)
	})
	win.ConnectCloseRequest(func() bool {
		p.forget(win)
		return false
	})
	p.track(win, onClosed)

	logging.FromContext(ctx).Info().
		Str("url", intent.URL).
		Str("source", string(intent.Source)).
		Int("width", width).
		Int("height", height).
		Msg("opening popup window")
	return win
}

func (p *popupWindows) track(win *gtk.Window, onClosed func()) {
	p.windows[win] = onClosed
}

// forget drops win and reports whether it was still tracked. The window's
// close callback runs on the first call only.
func (p *popupWindows) forget(win *gtk.Window) bool {
	onClosed, ok := p.windows[win]
	if !ok {
		return false
	}
	delete(p.windows, win)
	if onClosed != nil {
		onClosed()
	}
	return true
}

// close destroys a tracked popup window.
func (p *popupWindows) close(win *gtk.Window) {
	if p.forget(win) {
		win.Destroy()
	}
}

// CloseAll destroys every open popup window.
func (p *popupWindows) CloseAll() {
	windows := p.windows
	p.windows = make(map[*gtk.Window]func())
	for win := range windows {
		win.Destroy()
	}
}

// newRelatedWebView builds a WebView with related-view set at construction,
// the only point at which WebKitGTK 6 accepts it.
func newRelatedWebView(opener *webkit.WebView) *webkit.WebView {
	if opener == nil {
		return webkit.NewWebView()
	}
	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"related-view": coreglib.InternObject(opener),
	})
	if obj == nil {
		return nil
	}
	view, ok := obj.Cast().(*webkit.WebView)
	if !ok {
		return nil
	}
	return view
}
