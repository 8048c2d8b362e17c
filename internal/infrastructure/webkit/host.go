package webkit

import (
	"context"
	"fmt"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/logging"
)

// Host creates WebViews and stacks them inside the window's content area.
// Only the active view is visible; hidden views keep their state.
type Host struct {
	content *gtk.Box
	popups  *popupWindows
}

var _ port.WebViewHost = (*Host)(nil)

// NewHost builds a host placing views in content. Popup windows are made
// transient for parent.
func NewHost(content *gtk.Box, parent *gtk.Window) *Host {
	return &Host{
		content: content,
		popups:  newPopupWindows(parent),
	}
}

// Create makes a WebView that starts loading initialURL.
func (h *Host) Create(ctx context.Context, initialURL string) (port.WebView, error) {
	inner := webkit.NewWebView()
	if inner == nil {
		return nil, fmt.Errorf("create webview: %w", ErrWebViewNotInitialized)
	}
	inner.SetHExpand(true)
	inner.SetVExpand(true)
	inner.SetVisible(false)

	wv := newWebView(ctx, inner, h.popups)
	if initialURL != "" {
		if err := wv.LoadURI(ctx, initialURL); err != nil {
			wv.Destroy()
			return nil, err
		}
	}
	logging.FromContext(ctx).Debug().
		Uint64("webview_id", uint64(wv.ID())).
		Str("url", initialURL).
		Msg("webview created")
	return wv, nil
}

// Attach inserts the view into the content area.
func (h *Host) Attach(view port.WebView) {
	wv, ok := view.(*WebView)
	if !ok || wv.destroyed {
		return
	}
	h.content.Append(wv.inner)
}

// Detach removes the view from the content area.
func (h *Host) Detach(view port.WebView) {
	wv, ok := view.(*WebView)
	if !ok {
		return
	}
	if wv.inner.Parent() != nil {
		h.content.Remove(wv.inner)
	}
}

// ClosePopups destroys all transient popup windows.
func (h *Host) ClosePopups() {
	h.popups.CloseAll()
}
