// Package webkit adapts WebKitGTK 6 (through gotk4) to the application ports.
// Every method must be called on the GTK main thread.
package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

var (
	ErrWebViewNotInitialized = errors.New("webkit: WebView not initialized")
	ErrWebViewDestroyed      = errors.New("webkit: WebView destroyed")
)

var viewIDCounter atomic.Uint64

// WebView wraps a WebKitGTK WebView and implements port.WebView.
type WebView struct {
	inner *webkit.WebView
	ucm   *webkit.UserContentManager
	id    port.WebViewID

	callbacks *port.WebViewCallbacks
	handles   []coreglib.SignalHandle
	ucmHandle coreglib.SignalHandle
	destroyed bool

	popups       *popupWindows
	scriptPopups map[string]*gtk.Window // interceptor stub key to popup window
	ctx          context.Context
	logger       zerolog.Logger
}

var _ port.WebView = (*WebView)(nil)

func newWebView(ctx context.Context, inner *webkit.WebView, popups *popupWindows) *WebView {
	id := port.WebViewID(viewIDCounter.Add(1))
	wv := &WebView{
		inner:        inner,
		id:           id,
		popups:       popups,
		scriptPopups: make(map[string]*gtk.Window),
		ctx:          ctx,
		logger:       logging.FromContext(ctx).With().
			Str("component", "webview").
			Uint64("webview_id", uint64(id)).
			Logger(),
	}
	wv.applySettings()
	wv.injectInterceptor()
	wv.connectSignals()
	return wv
}

func (wv *WebView) applySettings() {
	settings := wv.inner.Settings()
	if settings == nil {
		wv.logger.Warn().Msg("webview settings unavailable")
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetEnableDeveloperExtras(false)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
}

func (wv *WebView) injectInterceptor() {
	ucm := wv.inner.UserContentManager()
	if ucm == nil {
		wv.logger.Warn().Msg("user content manager is nil, popups will use the create signal only")
		return
	}
	wv.ucm = ucm

	ucm.AddScript(webkit.NewUserScript(
		interceptorScript,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentStart,
		nil,
		nil,
	))

	// Connect before registering so no early message is lost.
	wv.ucmHandle = ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil {
			return
		}
		wv.handleScriptMessage(value.ToString())
	})
	if !ucm.RegisterScriptMessageHandler(MessageHandlerName, "") {
		wv.logger.Warn().Str("handler", MessageHandlerName).Msg("failed to register script message handler")
	}
}

func (wv *WebView) connectSignals() {
	wv.handles = append(wv.handles, wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		cb := wv.callbacks
		if cb == nil || cb.OnLoadChanged == nil {
			return
		}
		switch event {
		case webkit.LoadStarted:
			cb.OnLoadChanged(port.LoadStarted)
		case webkit.LoadRedirected:
			cb.OnLoadChanged(port.LoadRedirected)
		case webkit.LoadCommitted:
			cb.OnLoadChanged(port.LoadCommitted)
		case webkit.LoadFinished:
			cb.OnLoadChanged(port.LoadFinished)
		}
	}))

	wv.handles = append(wv.handles, wv.inner.Connect("notify::title", func() {
		if cb := wv.callbacks; cb != nil && cb.OnTitleChanged != nil {
			cb.OnTitleChanged(wv.inner.Title())
		}
	}))

	// A URI change outside of a load is a same-document navigation.
	wv.handles = append(wv.handles, wv.inner.Connect("notify::uri", func() {
		if cb := wv.callbacks; cb != nil && cb.OnURIChanged != nil {
			cb.OnURIChanged(wv.inner.URI(), !wv.inner.IsLoading())
		}
	}))

	wv.handles = append(wv.handles, wv.inner.ConnectCreate(func(action *webkit.NavigationAction) gtk.Widgetter {
		if action == nil {
			return nil
		}
		var uri string
		if req := action.Request(); req != nil {
			uri = req.URI()
		}
		intent := intentFromNative(
			uri,
			action.FrameName(),
			action.NavigationType() == webkit.NavigationTypeLinkClicked,
			action.IsUserGesture(),
		)
		if !wv.requestNewWindow(intent) {
			return nil
		}
		related := wv.popups.relatedView(wv.ctx, wv.inner, intent)
		if related == nil {
			return nil
		}
		return related
	}))
}

func (wv *WebView) handleScriptMessage(raw string) {
	if wv.destroyed {
		return
	}
	msg, err := decodeMessage(raw)
	if err != nil {
		wv.logger.Debug().Err(err).Msg("ignoring script message")
		return
	}

	switch msg.Type {
	case messageDOMReady:
		if cb := wv.callbacks; cb != nil && cb.OnDOMReady != nil {
			cb.OnDOMReady()
		}
	case messageWindowOpen:
		intent := intentFromScript(msg)
		if !wv.requestNewWindow(intent) {
			wv.notifyPopupClosed(msg.Popup)
			return
		}
		key := msg.Popup
		win := wv.popups.open(wv.ctx, wv.inner, intent, func() {
			delete(wv.scriptPopups, key)
			wv.notifyPopupClosed(key)
		})
		if win == nil {
			wv.notifyPopupClosed(key)
			return
		}
		if key != "" {
			wv.scriptPopups[key] = win
		}
	case messagePopupClose:
		if win, ok := wv.scriptPopups[msg.Popup]; ok {
			wv.popups.close(win)
		}
	default:
		wv.logger.Debug().Str("type", msg.Type).Msg("unknown script message type")
	}
}

// notifyPopupClosed flips the opener page's stub for key to closed.
func (wv *WebView) notifyPopupClosed(key string) {
	if key == "" || wv.destroyed {
		return
	}
	wv.EvaluateScript(wv.ctx, popupClosedScript(key), func(_ string, err error) {
		if err != nil {
			wv.logger.Debug().Err(err).Str("popup", key).Msg("failed to mark popup stub closed")
		}
	})
}

func (wv *WebView) requestNewWindow(intent entity.NavigationIntent) bool {
	cb := wv.callbacks
	if wv.destroyed || cb == nil || cb.OnNewWindow == nil {
		return false
	}
	return cb.OnNewWindow(intent)
}

// ID returns the unique identifier for this WebView.
func (wv *WebView) ID() port.WebViewID {
	return wv.id
}

// Widget returns the underlying webkit.WebView for GTK embedding.
func (wv *WebView) Widget() *webkit.WebView {
	return wv.inner
}

// LoadURI loads the given URI.
func (wv *WebView) LoadURI(ctx context.Context, uri string) error {
	if wv.destroyed {
		return fmt.Errorf("webview %d: %w", wv.id, ErrWebViewDestroyed)
	}
	wv.inner.LoadURI(uri)
	logging.FromContext(ctx).Debug().Str("uri", uri).Uint64("webview_id", uint64(wv.id)).Msg("loading URI")
	return nil
}

// Reload reloads the current page.
func (wv *WebView) Reload(_ context.Context) error {
	if wv.destroyed {
		return fmt.Errorf("webview %d: %w", wv.id, ErrWebViewDestroyed)
	}
	wv.inner.Reload()
	return nil
}

// GoBack navigates back in history.
func (wv *WebView) GoBack(_ context.Context) error {
	if wv.destroyed {
		return fmt.Errorf("webview %d: %w", wv.id, ErrWebViewDestroyed)
	}
	wv.inner.GoBack()
	return nil
}

// GoForward navigates forward in history.
func (wv *WebView) GoForward(_ context.Context) error {
	if wv.destroyed {
		return fmt.Errorf("webview %d: %w", wv.id, ErrWebViewDestroyed)
	}
	wv.inner.GoForward()
	return nil
}

func (wv *WebView) URI() string {
	if wv.destroyed {
		return ""
	}
	return wv.inner.URI()
}

func (wv *WebView) Title() string {
	if wv.destroyed {
		return ""
	}
	return wv.inner.Title()
}

func (wv *WebView) IsLoading() bool {
	return !wv.destroyed && wv.inner.IsLoading()
}

func (wv *WebView) CanGoBack() bool {
	return !wv.destroyed && wv.inner.CanGoBack()
}

func (wv *WebView) CanGoForward() bool {
	return !wv.destroyed && wv.inner.CanGoForward()
}

// SetVisible shows or hides the view.
func (wv *WebView) SetVisible(visible bool) {
	if wv.destroyed {
		return
	}
	wv.inner.SetVisible(visible)
	if visible {
		wv.inner.GrabFocus()
	}
}

// SetCallbacks replaces the event handlers. Signals stay connected for the
// lifetime of the view and dispatch to whatever is registered.
func (wv *WebView) SetCallbacks(callbacks *port.WebViewCallbacks) {
	wv.callbacks = callbacks
}

// EvaluateScript runs script in the main world and reports its value as a
// string. Undefined and null results are reported as "".
func (wv *WebView) EvaluateScript(ctx context.Context, script string, done port.ScriptCallback) {
	if wv.destroyed {
		done("", fmt.Errorf("webview %d: %w", wv.id, ErrWebViewDestroyed))
		return
	}
	inner := wv.inner
	inner.EvaluateJavascript(ctx, script, -1, "", "", func(res gio.AsyncResulter) {
		value, err := inner.EvaluateJavascriptFinish(res)
		if err != nil {
			done("", err)
			return
		}
		if value == nil || value.IsUndefined() || value.IsNull() {
			done("", nil)
			return
		}
		done(value.ToString(), nil)
	})
}

func (wv *WebView) IsDestroyed() bool {
	return wv.destroyed
}

// Destroy disconnects every signal, unregisters the message handler and
// stops any load. The widget itself is released once its parent drops it.
func (wv *WebView) Destroy() {
	if wv.destroyed {
		return
	}
	wv.destroyed = true
	wv.callbacks = nil

	for _, h := range wv.handles {
		wv.inner.HandlerDisconnect(h)
	}
	wv.handles = nil

	if wv.ucm != nil {
		wv.ucm.HandlerDisconnect(wv.ucmHandle)
		wv.ucm.UnregisterScriptMessageHandler(MessageHandlerName, "")
		wv.ucm.RemoveAllScripts()
	}
	wv.inner.StopLoading()

	wv.logger.Debug().Msg("webview destroyed")
}
