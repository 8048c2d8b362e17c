// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, SQLite).
package port

import (
	"context"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// WebViewID uniquely identifies a WebView instance.
type WebViewID uint64

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// WebViewCallbacks defines callback handlers for WebView events.
// Implementations invoke these on the main thread.
type WebViewCallbacks struct {
	// OnLoadChanged is called when load state changes.
	OnLoadChanged func(event LoadEvent)
	// OnURIChanged is called whenever the URI changes, including in-page
	// (hash/history) navigation. inPage is true when no load is in progress.
	OnURIChanged func(uri string, inPage bool)
	// OnTitleChanged is called when the page title changes.
	OnTitleChanged func(title string)
	// OnDOMReady is called when the document has been parsed.
	OnDOMReady func()
	// OnNewWindow is called when the page asks for a new browsing context.
	// Return true to let the popup open, false to suppress it.
	OnNewWindow func(intent entity.NavigationIntent) bool
}

// ScriptCallback receives the string result of a page script, or an error.
type ScriptCallback func(result string, err error)

// ScriptEvaluator runs a script expression in the loaded document.
// The callback is invoked asynchronously on the main thread.
type ScriptEvaluator interface {
	EvaluateScript(ctx context.Context, script string, done ScriptCallback)
}

// WebView defines the port interface for one embedded browsing surface.
type WebView interface {
	ScriptEvaluator

	// ID returns the unique identifier for this WebView.
	ID() WebViewID

	// LoadURI navigates to the specified URI.
	LoadURI(ctx context.Context, uri string) error
	// Reload reloads the current page.
	Reload(ctx context.Context) error
	// GoBack navigates back in history.
	GoBack(ctx context.Context) error
	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error

	// URI returns the current URI.
	URI() string
	// Title returns the current page title.
	Title() string
	// IsLoading returns true if a page is currently loading.
	IsLoading() bool
	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool
	// CanGoForward returns true if forward navigation is available.
	CanGoForward() bool

	// SetVisible shows or hides the view.
	SetVisible(visible bool)

	// SetCallbacks registers callback handlers for WebView events.
	// Pass nil to clear all callbacks.
	SetCallbacks(callbacks *WebViewCallbacks)

	// IsDestroyed returns true if the WebView has been destroyed.
	IsDestroyed() bool
	// Destroy releases all resources associated with this WebView.
	Destroy()
}

// WebViewHost instantiates embedded views and places them in the window.
type WebViewHost interface {
	// Create makes a new view that starts loading initialURL.
	Create(ctx context.Context, initialURL string) (WebView, error)
	// Attach inserts the view into the content area.
	Attach(view WebView)
	// Detach removes the view from the content area.
	Detach(view WebView)
}

// WebsiteDataCleaner wipes cookies, caches and site storage.
type WebsiteDataCleaner interface {
	// ClearAll starts clearing and calls done on the main thread.
	ClearAll(ctx context.Context, done func(error))
}
