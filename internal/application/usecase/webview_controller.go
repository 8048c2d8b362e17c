package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// DefaultRefreshDelay coalesces bursts of lifecycle events into one metadata refresh.
const DefaultRefreshDelay = 100 * time.Millisecond

const (
	titleScript   = `document.title`
	faviconScript = `(() => {
	const link = document.querySelector('link[rel~="icon"]');
	return link ? link.href : '';
})()`
)

// ControllerEvents are the lifecycle events a controller forwards to its owner.
type ControllerEvents struct {
	OnNavigated          func(url string)
	OnNavigatedInPage    func(url string)
	OnTitleChanged       func()
	OnDOMReady           func()
	OnLoadFinished       func()
	OnNewWindowRequested func(intent entity.NavigationIntent) bool
}

// Metadata is the result of a title/favicon refresh.
type Metadata struct {
	Title      string
	FaviconURL string
	URL        string
}

// WebViewController adapts one embedded view to what the tab manager needs.
// It owns the view: listeners, the pending refresh timer and the view itself
// are released by Destroy.
type WebViewController struct {
	tabID        entity.TabID
	view         port.WebView
	host         port.WebViewHost
	scheduler    port.Scheduler
	refreshDelay time.Duration

	attached   bool
	destroyed  bool
	pending    port.Timer
	generation uint64
	onMetadata func(Metadata)
}

// NewWebViewController wraps view for the given tab.
func NewWebViewController(
	tabID entity.TabID,
	view port.WebView,
	host port.WebViewHost,
	scheduler port.Scheduler,
	refreshDelay time.Duration,
) *WebViewController {
	if refreshDelay <= 0 {
		refreshDelay = DefaultRefreshDelay
	}
	return &WebViewController{
		tabID:        tabID,
		view:         view,
		host:         host,
		scheduler:    scheduler,
		refreshDelay: refreshDelay,
	}
}

// TabID returns the tab this controller belongs to.
func (c *WebViewController) TabID() entity.TabID {
	return c.tabID
}

// View returns the wrapped view.
func (c *WebViewController) View() port.WebView {
	return c.view
}

// IsDestroyed reports whether Destroy has run.
func (c *WebViewController) IsDestroyed() bool {
	return c.destroyed
}

// Attach registers listeners on the view. A second call is a no-op and
// returns false, so events are never delivered twice.
func (c *WebViewController) Attach(ctx context.Context, events ControllerEvents, onMetadata func(Metadata)) bool {
	if c.attached || c.destroyed {
		return false
	}
	c.attached = true
	c.onMetadata = onMetadata

	log := logging.FromContext(ctx)
	log.Debug().Int64("tab_id", int64(c.tabID)).Uint64("webview_id", uint64(c.view.ID())).Msg("attaching webview listeners")

	c.view.SetCallbacks(&port.WebViewCallbacks{
		OnLoadChanged: func(event port.LoadEvent) {
			switch event {
			case port.LoadCommitted:
				if events.OnNavigated != nil {
					events.OnNavigated(c.view.URI())
				}
			case port.LoadFinished:
				if events.OnLoadFinished != nil {
					events.OnLoadFinished()
				}
			}
		},
		OnURIChanged: func(uri string, inPage bool) {
			if inPage && events.OnNavigatedInPage != nil {
				events.OnNavigatedInPage(uri)
			}
		},
		OnTitleChanged: func(string) {
			if events.OnTitleChanged != nil {
				events.OnTitleChanged()
			}
		},
		OnDOMReady: func() {
			if events.OnDOMReady != nil {
				events.OnDOMReady()
			}
		},
		OnNewWindow: func(intent entity.NavigationIntent) bool {
			if events.OnNewWindowRequested == nil {
				return false
			}
			return events.OnNewWindowRequested(intent)
		},
	})
	return true
}

// ScheduleRefresh (re)starts the metadata refresh timer. Pending work is
// cancelled first, so a burst of calls results in one refresh. A refresh
// already waiting on scripts is superseded as well.
func (c *WebViewController) ScheduleRefresh(ctx context.Context) {
	if c.destroyed {
		return
	}
	c.generation++
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pending = c.scheduler.AfterFunc(c.refreshDelay, func() {
		c.pending = nil
		c.refresh(ctx)
	})
}

// HasPendingRefresh reports whether a refresh timer is armed.
func (c *WebViewController) HasPendingRefresh() bool {
	return c.pending != nil
}

func (c *WebViewController) refresh(ctx context.Context) {
	if c.destroyed {
		return
	}
	gen := c.generation
	log := logging.FromContext(ctx)

	var (
		title, favicon string
		remaining      = 2
	)
	complete := func() {
		remaining--
		if remaining > 0 {
			return
		}
		if c.destroyed || gen != c.generation {
			log.Debug().Int64("tab_id", int64(c.tabID)).Msg("dropping superseded metadata refresh")
			return
		}
		// Read the URL now rather than when the refresh started.
		url := c.view.URI()
		if title == "" {
			title = url
		}
		if c.onMetadata != nil {
			c.onMetadata(Metadata{Title: title, FaviconURL: favicon, URL: url})
		}
	}

	c.view.EvaluateScript(ctx, titleScript, func(result string, err error) {
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w: title: %w", entity.ErrScriptEvaluationFailed, err)).Msg("title query failed")
			result = ""
		}
		title = result
		complete()
	})
	c.view.EvaluateScript(ctx, faviconScript, func(result string, err error) {
		if err != nil {
			log.Debug().Err(fmt.Errorf("%w: favicon: %w", entity.ErrScriptEvaluationFailed, err)).Msg("favicon query failed")
			result = ""
		}
		favicon = result
		complete()
	})
}

// FaviconURL queries the document for its icon link. Any script failure
// yields an empty string.
func (c *WebViewController) FaviconURL(ctx context.Context, done func(string)) {
	if c.destroyed {
		done("")
		return
	}
	c.view.EvaluateScript(ctx, faviconScript, func(result string, err error) {
		if err != nil {
			done("")
			return
		}
		done(result)
	})
}

// CurrentURL returns the view's current URL.
func (c *WebViewController) CurrentURL() string {
	if c.destroyed {
		return ""
	}
	return c.view.URI()
}

// Title returns the view's current title.
func (c *WebViewController) Title() string {
	if c.destroyed {
		return ""
	}
	return c.view.Title()
}

// CanGoBack reports whether back navigation is possible.
func (c *WebViewController) CanGoBack() bool {
	return !c.destroyed && c.view.CanGoBack()
}

// CanGoForward reports whether forward navigation is possible.
func (c *WebViewController) CanGoForward() bool {
	return !c.destroyed && c.view.CanGoForward()
}

// GoBack navigates back in history.
func (c *WebViewController) GoBack(ctx context.Context) error {
	if c.destroyed {
		return fmt.Errorf("go back: %w", entity.ErrViewOperationFailed)
	}
	return c.view.GoBack(ctx)
}

// GoForward navigates forward in history.
func (c *WebViewController) GoForward(ctx context.Context) error {
	if c.destroyed {
		return fmt.Errorf("go forward: %w", entity.ErrViewOperationFailed)
	}
	return c.view.GoForward(ctx)
}

// Reload reloads the current page.
func (c *WebViewController) Reload(ctx context.Context) error {
	if c.destroyed {
		return fmt.Errorf("reload: %w", entity.ErrViewOperationFailed)
	}
	return c.view.Reload(ctx)
}

// LoadURL navigates the view.
func (c *WebViewController) LoadURL(ctx context.Context, url string) error {
	if c.destroyed {
		return fmt.Errorf("load %q: %w", url, entity.ErrViewOperationFailed)
	}
	return c.view.LoadURI(ctx, url)
}

// Show makes the view visible.
func (c *WebViewController) Show() {
	if !c.destroyed {
		c.view.SetVisible(true)
	}
}

// Hide makes the view invisible.
func (c *WebViewController) Hide() {
	if !c.destroyed {
		c.view.SetVisible(false)
	}
}

// Destroy cancels pending work, removes listeners, detaches and destroys the
// view. Calling it again does nothing.
func (c *WebViewController) Destroy(ctx context.Context) {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.generation++

	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	c.view.SetCallbacks(nil)
	c.attached = false
	c.onMetadata = nil

	if c.host != nil {
		c.host.Detach(c.view)
	}
	c.view.Destroy()

	logging.FromContext(ctx).Debug().Int64("tab_id", int64(c.tabID)).Msg("webview controller destroyed")
}
