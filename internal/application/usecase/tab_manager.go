package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/domain/popup"
	"github.com/bnema/kiosk/internal/logging"
)

// DefaultMaxTabs is the tab ceiling used when none is configured.
const DefaultMaxTabs = 3

// TabView is the render state of one entry in the tab strip.
type TabView struct {
	ID         entity.TabID
	Title      string
	FaviconURL string
	Active     bool
}

// NavState is the render state of the navigation bar.
type NavState struct {
	URL          string
	CanGoBack    bool
	CanGoForward bool
	// HasView is false while the active tab has no live view.
	HasView bool
}

// TabsSnapshot is published after every change that affects rendering.
type TabsSnapshot struct {
	Tabs      []TabView
	Nav       NavState
	CanAddTab bool
}

// TabManagerConfig holds the dependencies of a TabManager.
type TabManagerConfig struct {
	DefaultURL   string
	MaxTabs      int
	RefreshDelay time.Duration
	Host         port.WebViewHost
	Scheduler    port.Scheduler
}

// TabManager is the sole owner of the tab collection. It enforces the tab
// ceiling and the single-active invariant, and owns one WebViewController
// per tab that has been activated at least once.
//
// All methods must be called from the main thread.
type TabManager struct {
	tabs         *entity.TabList
	controllers  map[entity.TabID]*WebViewController
	nextID       entity.TabID
	defaultURL   string
	refreshDelay time.Duration
	host         port.WebViewHost
	scheduler    port.Scheduler
	onChange     func(TabsSnapshot)
}

// NewTabManager creates an empty tab manager. Call Start to open the first tab.
func NewTabManager(cfg TabManagerConfig) *TabManager {
	maxTabs := cfg.MaxTabs
	if maxTabs <= 0 {
		maxTabs = DefaultMaxTabs
	}
	return &TabManager{
		tabs:         entity.NewTabList(maxTabs),
		controllers:  make(map[entity.TabID]*WebViewController),
		defaultURL:   cfg.DefaultURL,
		refreshDelay: cfg.RefreshDelay,
		host:         cfg.Host,
		scheduler:    cfg.Scheduler,
	}
}

// SetOnChange registers the render callback.
func (tm *TabManager) SetOnChange(fn func(TabsSnapshot)) {
	tm.onChange = fn
}

// DefaultURL returns the URL used for new tabs.
func (tm *TabManager) DefaultURL() string {
	return tm.defaultURL
}

// MaxTabs returns the tab ceiling.
func (tm *TabManager) MaxTabs() int {
	return tm.tabs.MaxTabs
}

// Start opens the startup tab. initialURL falls back to the default URL.
func (tm *TabManager) Start(ctx context.Context, initialURL string) error {
	if tm.tabs.Count() > 0 {
		return nil
	}
	_, err := tm.AddTab(ctx, initialURL)
	return err
}

// AddTab appends a new active tab. At the ceiling it returns
// ErrCapacityExceeded and leaves the collection untouched.
func (tm *TabManager) AddTab(ctx context.Context, url string) (*entity.Tab, error) {
	log := logging.FromContext(ctx)

	if tm.tabs.IsFull() {
		log.Debug().Int("count", tm.tabs.Count()).Int("max", tm.tabs.MaxTabs).Msg("tab ceiling reached")
		return nil, fmt.Errorf("add tab: %w", entity.ErrCapacityExceeded)
	}
	if url == "" {
		url = tm.defaultURL
	}

	tab := entity.NewTab(tm.nextID, url)
	tm.nextID++
	for _, t := range tm.tabs.Tabs {
		t.Active = false
	}
	if err := tm.tabs.Append(tab); err != nil {
		return nil, fmt.Errorf("add tab: %w", err)
	}

	log.Info().Int64("tab_id", int64(tab.ID)).Str("url", url).Int("count", tm.tabs.Count()).Msg("tab created")

	out := *tab
	if err := tm.activate(ctx, tab); err != nil {
		return &out, err
	}
	out = *tab
	return &out, nil
}

// CloseTab removes a tab and releases its view. Unknown ids are ignored.
// Closing the last tab opens a fresh default tab; otherwise the tab to the
// left of the removed one becomes active.
func (tm *TabManager) CloseTab(ctx context.Context, id entity.TabID) {
	ctx = logging.WithTab(ctx, id)
	log := logging.FromContext(ctx)

	idx := tm.tabs.IndexOf(id)
	if idx < 0 {
		log.Debug().Err(entity.ErrTabNotFound).Msg("close ignored")
		return
	}

	if ctrl, ok := tm.controllers[id]; ok {
		ctrl.Destroy(ctx)
		delete(tm.controllers, id)
	}
	tab := tm.tabs.RemoveAt(idx)
	tab.State = entity.TabStateClosed
	tab.Active = false

	log.Info().Int("remaining", tm.tabs.Count()).Msg("tab closed")

	if tm.tabs.Count() == 0 {
		if _, err := tm.AddTab(ctx, tm.defaultURL); err != nil {
			log.Error().Err(err).Msg("failed to reopen default tab")
		}
		return
	}

	next := tm.tabs.Tabs[max(0, idx-1)]
	if err := tm.activate(ctx, next); err != nil {
		log.Error().Err(err).Msg("failed to activate tab after close")
	}
}

// ActivateTab makes a tab the visible one. Unknown or already active ids
// are a no-op and publish nothing.
func (tm *TabManager) ActivateTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(ctx)

	tab := tm.tabs.Find(id)
	if tab == nil {
		log.Debug().Err(entity.ErrTabNotFound).Int64("tab_id", int64(id)).Msg("activate ignored")
		return nil
	}
	if tab.Active {
		return nil
	}
	return tm.activate(ctx, tab)
}

func (tm *TabManager) activate(ctx context.Context, tab *entity.Tab) error {
	tm.tabs.SetActive(tab.ID)

	for id, ctrl := range tm.controllers {
		if id != tab.ID {
			ctrl.Hide()
		}
	}

	ctrl, err := tm.ensureController(ctx, tab)
	if err == nil {
		ctrl.Show()
	}

	logging.FromContext(ctx).Debug().Int64("tab_id", int64(tab.ID)).Msg("tab activated")
	tm.publish()
	return err
}

func (tm *TabManager) ensureController(ctx context.Context, tab *entity.Tab) (*WebViewController, error) {
	if ctrl, ok := tm.controllers[tab.ID]; ok {
		return ctrl, nil
	}
	if tm.host == nil {
		return nil, fmt.Errorf("create view for tab %d: %w", tab.ID, entity.ErrViewOperationFailed)
	}

	view, err := tm.host.Create(ctx, tab.URL)
	if err != nil {
		return nil, fmt.Errorf("create view for tab %d: %w", tab.ID, err)
	}
	tm.host.Attach(view)

	ctrl := NewWebViewController(tab.ID, view, tm.host, tm.scheduler, tm.refreshDelay)
	ctrl.Attach(ctx, tm.eventsFor(ctx, tab.ID), tm.metadataHandler(ctx, tab.ID))
	tm.controllers[tab.ID] = ctrl
	return ctrl, nil
}

func (tm *TabManager) eventsFor(ctx context.Context, id entity.TabID) ControllerEvents {
	ctx = logging.WithTab(ctx, id)
	return ControllerEvents{
		OnNavigated: func(url string) {
			tm.withTab(id, func(tab *entity.Tab, ctrl *WebViewController) {
				tab.URL = url
				ctrl.ScheduleRefresh(ctx)
				tm.publish()
			})
		},
		OnNavigatedInPage: func(url string) {
			tm.withTab(id, func(tab *entity.Tab, ctrl *WebViewController) {
				tab.URL = url
				ctrl.ScheduleRefresh(ctx)
				tm.publish()
			})
		},
		OnTitleChanged: func() {
			tm.withTab(id, func(_ *entity.Tab, ctrl *WebViewController) {
				ctrl.ScheduleRefresh(ctx)
			})
		},
		OnDOMReady: func() {
			tm.withTab(id, func(_ *entity.Tab, ctrl *WebViewController) {
				ctrl.ScheduleRefresh(ctx)
				tm.publish()
			})
		},
		OnLoadFinished: func() {
			tm.withTab(id, func(tab *entity.Tab, _ *WebViewController) {
				if tab.MarkReady() {
					logging.FromContext(ctx).Debug().Msg("tab ready")
				}
				tm.publish()
			})
		},
		OnNewWindowRequested: func(intent entity.NavigationIntent) bool {
			return tm.handleNewWindow(ctx, id, intent)
		},
	}
}

func (tm *TabManager) metadataHandler(ctx context.Context, id entity.TabID) func(Metadata) {
	return func(md Metadata) {
		tab := tm.tabs.Find(id)
		if tab == nil {
			logging.FromContext(ctx).Debug().Int64("tab_id", int64(id)).Msg("metadata for closed tab dropped")
			return
		}
		tab.Title = md.Title
		tab.FaviconURL = md.FaviconURL
		if md.URL != "" {
			tab.URL = md.URL
		}
		tm.publish()
	}
}

// withTab runs fn only while the tab and its controller are still live.
func (tm *TabManager) withTab(id entity.TabID, fn func(*entity.Tab, *WebViewController)) {
	tab := tm.tabs.Find(id)
	ctrl, ok := tm.controllers[id]
	if tab == nil || !ok || ctrl.IsDestroyed() {
		return
	}
	fn(tab, ctrl)
}

// handleNewWindow classifies a new-window request from tab id. Redirected
// intents are loaded in the active tab; the return value tells the view
// whether to let the popup open.
func (tm *TabManager) handleNewWindow(ctx context.Context, id entity.TabID, intent entity.NavigationIntent) bool {
	log := logging.FromContext(ctx)

	origin := ""
	if ctrl, ok := tm.controllers[id]; ok {
		origin = ctrl.CurrentURL()
	}
	decision := popup.Classify(intent, origin)

	log.Info().
		Str("url", intent.URL).
		Str("disposition", string(intent.Disposition)).
		Str("features", intent.WindowFeatures).
		Str("source", string(intent.Source)).
		Str("verdict", decision.Verdict.String()).
		Str("rule", string(decision.Rule)).
		Msg("new window request classified")

	if decision.Verdict == popup.Allow {
		return true
	}
	if intent.URL == "" {
		return false
	}
	if err := tm.LoadURL(ctx, intent.URL); err != nil {
		log.Warn().Err(err).Msg("failed to redirect new window into active tab")
	}
	return false
}

// ActiveTab returns a copy of the active tab.
func (tm *TabManager) ActiveTab() (*entity.Tab, error) {
	tab := tm.tabs.Active()
	if tab == nil {
		return nil, entity.ErrNoActiveTab
	}
	out := *tab
	return &out, nil
}

// Tabs returns copies of all tabs in display order.
func (tm *TabManager) Tabs() []entity.Tab {
	out := make([]entity.Tab, 0, tm.tabs.Count())
	for _, tab := range tm.tabs.Tabs {
		out = append(out, *tab)
	}
	return out
}

// Count returns the number of open tabs.
func (tm *TabManager) Count() int {
	return tm.tabs.Count()
}

func (tm *TabManager) activeController() (*WebViewController, error) {
	tab := tm.tabs.Active()
	if tab == nil {
		return nil, entity.ErrNoActiveTab
	}
	ctrl, ok := tm.controllers[tab.ID]
	if !ok || ctrl.IsDestroyed() {
		return nil, fmt.Errorf("tab %d has no view: %w", tab.ID, entity.ErrViewOperationFailed)
	}
	return ctrl, nil
}

// GoBack navigates the active view back when history allows it.
func (tm *TabManager) GoBack(ctx context.Context) error {
	ctrl, err := tm.activeController()
	if err != nil {
		return err
	}
	if !ctrl.CanGoBack() {
		return nil
	}
	return ctrl.GoBack(ctx)
}

// GoForward navigates the active view forward when history allows it.
func (tm *TabManager) GoForward(ctx context.Context) error {
	ctrl, err := tm.activeController()
	if err != nil {
		return err
	}
	if !ctrl.CanGoForward() {
		return nil
	}
	return ctrl.GoForward(ctx)
}

// Reload reloads the active view.
func (tm *TabManager) Reload(ctx context.Context) error {
	ctrl, err := tm.activeController()
	if err != nil {
		return err
	}
	return ctrl.Reload(ctx)
}

// LoadURL navigates the active view.
func (tm *TabManager) LoadURL(ctx context.Context, url string) error {
	ctrl, err := tm.activeController()
	if err != nil {
		return err
	}
	return ctrl.LoadURL(ctx, url)
}

// ReloadActive reloads the active view, e.g. after site data was wiped.
func (tm *TabManager) ReloadActive(ctx context.Context) {
	if err := tm.Reload(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("reload after clear skipped")
	}
}

// Refresh republishes the current state, e.g. after back/forward history changes.
func (tm *TabManager) Refresh() {
	tm.publish()
}

// Shutdown destroys every view. The manager must not be used afterwards.
func (tm *TabManager) Shutdown(ctx context.Context) {
	for id, ctrl := range tm.controllers {
		ctrl.Destroy(ctx)
		delete(tm.controllers, id)
	}
	logging.FromContext(ctx).Debug().Msg("tab manager shut down")
}

// Snapshot builds the current render state.
func (tm *TabManager) Snapshot() TabsSnapshot {
	snap := TabsSnapshot{
		Tabs:      make([]TabView, 0, tm.tabs.Count()),
		CanAddTab: !tm.tabs.IsFull(),
	}
	for _, tab := range tm.tabs.Tabs {
		snap.Tabs = append(snap.Tabs, TabView{
			ID:         tab.ID,
			Title:      tab.DisplayTitle(),
			FaviconURL: tab.FaviconURL,
			Active:     tab.Active,
		})
	}

	active := tm.tabs.Active()
	if active == nil {
		return snap
	}
	snap.Nav.URL = active.URL
	if ctrl, ok := tm.controllers[active.ID]; ok && !ctrl.IsDestroyed() {
		if url := ctrl.CurrentURL(); url != "" {
			snap.Nav.URL = url
		}
		snap.Nav.HasView = true
		snap.Nav.CanGoBack = ctrl.CanGoBack()
		snap.Nav.CanGoForward = ctrl.CanGoForward()
	}
	if snap.Nav.URL == "" {
		snap.Nav.URL = tm.defaultURL
	}
	return snap
}

func (tm *TabManager) publish() {
	if tm.onChange != nil {
		tm.onChange(tm.Snapshot())
	}
}
