// Package coordinator wires UI events to the tab manager and renders the
// resulting state back into the shell widgets.
package coordinator

import (
	"context"
	"errors"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

// MaxTabTitleLength is the longest label shown in the tab strip, ellipsis included.
const MaxTabTitleLength = 32

const ellipsis = "…"

// Tabs is the tab manager surface the shell drives.
type Tabs interface {
	Start(ctx context.Context, initialURL string) error
	AddTab(ctx context.Context, url string) (*entity.Tab, error)
	CloseTab(ctx context.Context, id entity.TabID)
	ActivateTab(ctx context.Context, id entity.TabID) error
	GoBack(ctx context.Context) error
	GoForward(ctx context.Context) error
	Reload(ctx context.Context) error
	Snapshot() usecase.TabsSnapshot
	SetOnChange(fn func(usecase.TabsSnapshot))
	Shutdown(ctx context.Context)
}

// DataClearer wipes site data and reports the outcome.
type DataClearer interface {
	Execute(ctx context.Context, done func(error))
}

// ThemeSettings loads and persists the shell theme.
type ThemeSettings interface {
	Load(ctx context.Context) (entity.Theme, error)
	Set(ctx context.Context, theme entity.Theme) error
}

// TabItem is one rendered entry of the tab strip.
type TabItem struct {
	ID         entity.TabID
	Label      string
	FaviconURL string
	Active     bool
}

// NavModel is the rendered state of the navigation bar.
type NavModel struct {
	URL          string
	CanGoBack    bool
	CanGoForward bool
	CanReload    bool
}

// View is everything the shell renders into.
type View interface {
	RenderTabs(items []TabItem, canAddTab bool)
	RenderNav(nav NavModel)
	ApplyTheme(theme entity.Theme)
	// ShowSettings opens the settings dialog. onTheme is called for every
	// theme change made in the dialog.
	ShowSettings(ctx context.Context, current entity.Theme, onTheme func(entity.Theme))
	Quit()
}

// ShellConfig holds the ShellCoordinator's collaborators.
type ShellConfig struct {
	Tabs       Tabs
	View       View
	Gate       port.AuthGate
	ClearData  DataClearer
	Theme      ThemeSettings
	InitialURL string
}

// ShellCoordinator translates shell commands into tab manager calls and
// renders every published snapshot.
type ShellCoordinator struct {
	tabs       Tabs
	view       View
	gate       port.AuthGate
	clearData  DataClearer
	theme      ThemeSettings
	initialURL string

	current entity.Theme
	closing bool
}

// NewShellCoordinator creates the coordinator. Call Start to open the first tab.
func NewShellCoordinator(cfg ShellConfig) *ShellCoordinator {
	return &ShellCoordinator{
		tabs:       cfg.Tabs,
		view:       cfg.View,
		gate:       cfg.Gate,
		clearData:  cfg.ClearData,
		theme:      cfg.Theme,
		initialURL: cfg.InitialURL,
		current:    entity.DefaultTheme,
	}
}

// Start applies the persisted theme, subscribes to tab snapshots and opens
// the initial tab.
func (c *ShellCoordinator) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)

	theme, err := c.theme.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("theme", string(theme)).Msg("failed to load theme, using fallback")
	}
	c.current = theme
	c.view.ApplyTheme(theme)

	c.tabs.SetOnChange(c.render)
	if err := c.tabs.Start(ctx, c.initialURL); err != nil {
		return err
	}
	c.render(c.tabs.Snapshot())
	return nil
}

// Theme returns the theme currently applied.
func (c *ShellCoordinator) Theme() entity.Theme {
	return c.current
}

// AddTab opens a tab on the default URL.
func (c *ShellCoordinator) AddTab(ctx context.Context) {
	if _, err := c.tabs.AddTab(ctx, ""); err != nil {
		if errors.Is(err, entity.ErrCapacityExceeded) {
			logging.FromContext(ctx).Debug().Err(err).Msg("new tab ignored")
			return
		}
		logging.FromContext(ctx).Error().Err(err).Msg("failed to open tab")
	}
}

// CloseTab closes the tab with the given id.
func (c *ShellCoordinator) CloseTab(ctx context.Context, id entity.TabID) {
	c.tabs.CloseTab(ctx, id)
}

// ActivateTab switches to the tab with the given id.
func (c *ShellCoordinator) ActivateTab(ctx context.Context, id entity.TabID) {
	if err := c.tabs.ActivateTab(ctx, id); err != nil {
		logging.FromContext(ctx).Error().Err(err).Int64("tab_id", int64(id)).Msg("failed to activate tab")
	}
}

// GoBack navigates the active tab back.
func (c *ShellCoordinator) GoBack(ctx context.Context) {
	c.navigate(ctx, "back", c.tabs.GoBack)
}

// GoForward navigates the active tab forward.
func (c *ShellCoordinator) GoForward(ctx context.Context) {
	c.navigate(ctx, "forward", c.tabs.GoForward)
}

// Reload reloads the active tab.
func (c *ShellCoordinator) Reload(ctx context.Context) {
	c.navigate(ctx, "reload", c.tabs.Reload)
}

func (c *ShellCoordinator) navigate(ctx context.Context, action string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("action", action).Msg("navigation unavailable")
	}
	c.render(c.tabs.Snapshot())
}

// ClearAllData wipes site data. It is not password-gated.
func (c *ShellCoordinator) ClearAllData(ctx context.Context) {
	c.clearData.Execute(ctx, nil)
}

// OpenSettings asks for the password, then shows the settings dialog.
func (c *ShellCoordinator) OpenSettings(ctx context.Context) {
	c.gate.Authorize(ctx, port.AuthReasonSettings, func(granted bool) {
		if !granted {
			logging.FromContext(ctx).Debug().Msg("settings access not granted")
			return
		}
		c.view.ShowSettings(ctx, c.current, func(theme entity.Theme) {
			if err := c.SetTheme(ctx, theme); err != nil {
				logging.FromContext(ctx).Error().Err(err).Str("theme", string(theme)).Msg("failed to set theme")
			}
		})
	})
}

// RequestClose asks for the password, then quits.
func (c *ShellCoordinator) RequestClose(ctx context.Context) {
	if c.closing {
		return
	}
	c.gate.Authorize(ctx, port.AuthReasonClose, func(granted bool) {
		if !granted {
			logging.FromContext(ctx).Debug().Msg("close not granted")
			return
		}
		c.closing = true
		logging.FromContext(ctx).Info().Msg("close authorized, shutting down")
		c.tabs.Shutdown(ctx)
		c.view.Quit()
	})
}

// SetTheme persists and applies a theme.
func (c *ShellCoordinator) SetTheme(ctx context.Context, theme entity.Theme) error {
	if err := c.theme.Set(ctx, theme); err != nil {
		return err
	}
	c.current = theme
	c.view.ApplyTheme(theme)
	return nil
}

func (c *ShellCoordinator) render(snap usecase.TabsSnapshot) {
	items := make([]TabItem, 0, len(snap.Tabs))
	for _, tab := range snap.Tabs {
		items = append(items, TabItem{
			ID:         tab.ID,
			Label:      TruncateTitle(tab.Title),
			FaviconURL: tab.FaviconURL,
			Active:     tab.Active,
		})
	}
	c.view.RenderTabs(items, snap.CanAddTab)
	c.view.RenderNav(NavModel{
		URL:          snap.Nav.URL,
		CanGoBack:    snap.Nav.CanGoBack,
		CanGoForward: snap.Nav.CanGoForward,
		CanReload:    snap.Nav.HasView,
	})
}

// TruncateTitle shortens a tab title to MaxTabTitleLength runes, the last
// one being an ellipsis.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTabTitleLength {
		return title
	}
	return string(runes[:MaxTabTitleLength-1]) + ellipsis
}
