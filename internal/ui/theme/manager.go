package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

const preferDarkProperty = "gtk-application-prefer-dark-theme"

// Manager handles theme state and CSS application.
type Manager struct {
	theme       entity.Theme
	cssProvider *gtk.CSSProvider
}

// NewManager creates a theme manager starting on theme.
func NewManager(ctx context.Context, theme entity.Theme) *Manager {
	theme = entity.ParseTheme(string(theme))
	logging.FromContext(ctx).Debug().Str("theme", string(theme)).Msg("theme manager initialized")
	return &Manager{theme: theme}
}

// Theme returns the active theme.
func (m *Manager) Theme() entity.Theme {
	return m.theme
}

// PrefersDark returns true if dark mode is active.
func (m *Manager) PrefersDark() bool {
	return m.theme == entity.ThemeDark
}

// CurrentPalette returns the palette of the active theme.
func (m *Manager) CurrentPalette() Palette {
	return PaletteFor(m.theme)
}

// CSS returns the stylesheet of the active theme.
func (m *Manager) CSS() string {
	return GenerateCSS(m.CurrentPalette())
}

// SetTheme switches theme and re-applies CSS when a display is given.
func (m *Manager) SetTheme(ctx context.Context, theme entity.Theme, display *gdk.Display) {
	m.theme = entity.ParseTheme(string(theme))
	logging.FromContext(ctx).Info().Str("theme", string(m.theme)).Msg("theme changed")
	if display != nil {
		m.ApplyToDisplay(ctx, display)
	}
}

// ApplyToDisplay loads the theme CSS into the display and aligns the GTK
// dark preference so stock widgets match.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(display, m.cssProvider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
	m.cssProvider.LoadFromString(m.CSS())

	if settings := gtk.SettingsGetForDisplay(display); settings != nil {
		settings.SetObjectProperty(preferDarkProperty, m.PrefersDark())
	}

	log.Debug().Bool("dark_mode", m.PrefersDark()).Msg("theme CSS applied to display")
}
