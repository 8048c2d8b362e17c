package theme

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/domain/entity"
)

func TestDefaultPalettesAreValid(t *testing.T) {
	require.NoError(t, DefaultDarkPalette().Validate())
	require.NoError(t, DefaultLightPalette().Validate())
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, DefaultLightPalette(), PaletteFor(entity.ThemeLight))
	assert.Equal(t, DefaultDarkPalette(), PaletteFor(entity.ThemeDark))
	assert.Equal(t, DefaultDarkPalette(), PaletteFor(entity.Theme("sepia")))
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#FFFFFF", "#11223344"} {
		assert.NoError(t, ValidateHexColor(ok), ok)
	}
	for _, bad := range []string{"", "fff", "#ggg", "#12345", "red"} {
		assert.Error(t, ValidateHexColor(bad), bad)
	}
}

func TestPalette_ValidateNamesBadField(t *testing.T) {
	p := DefaultDarkPalette()
	p.Accent = "blue"

	err := p.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(DefaultLightPalette())

	assert.True(t, strings.HasPrefix(css, "/* Theme variables */\n:root {\n"))
	assert.Contains(t, css, "--accent: #2563eb;")
	for _, class := range []string{".nav-bar", ".tab-strip", ".tab-button-active", ".toast", ".dialog-error"} {
		assert.Contains(t, css, class)
	}
}

func TestManager_ThemeState(t *testing.T) {
	ctx := context.Background()

	m := NewManager(ctx, entity.Theme("bogus"))
	assert.Equal(t, entity.DefaultTheme, m.Theme())
	assert.True(t, m.PrefersDark())

	m.SetTheme(ctx, entity.ThemeLight, nil)
	assert.Equal(t, entity.ThemeLight, m.Theme())
	assert.False(t, m.PrefersDark())
	assert.Equal(t, DefaultLightPalette(), m.CurrentPalette())
	assert.Contains(t, m.CSS(), DefaultLightPalette().Background)
}
