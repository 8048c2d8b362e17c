package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
)

func TestPromptTitle(t *testing.T) {
	assert.Equal(t, "Enter password to open settings", PromptTitle(port.AuthReasonSettings))
	assert.Equal(t, "Enter password to close the application", PromptTitle(port.AuthReasonClose))
	assert.Equal(t, "Enter password", PromptTitle(port.AuthReason("other")))
}

func TestThemeSelectorMapping(t *testing.T) {
	for _, theme := range []entity.Theme{entity.ThemeLight, entity.ThemeDark} {
		assert.Equal(t, theme, ThemeAt(ThemeIndex(theme)))
	}
	assert.Equal(t, ThemeIndex(entity.DefaultTheme), ThemeIndex(entity.Theme("neon")))
	assert.Equal(t, entity.DefaultTheme, ThemeAt(42))
	assert.Len(t, themeLabels, len(themeChoices))
}
