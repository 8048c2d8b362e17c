package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_DefaultsAreValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultURL = "ftp://example.com"
	cfg.Tabs.MaxTabs = 0
	cfg.Appearance.Theme = "neon"
	cfg.Security.PasswordHash = "1234"
	cfg.Maintenance.ClearDataSchedule = "every tuesday"
	cfg.Logging.Format = "xml"

	err := validateConfig(cfg)
	require.Error(t, err)
	for _, key := range []string{
		"default_url",
		"tabs.max_tabs",
		"appearance.theme",
		"security.password_hash",
		"maintenance.clear_data_schedule",
		"logging.format",
	} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestValidateConfig_WindowSizeOnlyWhenWindowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 10

	require.NoError(t, validateConfig(cfg))

	cfg.Window.Fullscreen = false
	require.ErrorContains(t, validateConfig(cfg), "window.width")
}

func TestValidateConfig_CronDescriptors(t *testing.T) {
	cfg := DefaultConfig()
	for _, expr := range []string{"@daily", "@every 6h", "0 3 * * *"} {
		cfg.Maintenance.ClearDataSchedule = expr
		assert.NoError(t, validateConfig(cfg), expr)
	}
}
