package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultURL, mgr.viper.GetString("default_url"))
	assert.Equal(t, 3, mgr.viper.GetInt("tabs.max_tabs"))
	assert.Equal(t, 100, mgr.viper.GetInt("tabs.metadata_refresh_ms"))
	assert.Equal(t, "dark", mgr.viper.GetString("appearance.theme"))
	assert.True(t, mgr.viper.GetBool("window.fullscreen"))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, defaultURL, cfg.DefaultURL)
	assert.Equal(t, 3, cfg.Tabs.MaxTabs)
	assert.Equal(t, filepath.Join(root, "data", "kiosk", "kiosk.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "state", "kiosk", "logs"), cfg.Logging.LogDir)

	assert.FileExists(t, filepath.Join(root, "config", "kiosk", "config.toml"))
	assert.FileExists(t, filepath.Join(root, "config", "kiosk", "config.schema.json"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("KIOSK_DEFAULT_URL", "https://intranet.example/")
	t.Setenv("KIOSK_TABS_MAX_TABS", "5")
	t.Setenv("KIOSK_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://intranet.example/", cfg.DefaultURL)
	assert.Equal(t, 5, cfg.Tabs.MaxTabs)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "kiosk")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[tabs]\nmax_tabs = 0\n"), 0o600))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tabs.max_tabs")
}

func TestSetPasswordHash_Persists(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, mgr.SetPasswordHash(string(hash)))

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, string(hash), reloaded.Get().Security.PasswordHash)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.Theme = " LIGHT "
	cfg.Logging.Level = "DEBUG"
	cfg.Maintenance.ClearDataSchedule = " @daily "

	normalizeConfig(cfg)

	assert.Equal(t, "light", cfg.Appearance.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "@daily", cfg.Maintenance.ClearDataSchedule)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"default_url"`)
	assert.Contains(t, string(data), `"max_tabs"`)
	assert.Contains(t, string(data), "Kiosk Configuration")
}
