package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_UsesXDGEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "c"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "d"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "s"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "k"))

	adapter := New()

	for name, tc := range map[string]struct {
		get  func() (string, error)
		want string
	}{
		"config": {adapter.ConfigDir, filepath.Join(root, "c", "kiosk")},
		"data":   {adapter.DataDir, filepath.Join(root, "d", "kiosk")},
		"state":  {adapter.StateDir, filepath.Join(root, "s", "kiosk")},
		"cache":  {adapter.CacheDir, filepath.Join(root, "k", "kiosk")},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := tc.get()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAdapter_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dir, err := New().ConfigDir()

	require.NoError(t, err)
	assert.Equal(t, "kiosk", filepath.Base(dir))
	assert.Equal(t, ".dev", filepath.Base(filepath.Dir(dir)))
}
