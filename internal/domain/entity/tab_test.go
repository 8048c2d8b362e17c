package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabList_AppendRespectsCeiling(t *testing.T) {
	tl := NewTabList(2)

	require.NoError(t, tl.Append(NewTab(0, "https://a")))
	require.NoError(t, tl.Append(NewTab(1, "https://b")))

	err := tl.Append(NewTab(2, "https://c"))
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, tl.Count())
	assert.True(t, tl.IsFull())
}

func TestTabList_SetActiveIsExclusive(t *testing.T) {
	tl := NewTabList(3)
	for i := range 3 {
		require.NoError(t, tl.Append(NewTab(TabID(i), "https://x")))
	}

	require.True(t, tl.SetActive(1))
	require.True(t, tl.SetActive(2))

	assert.Equal(t, 1, tl.ActiveCount())
	assert.Equal(t, TabID(2), tl.Active().ID)
	assert.False(t, tl.SetActive(99))
	assert.Equal(t, TabID(2), tl.Active().ID)
}

func TestTabList_RemoveAtKeepsOrder(t *testing.T) {
	tl := NewTabList(3)
	for i := range 3 {
		require.NoError(t, tl.Append(NewTab(TabID(i), "https://x")))
	}

	removed := tl.RemoveAt(1)
	require.NotNil(t, removed)
	assert.Equal(t, TabID(1), removed.ID)
	assert.Equal(t, TabID(0), tl.Tabs[0].ID)
	assert.Equal(t, TabID(2), tl.Tabs[1].ID)
	assert.Nil(t, tl.RemoveAt(5))
	assert.Equal(t, -1, tl.IndexOf(1))
}

func TestTab_MarkReadyOnlyFromLoading(t *testing.T) {
	tab := NewTab(0, "https://example.com")
	assert.Equal(t, DefaultTabTitle, tab.Title)
	assert.Equal(t, TabStateLoading, tab.State)

	assert.True(t, tab.MarkReady())
	assert.False(t, tab.MarkReady())

	tab.State = TabStateClosed
	assert.False(t, tab.MarkReady())
	assert.Equal(t, "closed", tab.State.String())
}

func TestTab_DisplayTitleFallsBackToURL(t *testing.T) {
	tab := NewTab(0, "https://example.com")
	tab.Title = ""
	assert.Equal(t, "https://example.com", tab.DisplayTitle())
}

func TestDisposition_IsTabLike(t *testing.T) {
	assert.True(t, DispositionUnset.IsTabLike())
	assert.True(t, DispositionForegroundTab.IsTabLike())
	assert.True(t, DispositionBackgroundTab.IsTabLike())
	assert.True(t, DispositionNewWindow.IsTabLike())
	assert.False(t, DispositionPopup.IsTabLike())
	assert.False(t, Disposition("something-else").IsTabLike())
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, DefaultTheme, ParseTheme("neon"))
	assert.Equal(t, DefaultTheme, ParseTheme(""))
}
