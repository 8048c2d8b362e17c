package coordinator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
)

type fakeTabs struct {
	snap     usecase.TabsSnapshot
	onChange func(usecase.TabsSnapshot)

	started   string
	startErr  error
	added     []string
	addErr    error
	closed    []entity.TabID
	activated []entity.TabID
	navErr    error
	back      int
	forward   int
	reloads   int
	shutdowns int
}

func (f *fakeTabs) Start(_ context.Context, url string) error {
	f.started = url
	return f.startErr
}

func (f *fakeTabs) AddTab(_ context.Context, url string) (*entity.Tab, error) {
	f.added = append(f.added, url)
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &entity.Tab{}, nil
}

func (f *fakeTabs) CloseTab(_ context.Context, id entity.TabID) { f.closed = append(f.closed, id) }

func (f *fakeTabs) ActivateTab(_ context.Context, id entity.TabID) error {
	f.activated = append(f.activated, id)
	return nil
}

func (f *fakeTabs) GoBack(context.Context) error    { f.back++; return f.navErr }
func (f *fakeTabs) GoForward(context.Context) error { f.forward++; return f.navErr }
func (f *fakeTabs) Reload(context.Context) error    { f.reloads++; return f.navErr }

func (f *fakeTabs) Snapshot() usecase.TabsSnapshot            { return f.snap }
func (f *fakeTabs) SetOnChange(fn func(usecase.TabsSnapshot)) { f.onChange = fn }
func (f *fakeTabs) Shutdown(context.Context)                  { f.shutdowns++ }

type fakeView struct {
	tabs     []TabItem
	canAdd   bool
	nav      NavModel
	renders  int
	themes   []entity.Theme
	settings int
	onTheme  func(entity.Theme)
	quits    int
}

func (v *fakeView) RenderTabs(items []TabItem, canAdd bool) {
	v.tabs = items
	v.canAdd = canAdd
	v.renders++
}

func (v *fakeView) RenderNav(nav NavModel)        { v.nav = nav }
func (v *fakeView) ApplyTheme(theme entity.Theme) { v.themes = append(v.themes, theme) }
func (v *fakeView) Quit()                         { v.quits++ }
func (v *fakeView) ShowSettings(_ context.Context, _ entity.Theme, onTheme func(entity.Theme)) {
	v.settings++
	v.onTheme = onTheme
}

type fakeGate struct {
	grant   bool
	reasons []port.AuthReason
}

func (g *fakeGate) Authorize(_ context.Context, reason port.AuthReason, done func(bool)) {
	g.reasons = append(g.reasons, reason)
	done(g.grant)
}

type fakeClearer struct{ calls int }

func (c *fakeClearer) Execute(_ context.Context, done func(error)) {
	c.calls++
	if done != nil {
		done(nil)
	}
}

type fakeTheme struct {
	stored  entity.Theme
	loadErr error
	setErr  error
}

func (t *fakeTheme) Load(context.Context) (entity.Theme, error) {
	if t.loadErr != nil {
		return entity.DefaultTheme, t.loadErr
	}
	return t.stored, nil
}

func (t *fakeTheme) Set(_ context.Context, theme entity.Theme) error {
	if t.setErr != nil {
		return t.setErr
	}
	t.stored = theme
	return nil
}

type shellFixture struct {
	shell   *ShellCoordinator
	tabs    *fakeTabs
	view    *fakeView
	gate    *fakeGate
	clearer *fakeClearer
	theme   *fakeTheme
}

func newShellFixture() *shellFixture {
	f := &shellFixture{
		tabs:    &fakeTabs{},
		view:    &fakeView{},
		gate:    &fakeGate{},
		clearer: &fakeClearer{},
		theme:   &fakeTheme{stored: entity.ThemeLight},
	}
	f.shell = NewShellCoordinator(ShellConfig{
		Tabs:       f.tabs,
		View:       f.view,
		Gate:       f.gate,
		ClearData:  f.clearer,
		Theme:      f.theme,
		InitialURL: "https://kiosk.example/",
	})
	return f
}

func TestShell_StartAppliesThemeAndRenders(t *testing.T) {
	f := newShellFixture()
	f.tabs.snap = usecase.TabsSnapshot{
		Tabs:      []usecase.TabView{{ID: 0, Title: "Home", Active: true}},
		Nav:       usecase.NavState{URL: "https://kiosk.example/", HasView: true},
		CanAddTab: true,
	}

	require.NoError(t, f.shell.Start(context.Background()))

	assert.Equal(t, "https://kiosk.example/", f.tabs.started)
	assert.Equal(t, []entity.Theme{entity.ThemeLight}, f.view.themes)
	assert.Equal(t, entity.ThemeLight, f.shell.Theme())
	require.NotNil(t, f.tabs.onChange)
	require.Len(t, f.view.tabs, 1)
	assert.Equal(t, "Home", f.view.tabs[0].Label)
	assert.True(t, f.view.canAdd)
	assert.Equal(t, NavModel{URL: "https://kiosk.example/", CanReload: true}, f.view.nav)
}

func TestShell_StartFallsBackWhenThemeLoadFails(t *testing.T) {
	f := newShellFixture()
	f.theme.loadErr = errors.New("db locked")

	require.NoError(t, f.shell.Start(context.Background()))

	assert.Equal(t, []entity.Theme{entity.DefaultTheme}, f.view.themes)
}

func TestShell_StartPropagatesTabError(t *testing.T) {
	f := newShellFixture()
	f.tabs.startErr = entity.ErrViewOperationFailed

	err := f.shell.Start(context.Background())

	assert.ErrorIs(t, err, entity.ErrViewOperationFailed)
}

func TestShell_SnapshotsAreRendered(t *testing.T) {
	f := newShellFixture()
	require.NoError(t, f.shell.Start(context.Background()))

	f.tabs.onChange(usecase.TabsSnapshot{
		Tabs: []usecase.TabView{
			{ID: 0, Title: "One"},
			{ID: 3, Title: "Three", FaviconURL: "https://kiosk.example/favicon.ico", Active: true},
		},
		Nav:       usecase.NavState{URL: "https://kiosk.example/three", CanGoBack: true, CanGoForward: true, HasView: true},
		CanAddTab: false,
	})

	assert.Equal(t, []TabItem{
		{ID: 0, Label: "One"},
		{ID: 3, Label: "Three", FaviconURL: "https://kiosk.example/favicon.ico", Active: true},
	}, f.view.tabs)
	assert.False(t, f.view.canAdd)
	assert.Equal(t, NavModel{
		URL:          "https://kiosk.example/three",
		CanGoBack:    true,
		CanGoForward: true,
		CanReload:    true,
	}, f.view.nav)
}

func TestShell_ReloadDisabledWithoutView(t *testing.T) {
	f := newShellFixture()
	require.NoError(t, f.shell.Start(context.Background()))

	f.tabs.onChange(usecase.TabsSnapshot{
		Tabs: []usecase.TabView{{ID: 0, Title: "Loading...", Active: true}},
		Nav:  usecase.NavState{URL: "https://kiosk.example/"},
	})

	assert.Equal(t, NavModel{URL: "https://kiosk.example/"}, f.view.nav)
}

func TestShell_TabCommands(t *testing.T) {
	ctx := context.Background()
	f := newShellFixture()

	f.shell.AddTab(ctx)
	f.shell.ActivateTab(ctx, 2)
	f.shell.CloseTab(ctx, 1)

	assert.Equal(t, []string{""}, f.tabs.added)
	assert.Equal(t, []entity.TabID{2}, f.tabs.activated)
	assert.Equal(t, []entity.TabID{1}, f.tabs.closed)
}

func TestShell_AddTabAtCapacityIsQuiet(t *testing.T) {
	f := newShellFixture()
	f.tabs.addErr = entity.ErrCapacityExceeded

	f.shell.AddTab(context.Background())

	assert.Len(t, f.tabs.added, 1)
	assert.Zero(t, f.view.renders)
}

func TestShell_NavigationRendersEvenOnFailure(t *testing.T) {
	ctx := context.Background()
	f := newShellFixture()
	f.tabs.navErr = entity.ErrNoActiveTab

	f.shell.GoBack(ctx)
	f.shell.GoForward(ctx)
	f.shell.Reload(ctx)

	assert.Equal(t, 1, f.tabs.back)
	assert.Equal(t, 1, f.tabs.forward)
	assert.Equal(t, 1, f.tabs.reloads)
	assert.Equal(t, 3, f.view.renders)
	assert.False(t, f.view.nav.CanReload)
}

func TestShell_ClearAllDataIsNotGated(t *testing.T) {
	f := newShellFixture()

	f.shell.ClearAllData(context.Background())

	assert.Equal(t, 1, f.clearer.calls)
	assert.Empty(t, f.gate.reasons)
}

func TestShell_OpenSettings(t *testing.T) {
	t.Run("denied", func(t *testing.T) {
		f := newShellFixture()

		f.shell.OpenSettings(context.Background())

		assert.Equal(t, []port.AuthReason{port.AuthReasonSettings}, f.gate.reasons)
		assert.Zero(t, f.view.settings)
	})

	t.Run("granted then theme change", func(t *testing.T) {
		f := newShellFixture()
		f.gate.grant = true

		f.shell.OpenSettings(context.Background())
		require.Equal(t, 1, f.view.settings)
		f.view.onTheme(entity.ThemeDark)

		assert.Equal(t, entity.ThemeDark, f.theme.stored)
		assert.Equal(t, entity.ThemeDark, f.shell.Theme())
		assert.Equal(t, []entity.Theme{entity.ThemeDark}, f.view.themes)
	})
}

func TestShell_SetThemeFailureKeepsCurrent(t *testing.T) {
	f := newShellFixture()
	f.theme.setErr = entity.ErrInvalidTheme

	err := f.shell.SetTheme(context.Background(), entity.Theme("neon"))

	assert.ErrorIs(t, err, entity.ErrInvalidTheme)
	assert.Equal(t, entity.DefaultTheme, f.shell.Theme())
	assert.Empty(t, f.view.themes)
}

func TestShell_RequestClose(t *testing.T) {
	t.Run("denied", func(t *testing.T) {
		f := newShellFixture()

		f.shell.RequestClose(context.Background())

		assert.Equal(t, []port.AuthReason{port.AuthReasonClose}, f.gate.reasons)
		assert.Zero(t, f.view.quits)
		assert.Zero(t, f.tabs.shutdowns)
	})

	t.Run("granted", func(t *testing.T) {
		f := newShellFixture()
		f.gate.grant = true

		f.shell.RequestClose(context.Background())
		f.shell.RequestClose(context.Background())

		assert.Equal(t, 1, f.view.quits)
		assert.Equal(t, 1, f.tabs.shutdowns)
		assert.Len(t, f.gate.reasons, 1)
	})
}

func TestTruncateTitle(t *testing.T) {
	exact := strings.Repeat("a", MaxTabTitleLength)
	long := strings.Repeat("b", MaxTabTitleLength+10)
	wide := strings.Repeat("é", MaxTabTitleLength+1)

	assert.Equal(t, "Short", TruncateTitle("Short"))
	assert.Equal(t, exact, TruncateTitle(exact))

	got := TruncateTitle(long)
	assert.Equal(t, MaxTabTitleLength, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, strings.Repeat("b", MaxTabTitleLength-1)+"…", got)

	assert.Equal(t, MaxTabTitleLength, utf8.RuneCountInString(TruncateTitle(wide)))
}
