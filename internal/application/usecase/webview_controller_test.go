package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*WebViewController, *fakeWebView, *fakeHost, *manualScheduler) {
	t.Helper()
	host := newFakeHost()
	view, err := host.Create(context.Background(), "https://example.com/")
	require.NoError(t, err)
	sched := &manualScheduler{}
	ctrl := NewWebViewController(0, view, host, sched, 0)
	return ctrl, view.(*fakeWebView), host, sched
}

func TestWebViewController_AttachIsGuarded(t *testing.T) {
	ctrl, view, _, _ := newTestController(t)
	ctx := context.Background()

	navigations := 0
	events := ControllerEvents{OnNavigated: func(string) { navigations++ }}

	require.True(t, ctrl.Attach(ctx, events, nil))
	require.False(t, ctrl.Attach(ctx, events, nil))
	assert.Equal(t, 1, view.setCBCalls)

	view.navigate("https://example.com/a")
	assert.Equal(t, 1, navigations)
}

func TestWebViewController_DebouncedRefresh(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()

	var got []Metadata
	ctrl.Attach(ctx, ControllerEvents{}, func(md Metadata) { got = append(got, md) })

	// Three events inside 50ms.
	ctrl.ScheduleRefresh(ctx)
	sched.Advance(20 * time.Millisecond)
	ctrl.ScheduleRefresh(ctx)
	sched.Advance(30 * time.Millisecond)
	ctrl.ScheduleRefresh(ctx)

	// Page state changes before the refresh fires.
	view.title = "Final"
	view.favicon = "https://example.com/favicon.ico"
	view.uri = "https://example.com/final"

	sched.Advance(99 * time.Millisecond)
	assert.Empty(t, got)
	assert.True(t, ctrl.HasPendingRefresh())

	sched.Advance(time.Millisecond)
	require.Len(t, got, 1)
	assert.Equal(t, Metadata{
		Title:      "Final",
		FaviconURL: "https://example.com/favicon.ico",
		URL:        "https://example.com/final",
	}, got[0])
	assert.Equal(t, 2, view.scriptsRun)
	assert.False(t, ctrl.HasPendingRefresh())
}

func TestWebViewController_RefreshReadsURLAtResolution(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()
	view.deferScripts = true

	var got []Metadata
	ctrl.Attach(ctx, ControllerEvents{}, func(md Metadata) { got = append(got, md) })

	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)
	view.uri = "https://example.com/later"
	view.ResolveScripts()

	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/later", got[0].URL)
}

func TestWebViewController_ScriptFailureFallsBack(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()
	view.scriptErr = errFakeScript
	view.uri = "https://example.com/no-title"

	var got []Metadata
	ctrl.Attach(ctx, ControllerEvents{}, func(md Metadata) { got = append(got, md) })

	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)

	require.Len(t, got, 1)
	assert.Equal(t, "https://example.com/no-title", got[0].Title)
	assert.Empty(t, got[0].FaviconURL)
}

func TestWebViewController_SupersededRefreshDropped(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()
	view.deferScripts = true

	var got []Metadata
	ctrl.Attach(ctx, ControllerEvents{}, func(md Metadata) { got = append(got, md) })

	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)
	first := view.pending
	view.pending = nil

	view.title = "Second"
	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)

	// The older refresh resolves last and must be ignored.
	view.ResolveScripts()
	for _, p := range first {
		view.answer(p.script, p.done)
	}

	require.Len(t, got, 1)
	assert.Equal(t, "Second", got[0].Title)
}

func TestWebViewController_InFlightRefreshDroppedOnceRescheduled(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()
	view.deferScripts = true

	var got []Metadata
	ctrl.Attach(ctx, ControllerEvents{}, func(md Metadata) { got = append(got, md) })

	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)
	require.NotEmpty(t, view.pending)

	// A newer refresh is armed but has not fired yet.
	view.title = "Newer"
	ctrl.ScheduleRefresh(ctx)
	view.ResolveScripts()
	assert.Empty(t, got)

	sched.Advance(DefaultRefreshDelay)
	view.ResolveScripts()
	require.Len(t, got, 1)
	assert.Equal(t, "Newer", got[0].Title)
}

func TestWebViewController_DestroyIsIdempotent(t *testing.T) {
	ctrl, view, host, sched := newTestController(t)
	ctx := context.Background()
	host.Attach(view)

	ctrl.Attach(ctx, ControllerEvents{}, func(Metadata) { t.Fatal("metadata after destroy") })
	ctrl.ScheduleRefresh(ctx)

	ctrl.Destroy(ctx)
	ctrl.Destroy(ctx)

	assert.True(t, ctrl.IsDestroyed())
	assert.Equal(t, 1, view.destroyCalls)
	assert.Equal(t, 1, host.detached)
	assert.Nil(t, view.callbacks)
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Second)
	ctrl.ScheduleRefresh(ctx)
	assert.Equal(t, 0, sched.Pending())
}

func TestWebViewController_DestroyDropsInFlightRefresh(t *testing.T) {
	ctrl, view, _, sched := newTestController(t)
	ctx := context.Background()
	view.deferScripts = true

	called := false
	ctrl.Attach(ctx, ControllerEvents{}, func(Metadata) { called = true })
	ctrl.ScheduleRefresh(ctx)
	sched.Advance(DefaultRefreshDelay)

	ctrl.Destroy(ctx)
	view.ResolveScripts()

	assert.False(t, called)
}

func TestWebViewController_OperationsAfterDestroy(t *testing.T) {
	ctrl, _, _, _ := newTestController(t)
	ctx := context.Background()
	ctrl.Destroy(ctx)

	assert.ErrorIs(t, ctrl.GoBack(ctx), entity.ErrViewOperationFailed)
	assert.ErrorIs(t, ctrl.GoForward(ctx), entity.ErrViewOperationFailed)
	assert.ErrorIs(t, ctrl.Reload(ctx), entity.ErrViewOperationFailed)
	assert.ErrorIs(t, ctrl.LoadURL(ctx, "https://example.com"), entity.ErrViewOperationFailed)
	assert.False(t, ctrl.CanGoBack())
	assert.Empty(t, ctrl.CurrentURL())
}

func TestWebViewController_EventMapping(t *testing.T) {
	ctrl, view, _, _ := newTestController(t)
	ctx := context.Background()

	var log []string
	ctrl.Attach(ctx, ControllerEvents{
		OnNavigated:       func(url string) { log = append(log, "nav:"+url) },
		OnNavigatedInPage: func(url string) { log = append(log, "inpage:"+url) },
		OnTitleChanged:    func() { log = append(log, "title") },
		OnDOMReady:        func() { log = append(log, "dom") },
		OnLoadFinished:    func() { log = append(log, "finished") },
		OnNewWindowRequested: func(intent entity.NavigationIntent) bool {
			log = append(log, "popup:"+intent.URL)
			return true
		},
	}, nil)

	view.fireLoad(port.LoadStarted)
	view.navigate("https://example.com/a")
	view.fireDOMReady()
	view.fireTitle("A")
	view.fireLoad(port.LoadFinished)
	view.fireInPage("https://example.com/a#x")
	allowed := view.fireNewWindow(entity.NavigationIntent{URL: "https://example.com/p"})

	assert.True(t, allowed)
	assert.Equal(t, []string{
		"nav:https://example.com/a",
		"dom",
		"title",
		"finished",
		"inpage:https://example.com/a#x",
		"popup:https://example.com/p",
	}, log)
}

func TestWebViewController_FaviconURLSoftFails(t *testing.T) {
	ctrl, view, _, _ := newTestController(t)
	view.scriptErr = errFakeScript

	got := "unset"
	ctrl.FaviconURL(context.Background(), func(s string) { got = s })

	assert.Empty(t, got)
}
