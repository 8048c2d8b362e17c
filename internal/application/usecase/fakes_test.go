package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/domain/entity"
)

// manualScheduler fires timers only when the test advances its clock.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s       *manualScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and fires due timers in deadline order.
func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		var due []*manualTimer
		for _, t := range s.timers {
			if !t.stopped && !t.fired && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			break
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at == due[j].at {
				return due[i].seq < due[j].seq
			}
			return due[i].at < due[j].at
		})
		next := due[0]
		s.now = next.at
		next.fired = true
		next.fn()
	}
	s.now = target
}

func (s *manualScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type pendingScript struct {
	script string
	done   port.ScriptCallback
}

// fakeWebView records calls and lets tests fire view events.
type fakeWebView struct {
	id        port.WebViewID
	uri       string
	title     string
	favicon   string
	scriptErr error
	// deferScripts queues script callbacks until ResolveScripts.
	deferScripts bool
	pending      []pendingScript

	canGoBack    bool
	canGoForward bool
	visible      bool
	destroyed    bool
	destroyCalls int
	callbacks    *port.WebViewCallbacks
	setCBCalls   int

	loaded     []string
	reloads    int
	backs      int
	forwards   int
	scriptsRun int
}

func (v *fakeWebView) ID() port.WebViewID { return v.id }

func (v *fakeWebView) LoadURI(_ context.Context, uri string) error {
	v.loaded = append(v.loaded, uri)
	return nil
}

func (v *fakeWebView) Reload(context.Context) error    { v.reloads++; return nil }
func (v *fakeWebView) GoBack(context.Context) error    { v.backs++; return nil }
func (v *fakeWebView) GoForward(context.Context) error { v.forwards++; return nil }
func (v *fakeWebView) URI() string                     { return v.uri }
func (v *fakeWebView) Title() string                   { return v.title }
func (v *fakeWebView) IsLoading() bool                 { return false }
func (v *fakeWebView) CanGoBack() bool                 { return v.canGoBack }
func (v *fakeWebView) CanGoForward() bool              { return v.canGoForward }
func (v *fakeWebView) SetVisible(visible bool)         { v.visible = visible }
func (v *fakeWebView) IsDestroyed() bool               { return v.destroyed }

func (v *fakeWebView) SetCallbacks(cb *port.WebViewCallbacks) {
	v.setCBCalls++
	v.callbacks = cb
}

func (v *fakeWebView) Destroy() {
	v.destroyCalls++
	v.destroyed = true
}

func (v *fakeWebView) EvaluateScript(_ context.Context, script string, done port.ScriptCallback) {
	v.scriptsRun++
	if v.deferScripts {
		v.pending = append(v.pending, pendingScript{script: script, done: done})
		return
	}
	v.answer(script, done)
}

func (v *fakeWebView) answer(script string, done port.ScriptCallback) {
	if v.scriptErr != nil {
		done("", v.scriptErr)
		return
	}
	if script == titleScript {
		done(v.title, nil)
		return
	}
	done(v.favicon, nil)
}

// ResolveScripts answers all queued script calls with the current page state.
func (v *fakeWebView) ResolveScripts() {
	pending := v.pending
	v.pending = nil
	for _, p := range pending {
		v.answer(p.script, p.done)
	}
}

func (v *fakeWebView) fireLoad(event port.LoadEvent) {
	if v.callbacks != nil && v.callbacks.OnLoadChanged != nil {
		v.callbacks.OnLoadChanged(event)
	}
}

func (v *fakeWebView) fireTitle(title string) {
	v.title = title
	if v.callbacks != nil && v.callbacks.OnTitleChanged != nil {
		v.callbacks.OnTitleChanged(title)
	}
}

func (v *fakeWebView) fireInPage(uri string) {
	v.uri = uri
	if v.callbacks != nil && v.callbacks.OnURIChanged != nil {
		v.callbacks.OnURIChanged(uri, true)
	}
}

func (v *fakeWebView) fireDOMReady() {
	if v.callbacks != nil && v.callbacks.OnDOMReady != nil {
		v.callbacks.OnDOMReady()
	}
}

func (v *fakeWebView) fireNewWindow(intent entity.NavigationIntent) bool {
	if v.callbacks == nil || v.callbacks.OnNewWindow == nil {
		return false
	}
	return v.callbacks.OnNewWindow(intent)
}

// navigate simulates a committed navigation.
func (v *fakeWebView) navigate(uri string) {
	v.uri = uri
	v.fireLoad(port.LoadCommitted)
}

// fakeHost creates fakeWebViews and tracks what is attached.
type fakeHost struct {
	nextID    port.WebViewID
	views     []*fakeWebView
	attached  map[port.WebViewID]bool
	detached  int
	createErr error
	// prepare customises each view before it is returned.
	prepare func(*fakeWebView)
}

func newFakeHost() *fakeHost {
	return &fakeHost{attached: make(map[port.WebViewID]bool)}
}

func (h *fakeHost) Create(_ context.Context, initialURL string) (port.WebView, error) {
	if h.createErr != nil {
		return nil, h.createErr
	}
	h.nextID++
	v := &fakeWebView{id: h.nextID, uri: initialURL}
	if h.prepare != nil {
		h.prepare(v)
	}
	h.views = append(h.views, v)
	return v, nil
}

func (h *fakeHost) Attach(view port.WebView) {
	h.attached[view.ID()] = true
}

func (h *fakeHost) Detach(view port.WebView) {
	h.detached++
	delete(h.attached, view.ID())
}

func (h *fakeHost) last() *fakeWebView {
	return h.views[len(h.views)-1]
}

var errFakeScript = errors.New("page gone")
