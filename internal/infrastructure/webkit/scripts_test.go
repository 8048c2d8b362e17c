package webkit

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageStub = `
var window = this;
window.location = { href: 'https://kiosk.example/app/' };
window.webkit = { messageHandlers: { kiosk: { postMessage: function (m) { post(m); } } } };
var document = {
  listeners: {},
  addEventListener: function (name, fn) { this.listeners[name] = fn; }
};
function makeForm(target) {
  var attrs = { target: target };
  return {
    tagName: 'FORM',
    getAttribute: function (k) { return attrs[k]; },
    setAttribute: function (k, v) { attrs[k] = v; }
  };
}
`

type page struct {
	vm     *sobek.Runtime
	posted []string
}

func loadPage(t *testing.T) *page {
	t.Helper()
	p := &page{vm: sobek.New()}
	require.NoError(t, p.vm.Set("post", func(msg string) {
		p.posted = append(p.posted, msg)
	}))
	_, err := p.vm.RunString(pageStub)
	require.NoError(t, err)
	_, err = p.vm.RunString(interceptorScript)
	require.NoError(t, err)
	return p
}

func (p *page) run(t *testing.T, src string) sobek.Value {
	t.Helper()
	v, err := p.vm.RunString(src)
	require.NoError(t, err)
	return v
}

func TestValidateScripts(t *testing.T) {
	require.NoError(t, ValidateScripts())
	assert.Equal(t, interceptorScript, InterceptorScript())
}

func TestInterceptor_WindowOpenPostsRequest(t *testing.T) {
	p := loadPage(t)

	p.run(t, `window.open('https://idp.example/oauth/authorize', 'auth', 'width=500,height=600')`)

	require.Len(t, p.posted, 1)
	msg, err := decodeMessage(p.posted[0])
	require.NoError(t, err)
	assert.Equal(t, messageWindowOpen, msg.Type)
	assert.Equal(t, "auth", msg.Target)
	assert.Equal(t, "width=500,height=600", msg.Features)
	// URL is unavailable in the VM, the raw value is forwarded.
	assert.Equal(t, "https://idp.example/oauth/authorize", msg.URL)
}

func TestInterceptor_WindowOpenReturnsStub(t *testing.T) {
	p := loadPage(t)

	v := p.run(t, `
var w = window.open('https://kiosk.example/next');
var before = w.closed;
w.focus(); w.postMessage('x');
w.close();
[before, w.closed].join(',');
`)

	assert.Equal(t, "false,true", v.String())
}

func TestInterceptor_StubFollowsPopupWindow(t *testing.T) {
	p := loadPage(t)

	p.run(t, `var w = window.open('https://idp.example/oauth/authorize', 'auth', 'width=500,height=600')`)
	require.Len(t, p.posted, 1)
	open, err := decodeMessage(p.posted[0])
	require.NoError(t, err)
	require.NotEmpty(t, open.Popup)

	assert.False(t, p.run(t, `w.closed`).ToBoolean())

	// The shell reports the popup window closed.
	p.run(t, popupClosedScript(open.Popup))
	assert.True(t, p.run(t, `w.closed`).ToBoolean())

	// Closing an already closed stub posts nothing.
	p.run(t, `w.close()`)
	assert.Len(t, p.posted, 1)
}

func TestInterceptor_StubCloseClosesPopup(t *testing.T) {
	p := loadPage(t)

	p.run(t, `var a = window.open('https://idp.example/a'); var b = window.open('https://idp.example/b');`)
	p.run(t, `b.close()`)

	require.Len(t, p.posted, 3)
	first, err := decodeMessage(p.posted[0])
	require.NoError(t, err)
	second, err := decodeMessage(p.posted[1])
	require.NoError(t, err)
	closing, err := decodeMessage(p.posted[2])
	require.NoError(t, err)

	assert.NotEqual(t, first.Popup, second.Popup)
	assert.Equal(t, messagePopupClose, closing.Type)
	assert.Equal(t, second.Popup, closing.Popup)
	assert.False(t, p.run(t, `a.closed`).ToBoolean())
}

func TestPopupClosedScript_QuotesKey(t *testing.T) {
	assert.Equal(t,
		`window.__kioskPopupClosed && window.__kioskPopupClosed("x\"y:1")`,
		popupClosedScript(`x"y:1`))
}

func TestInterceptor_MissingArgumentsPostEmptyStrings(t *testing.T) {
	p := loadPage(t)

	p.run(t, `window.open()`)

	require.Len(t, p.posted, 1)
	msg, err := decodeMessage(p.posted[0])
	require.NoError(t, err)
	assert.Empty(t, msg.URL)
	assert.Empty(t, msg.Target)
	assert.Empty(t, msg.Features)
}

func TestInterceptor_InjectedOnce(t *testing.T) {
	p := loadPage(t)
	p.run(t, `var first = window.open;`)

	p.run(t, interceptorScript)

	assert.True(t, p.run(t, `first === window.open`).ToBoolean())
}

func TestInterceptor_DOMReadyMessage(t *testing.T) {
	p := loadPage(t)

	p.run(t, `document.listeners.DOMContentLoaded()`)

	require.Len(t, p.posted, 1)
	msg, err := decodeMessage(p.posted[0])
	require.NoError(t, err)
	assert.Equal(t, messageDOMReady, msg.Type)
	assert.Equal(t, "https://kiosk.example/app/", msg.URL)
}

func TestInterceptor_RetargetsBlankForms(t *testing.T) {
	p := loadPage(t)

	v := p.run(t, `
var blank = makeForm('_blank');
var named = makeForm('results');
document.listeners.submit({ target: blank });
document.listeners.submit({ target: named });
[blank.getAttribute('target'), named.getAttribute('target')].join(',');
`)

	assert.Equal(t, "_self,results", v.String())
	assert.Empty(t, p.posted)
}
