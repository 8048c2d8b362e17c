package webkit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/grafana/sobek"
)

// MessageHandlerName is the script message channel exposed to pages as
// window.webkit.messageHandlers.kiosk.
const MessageHandlerName = "kiosk"

// interceptorScript is injected at document start in the top frame.
// window.open is replaced by a stub that reports the request to the shell.
// The stub is not the popup's window: its closed flag follows the real
// popup window and close() closes it, but postMessage into the popup is a
// no-op. Forms targeting a new context are retargeted to the current one
// and DOMContentLoaded is forwarded as a dom-ready message.
const interceptorScript = `(function () {
  if (window.__kioskInterceptor) {
    return;
  }
  window.__kioskInterceptor = true;

  var post = function (msg) {
    try {
      window.webkit.messageHandlers.kiosk.postMessage(JSON.stringify(msg));
    } catch (e) {}
  };

  var resolve = function (url) {
    if (!url) {
      return '';
    }
    try {
      return new URL(String(url), window.location.href).href;
    } catch (e) {
      return String(url);
    }
  };

  var page = Math.random().toString(36).slice(2);
  var stubs = {};
  var nextStub = 0;

  window.__kioskPopupClosed = function (key) {
    var stub = stubs[key];
    if (stub) {
      stub.closed = true;
      delete stubs[key];
    }
  };

  window.open = function (url, target, features) {
    nextStub += 1;
    var key = page + ':' + nextStub;
    var stub = {
      closed: false,
      close: function () {
        if (stub.closed) {
          return;
        }
        stub.closed = true;
        delete stubs[key];
        post({ type: 'popup-close', popup: key });
      },
      focus: function () {},
      blur: function () {},
      postMessage: function () {}
    };
    stubs[key] = stub;
    post({
      type: 'window-open',
      popup: key,
      url: resolve(url),
      target: target ? String(target) : '',
      features: features ? String(features) : ''
    });
    return stub;
  };

  var retarget = function (form) {
    var t = (form.getAttribute('target') || '').toLowerCase();
    if (t === '_blank' || t === '_new') {
      form.setAttribute('target', '_self');
    }
  };

  document.addEventListener('submit', function (ev) {
    if (ev.target && ev.target.tagName === 'FORM') {
      retarget(ev.target);
    }
  }, true);

  document.addEventListener('DOMContentLoaded', function () {
    post({ type: 'dom-ready', url: window.location.href });
  });
})();`

var (
	compileOnce sync.Once
	compileErr  error
)

// ValidateScripts compiles every injected script once so a broken script
// fails startup instead of silently doing nothing in the page.
func ValidateScripts() error {
	compileOnce.Do(func() {
		if _, err := sobek.Compile("kiosk-interceptor.js", interceptorScript, false); err != nil {
			compileErr = fmt.Errorf("webkit: interceptor script: %w", err)
		}
	})
	return compileErr
}

// popupClosedScript marks the page's stub for key as closed.
func popupClosedScript(key string) string {
	literal, _ := json.Marshal(key) // a string always marshals
	return fmt.Sprintf("window.__kioskPopupClosed && window.__kioskPopupClosed(%s)", literal)
}

// InterceptorScript returns the source of the window.open interceptor.
func InterceptorScript() string {
	return interceptorScript
}
