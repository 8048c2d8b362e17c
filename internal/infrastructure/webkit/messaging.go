package webkit

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// Script message types posted by the interceptor.
const (
	messageWindowOpen = "window-open"
	messagePopupClose = "popup-close"
	messageDOMReady   = "dom-ready"
)

var errEmptyMessage = errors.New("webkit: empty script message")

// scriptMessage is the JSON payload posted on the kiosk channel.
type scriptMessage struct {
	Type     string `json:"type"`
	Popup    string `json:"popup"` // stub key of a window-open or popup-close
	URL      string `json:"url"`
	Target   string `json:"target"`
	Features string `json:"features"`
}

// decodeMessage accepts either a JSON object or a JSON string holding one,
// since the interceptor posts stringified payloads.
func decodeMessage(raw string) (scriptMessage, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" || raw == "undefined" {
		return scriptMessage{}, errEmptyMessage
	}
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			return scriptMessage{}, fmt.Errorf("webkit: decode message string: %w", err)
		}
		raw = inner
	}
	var msg scriptMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return scriptMessage{}, fmt.Errorf("webkit: decode message: %w", err)
	}
	if msg.Type == "" {
		return scriptMessage{}, fmt.Errorf("webkit: message without type: %w", errEmptyMessage)
	}
	return msg, nil
}

// intentFromScript builds the navigation intent for an intercepted window.open.
func intentFromScript(msg scriptMessage) entity.NavigationIntent {
	return entity.NavigationIntent{
		URL:            msg.URL,
		Disposition:    entity.DispositionNewWindow,
		WindowFeatures: msg.Features,
		FrameName:      msg.Target,
		IsUserGesture:  true,
		Source:         entity.IntentSourceScript,
	}
}

// intentFromNative builds the navigation intent for WebKit's create signal.
// Link clicks map to a foreground tab; anything else to a new window.
func intentFromNative(uri, frameName string, linkClicked, userGesture bool) entity.NavigationIntent {
	disposition := entity.DispositionNewWindow
	if linkClicked {
		disposition = entity.DispositionForegroundTab
	}
	return entity.NavigationIntent{
		URL:           uri,
		Disposition:   disposition,
		FrameName:     frameName,
		IsUserGesture: userGesture,
		Source:        entity.IntentSourceNative,
	}
}
