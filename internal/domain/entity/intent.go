package entity

// Disposition hints how a requested browsing context was meant to open.
type Disposition string

const (
	DispositionUnset         Disposition = ""
	DispositionForegroundTab Disposition = "foreground-tab"
	DispositionBackgroundTab Disposition = "background-tab"
	DispositionNewWindow     Disposition = "new-window"
	DispositionNewPopup      Disposition = "new-popup"
	DispositionPopup         Disposition = "popup"
	DispositionSaveToDisk    Disposition = "save-to-disk"
	DispositionOther         Disposition = "other"
)

// IsTabLike reports whether the disposition asks for a regular tab or window.
// Unset counts as tab-like.
func (d Disposition) IsTabLike() bool {
	switch d {
	case DispositionUnset, DispositionForegroundTab, DispositionBackgroundTab, DispositionNewWindow:
		return true
	default:
		return false
	}
}

// IntentSource records which path produced a navigation intent.
type IntentSource string

const (
	// IntentSourceNative is WebKit's create signal (target=_blank links, middle clicks).
	IntentSourceNative IntentSource = "native"
	// IntentSourceScript is the injected window.open interceptor.
	IntentSourceScript IntentSource = "script"
)

// NavigationIntent describes a requested new browsing context.
// It is produced once per request and consumed by the popup classifier.
type NavigationIntent struct {
	URL            string
	Disposition    Disposition
	WindowFeatures string
	FrameName      string
	IsUserGesture  bool
	Source         IntentSource
}
