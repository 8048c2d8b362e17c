// Package popup decides whether a request for a new browsing context is a
// legitimate popup (OAuth, print, download, dialogs) or an unwanted new tab
// that should be loaded in the current view instead.
package popup

import (
	"net/url"
	"strings"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// Verdict is the outcome of classification.
type Verdict int

const (
	// Redirect loads the intent URL in the current view; no new context is created.
	Redirect Verdict = iota
	// Allow lets the popup open in its own transient window.
	Allow
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// RuleID names the rule that produced a decision.
type RuleID string

const (
	RuleDisposition     RuleID = "disposition"
	RuleWindowFeatures  RuleID = "window-features"
	RuleURLPattern      RuleID = "url-pattern"
	RuleSameOriginSmall RuleID = "same-origin-small"
	RuleDefault         RuleID = "default"
)

// Decision carries the verdict and the rule that matched.
type Decision struct {
	Verdict Verdict
	Rule    RuleID
}

// Small same-origin windows are treated as account/share dialogs.
const (
	smallWindowMaxWidth  = 1000
	smallWindowMaxHeight = 800
)

// popupFeatureMarkers signal a deliberate popup in the feature string.
var popupFeatureMarkers = []string{"popup", "dialog", "modal"}

// chromeFeatures are the bars a popup typically hides.
var chromeFeatures = []string{"toolbar", "menubar", "location", "status"}

// utilityPathPatterns appear in authentication and utility popup URLs.
var utilityPathPatterns = []string{
	"/auth/",
	"/login/",
	"/oauth/",
	"/sso/",
	"/popup/",
	"/print/",
	"/download/",
}

// utilityQueryFlags must equal "true" to count.
var utilityQueryFlags = []string{"popup", "dialog", "modal"}

type input struct {
	intent   entity.NavigationIntent
	features WindowFeatures
	target   *url.URL
	origin   string
}

type rule struct {
	id      RuleID
	verdict Verdict
	match   func(in *input) bool
}

// rules is evaluated in order; the first match wins.
var rules = []rule{
	{id: RuleDisposition, verdict: Allow, match: matchDisposition},
	{id: RuleWindowFeatures, verdict: Allow, match: matchWindowFeatures},
	{id: RuleURLPattern, verdict: Allow, match: matchURLPattern},
	{id: RuleSameOriginSmall, verdict: Allow, match: matchSameOriginSmall},
}

// Classify decides between Allow and Redirect for a new-window request.
// It has no side effects and never fails: ambiguous or malformed input
// resolves to Redirect.
func Classify(intent entity.NavigationIntent, currentOrigin string) Decision {
	in := &input{
		intent:   intent,
		features: ParseWindowFeatures(intent.WindowFeatures),
		origin:   originOf(currentOrigin),
	}
	if u, err := url.Parse(strings.TrimSpace(intent.URL)); err == nil {
		in.target = u
	}

	for _, r := range rules {
		if r.match(in) {
			return Decision{Verdict: r.verdict, Rule: r.id}
		}
	}
	return Decision{Verdict: Redirect, Rule: RuleDefault}
}

func matchDisposition(in *input) bool {
	return !in.intent.Disposition.IsTabLike()
}

func matchWindowFeatures(in *input) bool {
	wf := in.features
	if wf.IsEmpty() {
		return false
	}
	for _, marker := range popupFeatureMarkers {
		if wf.Has(marker) {
			return true
		}
	}
	if !wf.Has("width") || !wf.Has("height") {
		return false
	}
	for _, bar := range chromeFeatures {
		if wf.Disabled(bar) {
			return true
		}
	}
	return false
}

func matchURLPattern(in *input) bool {
	if in.target == nil {
		return false
	}
	path := strings.ToLower(in.target.Path)
	for _, pattern := range utilityPathPatterns {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	query := in.target.Query()
	for _, flag := range utilityQueryFlags {
		if strings.EqualFold(query.Get(flag), "true") {
			return true
		}
	}
	return false
}

func matchSameOriginSmall(in *input) bool {
	if in.target == nil || in.origin == "" {
		return false
	}
	if originOfURL(in.target) != in.origin {
		return false
	}
	w, okW := in.features.Width()
	h, okH := in.features.Height()
	if !okW || !okH {
		return false
	}
	return w < smallWindowMaxWidth || h < smallWindowMaxHeight
}

// originOf normalises a URL or bare origin to scheme://host[:port].
func originOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return originOfURL(u)
}

func originOfURL(u *url.URL) string {
	if u.Scheme == "" || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host)
}

// Origin returns the scheme://host[:port] of a URL, or "" when it has none.
func Origin(raw string) string {
	return originOf(raw)
}
