package popup

import (
	"strconv"
	"strings"
)

// WindowFeatures is the parsed form of a window.open feature string
// such as "width=500,height=600,toolbar=no".
type WindowFeatures struct {
	values map[string]string
}

// ParseWindowFeatures splits a feature string into lowercase key/value pairs.
// Tokens are separated by commas or whitespace. A bare token ("popup") is
// stored with an empty value. An empty string yields empty features.
func ParseWindowFeatures(raw string) WindowFeatures {
	wf := WindowFeatures{values: make(map[string]string)}
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	for _, field := range fields {
		key, value, _ := strings.Cut(field, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		wf.values[key] = strings.TrimSpace(value)
	}
	return wf
}

// IsEmpty reports whether no feature was declared.
func (wf WindowFeatures) IsEmpty() bool {
	return len(wf.values) == 0
}

// Has reports whether the key was declared, with or without a value.
func (wf WindowFeatures) Has(key string) bool {
	_, ok := wf.values[key]
	return ok
}

// Disabled reports whether the key was explicitly turned off ("no" or "0").
func (wf WindowFeatures) Disabled(key string) bool {
	v, ok := wf.values[key]
	if !ok {
		return false
	}
	return v == "no" || v == "0"
}

// Dimension returns a declared integer feature. innerwidth/innerheight are
// accepted as aliases of width/height.
func (wf WindowFeatures) Dimension(key string) (int, bool) {
	v, ok := wf.values[key]
	if !ok {
		v, ok = wf.values["inner"+key]
	}
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Width returns the declared width.
func (wf WindowFeatures) Width() (int, bool) { return wf.Dimension("width") }

// Height returns the declared height.
func (wf WindowFeatures) Height() (int, bool) { return wf.Dimension("height") }
