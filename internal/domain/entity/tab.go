package entity

import "time"

// TabID uniquely identifies a tab. IDs increase monotonically and are never reused.
type TabID int64

// DefaultTabTitle is shown until the page reports a title.
const DefaultTabTitle = "Loading..."

// TabState tracks where a tab is in its lifecycle.
type TabState int

const (
	// TabStateLoading is the initial state until the first load finishes.
	TabStateLoading TabState = iota
	// TabStateReady means content has loaded at least once.
	TabStateReady
	// TabStateClosed is terminal; the tab has left the collection.
	TabStateClosed
)

// String returns a human-readable representation of the state.
func (s TabState) String() string {
	switch s {
	case TabStateLoading:
		return "loading"
	case TabStateReady:
		return "ready"
	case TabStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Tab represents one browsing context in the tab strip.
// The view backing a tab is owned by the tab manager, not by the entity.
type Tab struct {
	ID         TabID
	Title      string
	FaviconURL string
	URL        string
	Active     bool
	State      TabState
	CreatedAt  time.Time
}

// NewTab creates a tab in the loading state.
func NewTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		Title:     DefaultTabTitle,
		URL:       url,
		State:     TabStateLoading,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the title, falling back to the URL.
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.URL
}

// MarkReady moves a loading tab to ready. Ready and closed tabs are left alone.
func (t *Tab) MarkReady() bool {
	if t.State != TabStateLoading {
		return false
	}
	t.State = TabStateReady
	return true
}

// TabList manages an ordered collection of tabs.
// Insertion order is display order.
type TabList struct {
	Tabs    []*Tab
	MaxTabs int
}

// NewTabList creates an empty tab list capped at maxTabs.
func NewTabList(maxTabs int) *TabList {
	return &TabList{
		Tabs:    make([]*Tab, 0, maxTabs),
		MaxTabs: maxTabs,
	}
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// IsFull reports whether the ceiling has been reached.
func (tl *TabList) IsFull() bool {
	return tl.MaxTabs > 0 && len(tl.Tabs) >= tl.MaxTabs
}

// Append adds a tab at the end of the list.
func (tl *TabList) Append(tab *Tab) error {
	if tl.IsFull() {
		return ErrCapacityExceeded
	}
	tl.Tabs = append(tl.Tabs, tab)
	return nil
}

// IndexOf returns the position of the tab, or -1.
func (tl *TabList) IndexOf(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// RemoveAt removes and returns the tab at index i.
func (tl *TabList) RemoveAt(i int) *Tab {
	if i < 0 || i >= len(tl.Tabs) {
		return nil
	}
	tab := tl.Tabs[i]
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	return tab
}

// SetActive marks the given tab active and every other tab inactive.
func (tl *TabList) SetActive(id TabID) bool {
	if tl.Find(id) == nil {
		return false
	}
	for _, tab := range tl.Tabs {
		tab.Active = tab.ID == id
	}
	return true
}

// Active returns the currently active tab.
func (tl *TabList) Active() *Tab {
	for _, tab := range tl.Tabs {
		if tab.Active {
			return tab
		}
	}
	return nil
}

// ActiveCount returns how many tabs are flagged active.
func (tl *TabList) ActiveCount() int {
	n := 0
	for _, tab := range tl.Tabs {
		if tab.Active {
			n++
		}
	}
	return n
}
