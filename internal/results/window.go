package results

// DefaultPageSize is the number of items materialized per page.
const DefaultPageSize = 10

// Window tracks how much of the filtered set is on screen.
//
// Invariant: 0 <= Displayed <= Total. Generation changes on every Reset, so
// callers can tell a fresh window from a grown one even when the counts match.
type Window struct {
	Displayed  int
	Total      int
	PageSize   int
	Generation uint64
}

func NewWindow(pageSize int) Window {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Window{PageSize: pageSize}
}

// Reset starts a new window over a set of total items.
func (w Window) Reset(total int) Window {
	if total < 0 {
		total = 0
	}
	w.Total = total
	w.Displayed = min(w.PageSize, total)
	w.Generation++
	return w
}

// Advance grows the window by one page. The bool is false, and the window
// unchanged, when everything is already displayed.
func (w Window) Advance() (Window, bool) {
	if !w.HasMore() {
		return w, false
	}
	w.Displayed = min(w.Displayed+w.PageSize, w.Total)
	return w, true
}

// HasMore reports whether a sentinel should be rendered.
func (w Window) HasMore() bool {
	return w.Displayed < w.Total
}

// ShouldAdvance combines the window bound with the sentinel's visibility.
func (w Window) ShouldAdvance(intersecting bool) bool {
	return w.HasMore() && intersecting
}

// Visible returns the displayed prefix of items.
func (w Window) Visible(items []Item) []Item {
	n := min(w.Displayed, len(items))
	return items[:n]
}

// SentinelKey identifies the sentinel rendered for this window state.
type SentinelKey struct {
	Generation uint64
	Displayed  int
}

func (w Window) SentinelKey() SentinelKey {
	return SentinelKey{Generation: w.Generation, Displayed: w.Displayed}
}
