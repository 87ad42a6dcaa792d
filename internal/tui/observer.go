package tui

import "github.com/pders01/algosearch/internal/results"

// Target is the line span a sentinel occupies inside the results pane
// content.
type Target struct {
	Top    int
	Height int
}

// Geometry is the part of the content currently shown by the pane.
type Geometry struct {
	Offset int
	Height int
}

// VisibleFraction returns how much of t lies inside g, in [0, 1].
func VisibleFraction(t Target, g Geometry) float64 {
	if t.Height <= 0 || g.Height <= 0 {
		return 0
	}
	top := max(t.Top, g.Offset)
	bottom := min(t.Top+t.Height, g.Offset+g.Height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(t.Height)
}

// IntersectionObserver watches a single sentinel and reports when it becomes
// visible. A notification is delivered once per crossing of the threshold;
// observing a different sentinel re-arms it so a sentinel that is already on
// screen is reported immediately.
type IntersectionObserver struct {
	threshold float64

	observing bool
	key       results.SentinelKey
	target    Target
	armed     bool
}

func NewIntersectionObserver(threshold float64) *IntersectionObserver {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.1
	}
	return &IntersectionObserver{threshold: threshold}
}

// Observe attaches to the sentinel identified by key. Re-observing the same
// key only updates its position.
func (o *IntersectionObserver) Observe(key results.SentinelKey, target Target) {
	if !o.observing || o.key != key {
		o.armed = true
	}
	o.observing = true
	o.key = key
	o.target = target
}

// Disconnect detaches from the current sentinel.
func (o *IntersectionObserver) Disconnect() {
	o.observing = false
	o.armed = false
	o.key = results.SentinelKey{}
	o.target = Target{}
}

// Observing reports whether a sentinel is attached.
func (o *IntersectionObserver) Observing() bool {
	return o.observing
}

// Check reports the observed key when the sentinel has just become
// sufficiently visible.
func (o *IntersectionObserver) Check(g Geometry) (results.SentinelKey, bool) {
	if !o.observing {
		return results.SentinelKey{}, false
	}

	if VisibleFraction(o.target, g) < o.threshold {
		o.armed = true
		return results.SentinelKey{}, false
	}

	if !o.armed {
		return results.SentinelKey{}, false
	}
	o.armed = false
	return o.key, true
}
