package session

import (
	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/results"
)

// Event is one input to Reduce.
type Event interface {
	event()
}

// Submitted starts a new session for Query.
type Submitted struct {
	Query     string
	RequestID string
}

// ResponseArrived carries the outcome of the request issued for SessionID.
type ResponseArrived struct {
	SessionID uint64
	Records   []string
	Err       error
}

// FilterToggled flips one platform in the selection.
type FilterToggled struct {
	Platform platform.ID
}

// SentinelIntersected reports that the sentinel identified by Key became
// visible.
type SentinelIntersected struct {
	SessionID uint64
	Key       results.SentinelKey
}

func (Submitted) event()           {}
func (ResponseArrived) event()     {}
func (FilterToggled) event()       {}
func (SentinelIntersected) event() {}
