package session

import (
	"context"

	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/results"
	"github.com/pders01/algosearch/internal/search"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is everything the search screen knows. It is only ever replaced
// through Reduce.
type State struct {
	SessionID uint64
	RequestID string
	Query     string
	Status    Status

	// Items is nil until the first response of the session arrives.
	Items     []results.Item
	Selection platform.Selection
	Filtered  []results.Item
	Window    results.Window

	Err   error
	Stats results.Stats
}

// New returns the idle state shown before the first search.
func New(sel platform.Selection, pageSize int) State {
	w := results.NewWindow(pageSize).Reset(0)
	return State{
		Status:    StatusIdle,
		Selection: sel,
		Filtered:  []results.Item{},
		Window:    w,
	}
}

// Visible is the displayed prefix of the filtered set.
func (s State) Visible() []results.Item {
	return s.Window.Visible(s.Filtered)
}

// HasMore reports whether the loading sentinel should be rendered.
func (s State) HasMore() bool {
	return s.Status == StatusLoaded && s.Window.HasMore()
}

// Reducer applies events to a State. It is safe for concurrent use because
// it never mutates its inputs.
type Reducer struct {
	parser *results.Parser
}

func NewReducer(parser *results.Parser) *Reducer {
	if parser == nil {
		parser = results.NewParser(nil)
	}
	return &Reducer{parser: parser}
}

var defaultReducer = NewReducer(nil)

// Reduce applies ev to s using the built-in platform registry.
func Reduce(s State, ev Event) State {
	return defaultReducer.Reduce(s, ev)
}

func (r *Reducer) Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Submitted:
		return r.submitted(s, e)
	case ResponseArrived:
		return r.responseArrived(s, e)
	case FilterToggled:
		return r.filterToggled(s, e)
	case SentinelIntersected:
		return r.sentinelIntersected(s, e)
	default:
		return s
	}
}

func (r *Reducer) submitted(s State, e Submitted) State {
	s.SessionID++
	s.RequestID = e.RequestID
	s.Query = e.Query
	s.Status = StatusLoading
	s.Items = nil
	s.Filtered = []results.Item{}
	s.Window = s.Window.Reset(0)
	s.Err = nil
	s.Stats = results.Stats{}
	return s
}

func (r *Reducer) responseArrived(s State, e ResponseArrived) State {
	if e.SessionID != s.SessionID || s.Status != StatusLoading {
		debuglog.WithFields(map[string]interface{}{
			"component": "session",
			"session":   s.SessionID,
			"stale":     e.SessionID,
		}).Debugf("dropping stale response")
		return s
	}

	if e.Err != nil {
		s.Status = StatusFailed
		s.Err = e.Err
		s.Items = []results.Item{}
		s.Filtered = []results.Item{}
		s.Window = s.Window.Reset(0)
		return s
	}

	items, stats := r.parser.ParseAll(e.Records)
	s.Status = StatusLoaded
	s.Items = items
	s.Stats = stats
	return s.refilter()
}

func (r *Reducer) filterToggled(s State, e FilterToggled) State {
	s.Selection = s.Selection.Toggle(e.Platform)
	return s.refilter()
}

func (r *Reducer) sentinelIntersected(s State, e SentinelIntersected) State {
	if e.SessionID != s.SessionID || e.Key != s.Window.SentinelKey() {
		return s
	}
	if !s.Window.ShouldAdvance(true) {
		return s
	}
	s.Window, _ = s.Window.Advance()
	return s
}

func (s State) refilter() State {
	s.Filtered = results.Apply(s.Items, s.Selection)
	s.Window = s.Window.Reset(len(s.Filtered))
	return s
}

// Fetcher issues the request for one session. *search.Gateway satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, sessionID uint64, requestID, query string) search.Response
}

// RunOnce drives a whole session without a terminal: submit, wait for the
// response, then grow the window until pages pages are displayed.
func (r *Reducer) RunOnce(ctx context.Context, f Fetcher, s State, query string, pages int) State {
	requestID := search.NewRequestID()
	s = r.Reduce(s, Submitted{Query: query, RequestID: requestID})

	resp := f.Fetch(ctx, s.SessionID, requestID, query)
	s = r.Reduce(s, ResponseArrived{SessionID: resp.SessionID, Records: resp.Records, Err: resp.Err})

	for page := 1; page < pages && s.HasMore(); page++ {
		s = r.Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	}
	return s
}
