package search

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"

	"github.com/pders01/algosearch/internal/debuglog"
)

// Response is the outcome of one search, tagged with the session that
// issued it so late arrivals can be recognised and dropped.
type Response struct {
	SessionID uint64
	RequestID string
	Query     string
	Records   []string
	Err       error
	Elapsed   time.Duration
}

// Gateway rate-limits searches and tags every response with its session.
type Gateway struct {
	searcher Searcher
	limiter  *rate.Limiter
}

// NewGateway wraps s. A limit of zero or less disables throttling.
func NewGateway(s Searcher, limit float64, burst int) *Gateway {
	l := rate.Inf
	if limit > 0 {
		l = rate.Limit(limit)
	}
	if burst < 1 {
		burst = 1
	}
	return &Gateway{
		searcher: s,
		limiter:  rate.NewLimiter(l, burst),
	}
}

// NewRequestID returns a sortable correlation ID for one request.
func NewRequestID() string {
	return ulid.Make().String()
}

// Fetch runs one search for sessionID. Errors are reported in the response,
// never dropped, so the caller can show a failure state.
func (g *Gateway) Fetch(ctx context.Context, sessionID uint64, requestID, query string) Response {
	start := time.Now()
	resp := Response{SessionID: sessionID, RequestID: requestID, Query: query}

	logger := debuglog.WithFields(map[string]interface{}{
		"component":  "gateway",
		"session":    sessionID,
		"request_id": requestID,
	})

	if err := g.limiter.Wait(ctx); err != nil {
		resp.Err = &Error{Op: "throttle", RequestID: requestID, Err: err}
		logger.Warnf("search throttled: %v", resp.Err)
		return resp
	}

	logger.Debugf("searching for %q", query)
	records, err := g.searcher.Search(WithRequestID(ctx, requestID), query)
	resp.Elapsed = time.Since(start)
	if err != nil {
		resp.Err = &Error{Op: "search", RequestID: requestID, Err: err}
		logger.Errorf("search failed after %s: %v", resp.Elapsed, err)
		return resp
	}
	if records == nil {
		records = []string{}
	}
	resp.Records = records
	logger.Infof("received %d records in %s", len(records), resp.Elapsed)
	return resp
}
