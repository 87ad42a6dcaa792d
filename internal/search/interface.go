package search

import "context"

// Searcher issues one search and returns the raw "<link>*<title>" records in
// endpoint order. A nil slice with a nil error means zero results.
type Searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// SearcherFunc adapts a function to Searcher.
type SearcherFunc func(ctx context.Context, query string) ([]string, error)

func (f SearcherFunc) Search(ctx context.Context, query string) ([]string, error) {
	return f(ctx, query)
}

type requestIDKey struct{}

// WithRequestID attaches a correlation ID that the HTTP client forwards as
// the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the correlation ID, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
