package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_FetchTagsSession(t *testing.T) {
	var seenID string
	g := NewGateway(SearcherFunc(func(ctx context.Context, query string) ([]string, error) {
		seenID = RequestIDFromContext(ctx)
		return []string{"https://leetcode.com/p1*" + query}, nil
	}), 0, 1)

	resp := g.Fetch(context.Background(), 42, "req-1", "Two Sum")

	require.NoError(t, resp.Err)
	assert.Equal(t, uint64(42), resp.SessionID)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "Two Sum", resp.Query)
	assert.Equal(t, []string{"https://leetcode.com/p1*Two Sum"}, resp.Records)
	assert.Equal(t, "req-1", seenID)
}

func TestGateway_FetchError(t *testing.T) {
	boom := errors.New("connection refused")
	g := NewGateway(SearcherFunc(func(context.Context, string) ([]string, error) {
		return nil, boom
	}), 0, 1)

	resp := g.Fetch(context.Background(), 3, "req", "dp")
	assert.ErrorIs(t, resp.Err, boom)

	var searchErr *Error
	require.True(t, errors.As(resp.Err, &searchErr))
	assert.Equal(t, "req", searchErr.RequestID)
	assert.Contains(t, resp.Err.Error(), "connection refused")
	assert.Nil(t, resp.Records)
	assert.Equal(t, uint64(3), resp.SessionID)
}

func TestGateway_NilRecordsBecomeEmpty(t *testing.T) {
	g := NewGateway(SearcherFunc(func(context.Context, string) ([]string, error) {
		return nil, nil
	}), 0, 1)

	resp := g.Fetch(context.Background(), 1, "req", "q")
	require.NoError(t, resp.Err)
	assert.NotNil(t, resp.Records)
	assert.Empty(t, resp.Records)
}

func TestGateway_EmptyQueryIsSent(t *testing.T) {
	var got *string
	g := NewGateway(SearcherFunc(func(_ context.Context, q string) ([]string, error) {
		got = &q
		return []string{}, nil
	}), 0, 1)

	resp := g.Fetch(context.Background(), 1, "req", "")
	require.NoError(t, resp.Err)
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}

func TestGateway_RateLimitHonoursContext(t *testing.T) {
	g := NewGateway(SearcherFunc(func(context.Context, string) ([]string, error) {
		return []string{}, nil
	}), 0.001, 1)

	first := g.Fetch(context.Background(), 1, "a", "q")
	require.NoError(t, first.Err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	second := g.Fetch(ctx, 2, "b", "q")
	assert.Error(t, second.Err, "second request must wait for a token and give up with the context")
}

func TestNewRequestID(t *testing.T) {
	a := NewRequestID()
	b := NewRequestID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
