package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/results"
)

func leetcodeRecords(n int) []string {
	records := make([]string, n)
	for i := range records {
		records[i] = fmt.Sprintf("https://leetcode.com/problems/p%d*Problem %d", i, i)
	}
	return records
}

func loaded(t *testing.T, sel platform.Selection, records []string) State {
	t.Helper()
	s := Reduce(New(sel, 10), Submitted{Query: "q", RequestID: "r1"})
	s = Reduce(s, ResponseArrived{SessionID: s.SessionID, Records: records})
	require.Equal(t, StatusLoaded, s.Status)
	return s
}

func TestNew(t *testing.T) {
	s := New(platform.NewSelection(platform.LeetCode), 10)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Nil(t, s.Items)
	assert.Empty(t, s.Visible())
	assert.False(t, s.HasMore())
}

func TestSubmittedClearsPreviousSession(t *testing.T) {
	s := loaded(t, platform.AllSelected(), leetcodeRecords(25))
	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	require.Equal(t, 20, s.Window.Displayed)

	prev := s.SessionID
	s = Reduce(s, Submitted{Query: "graphs", RequestID: "r2"})

	assert.Equal(t, prev+1, s.SessionID)
	assert.Equal(t, StatusLoading, s.Status)
	assert.Equal(t, "graphs", s.Query)
	assert.Equal(t, "r2", s.RequestID)
	assert.Nil(t, s.Items)
	assert.Empty(t, s.Filtered)
	assert.Equal(t, 0, s.Window.Displayed)
	assert.Equal(t, results.Stats{}, s.Stats)
	assert.NoError(t, s.Err)
}

func TestScenarioA(t *testing.T) {
	s := loaded(t, platform.NewSelection(platform.LeetCode), []string{
		"https://leetcode.com/p1*Two Sum",
		"https://codeforces.com/p2*B. Problem",
	})

	assert.Equal(t, []results.Item{
		{Link: "https://leetcode.com/p1", Title: "Two Sum", Platform: platform.LeetCode},
	}, s.Visible())
	assert.False(t, s.HasMore())
}

func TestScenarioB(t *testing.T) {
	s := loaded(t, platform.Selection{}, []string{
		"https://leetcode.com/p1*Two Sum",
		"https://codeforces.com/p2*B. Problem",
	})
	assert.Empty(t, s.Visible())
	assert.Equal(t, 0, s.Window.Total)
}

func TestScenarioC(t *testing.T) {
	s := loaded(t, platform.NewSelection(platform.LeetCode), leetcodeRecords(25))
	assert.Len(t, s.Visible(), 10)
	assert.True(t, s.HasMore())

	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	assert.Len(t, s.Visible(), 20)

	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	assert.Len(t, s.Visible(), 25)
	assert.False(t, s.HasMore())

	again := Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	assert.Equal(t, s.Window, again.Window)
}

func TestScenarioD(t *testing.T) {
	s := loaded(t, platform.AllSelected(), []string{
		"no-delimiter-here",
		"https://leetcode.com/p1*Two Sum",
	})

	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "Two Sum", s.Visible()[0].Title)
	assert.Equal(t, 1, s.Stats.Malformed)
}

func TestSessionIsolation(t *testing.T) {
	s := New(platform.AllSelected(), 10)
	s = Reduce(s, Submitted{Query: "first", RequestID: "r1"})
	first := s.SessionID
	s = Reduce(s, Submitted{Query: "second", RequestID: "r2"})
	second := s.SessionID

	// the first request comes back late
	late := Reduce(s, ResponseArrived{SessionID: first, Records: leetcodeRecords(3)})
	assert.Equal(t, s, late)
	assert.Equal(t, StatusLoading, late.Status)

	s = Reduce(s, ResponseArrived{SessionID: second, Records: []string{"https://codeforces.com/p*CF"}})
	require.Len(t, s.Visible(), 1)
	assert.Equal(t, "CF", s.Visible()[0].Title)

	// and once more after the current session has loaded
	after := Reduce(s, ResponseArrived{SessionID: first, Records: leetcodeRecords(3)})
	assert.Equal(t, s, after)
}

func TestDuplicateResponseIgnored(t *testing.T) {
	s := loaded(t, platform.AllSelected(), leetcodeRecords(15))
	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	require.Equal(t, 15, s.Window.Displayed)

	dup := Reduce(s, ResponseArrived{SessionID: s.SessionID, Records: leetcodeRecords(15)})
	assert.Equal(t, s, dup, "a second response for the same session must not reset the window")
}

func TestResponseFailure(t *testing.T) {
	s := Reduce(New(platform.AllSelected(), 10), Submitted{Query: "q"})
	boom := errors.New("connection refused")
	s = Reduce(s, ResponseArrived{SessionID: s.SessionID, Err: boom})

	assert.Equal(t, StatusFailed, s.Status)
	assert.ErrorIs(t, s.Err, boom)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Visible())
	assert.False(t, s.HasMore())
}

func TestFilterToggledResetsWindow(t *testing.T) {
	records := append(leetcodeRecords(25), "https://codeforces.com/p*CF")
	s := loaded(t, platform.NewSelection(platform.LeetCode), records)
	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	require.Equal(t, 20, s.Window.Displayed)

	s = Reduce(s, FilterToggled{Platform: platform.CodeForces})
	assert.True(t, s.Selection.Has(platform.CodeForces))
	assert.Equal(t, 26, s.Window.Total)
	assert.Equal(t, 10, s.Window.Displayed, "window restarts at one page after a filter change")

	s = Reduce(s, FilterToggled{Platform: platform.LeetCode})
	assert.Equal(t, 1, s.Window.Total)
	assert.Equal(t, "CF", s.Visible()[0].Title)
}

func TestFilterToggledBeforeAnySearch(t *testing.T) {
	s := Reduce(New(platform.NewSelection(platform.LeetCode), 10), FilterToggled{Platform: platform.CodeChef})
	assert.True(t, s.Selection.Has(platform.CodeChef))
	assert.Empty(t, s.Filtered)
	assert.NotNil(t, s.Filtered)
	assert.Equal(t, StatusIdle, s.Status)
}

func TestStaleSentinelIgnored(t *testing.T) {
	s := loaded(t, platform.AllSelected(), leetcodeRecords(40))
	oldKey := s.Window.SentinelKey()

	s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: oldKey})
	require.Equal(t, 20, s.Window.Displayed)

	// the same sentinel reported twice only grows the window once
	again := Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: oldKey})
	assert.Equal(t, 20, again.Window.Displayed)

	otherSession := Reduce(s, SentinelIntersected{SessionID: s.SessionID + 1, Key: s.Window.SentinelKey()})
	assert.Equal(t, 20, otherSession.Window.Displayed)
}

func TestResetOnRecompute(t *testing.T) {
	s := loaded(t, platform.AllSelected(), leetcodeRecords(35))
	for s.HasMore() {
		s = Reduce(s, SentinelIntersected{SessionID: s.SessionID, Key: s.Window.SentinelKey()})
	}
	require.Equal(t, 35, s.Window.Displayed)

	// toggling an unrelated platform still recomputes and resets
	s = Reduce(s, FilterToggled{Platform: platform.CodeChef})
	assert.Equal(t, 10, s.Window.Displayed)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "loaded", StatusLoaded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(99).String())
}

func TestReducerUsesCustomRegistry(t *testing.T) {
	r := NewReducer(results.NewParser(platform.Default()))
	s := r.Reduce(New(platform.AllSelected(), 5), Submitted{Query: "q"})
	s = r.Reduce(s, ResponseArrived{SessionID: s.SessionID, Records: leetcodeRecords(12)})
	assert.Len(t, s.Visible(), 5)
	assert.Equal(t, 12, s.Window.Total)
}
