package results

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pders01/algosearch/internal/platform"
)

var scenarioRecords = []string{
	"https://leetcode.com/p1*Two Sum",
	"https://codeforces.com/p2*B. Problem",
}

func TestRecompute_ScenarioA(t *testing.T) {
	p := NewParser(nil)
	sel := platform.NewSelection(platform.LeetCode)

	got := p.Recompute(scenarioRecords, sel)

	assert.Equal(t, []Item{
		{Link: "https://leetcode.com/p1", Title: "Two Sum", Platform: platform.LeetCode},
	}, got)
}

func TestRecompute_ScenarioB(t *testing.T) {
	got := NewParser(nil).Recompute(scenarioRecords, platform.Selection{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecompute_ScenarioD(t *testing.T) {
	records := []string{"no-delimiter-here", "https://leetcode.com/p1*Two Sum"}
	got := NewParser(nil).Recompute(records, platform.AllSelected())

	assert.Len(t, got, 1)
	assert.Equal(t, "https://leetcode.com/p1", got[0].Link)
}

func TestRecompute_NoSession(t *testing.T) {
	got := NewParser(nil).Recompute(nil, platform.AllSelected())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_PreservesOrder(t *testing.T) {
	items := mixedItems(12)
	got := Apply(items, platform.NewSelection(platform.CodeForces, platform.CodeChef))

	var want []Item
	for _, it := range items {
		if it.Platform == platform.CodeForces || it.Platform == platform.CodeChef {
			want = append(want, it)
		}
	}
	assert.Equal(t, want, got)
}

func TestApply_UnclassifiedNeverPasses(t *testing.T) {
	items := []Item{{Link: "https://atcoder.jp", Platform: platform.Unclassified}}
	assert.Empty(t, Apply(items, platform.AllSelected()))
}

func TestApply_Monotonicity(t *testing.T) {
	items := mixedItems(30)

	for _, base := range allSelections() {
		before := Apply(items, base)
		for _, id := range platform.Known {
			if base.Has(id) {
				// disabling only removes that platform's items
				after := Apply(items, base.With(id, false))
				assert.Equal(t, withoutPlatform(before, id), after)
				continue
			}
			// enabling never removes existing items
			after := Apply(items, base.With(id, true))
			assert.Equal(t, before, withoutPlatform(after, id))
		}
	}
}

func mixedItems(n int) []Item {
	ids := []platform.ID{platform.LeetCode, platform.CodeForces, platform.CodeChef, platform.Unclassified}
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Link:     fmt.Sprintf("https://host/%d", i),
			Title:    fmt.Sprintf("Problem %d", i),
			Platform: ids[i%len(ids)],
		}
	}
	return items
}

func allSelections() []platform.Selection {
	var out []platform.Selection
	for mask := 0; mask < 8; mask++ {
		var s platform.Selection
		for bit, id := range platform.Known {
			if mask&(1<<bit) != 0 {
				s = s.With(id, true)
			}
		}
		out = append(out, s)
	}
	return out
}

func withoutPlatform(items []Item, id platform.ID) []Item {
	out := []Item{}
	for _, it := range items {
		if it.Platform != id {
			out = append(out, it)
		}
	}
	return out
}
