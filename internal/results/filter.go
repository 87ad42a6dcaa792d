package results

import "github.com/pders01/algosearch/internal/platform"

// Apply returns the items whose platform is active in sel, in their original
// order. The result is always a fresh, non-nil slice.
func Apply(items []Item, sel platform.Selection) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if sel.Has(item.Platform) {
			out = append(out, item)
		}
	}
	return out
}

// Recompute parses records and filters them against sel. A nil record set
// (no session yet) yields an empty set.
func (p *Parser) Recompute(records []string, sel platform.Selection) []Item {
	if records == nil {
		return []Item{}
	}
	items, _ := p.ParseAll(records)
	return Apply(items, sel)
}
