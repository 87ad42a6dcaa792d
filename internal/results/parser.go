package results

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/platform"
)

// Delimiter separates the link from the title in a raw record.
const Delimiter = "*"

// ErrMalformedRecord is returned for records that cannot be split into a
// link and a title.
var ErrMalformedRecord = errors.New("malformed result record")

// Item is one decoded search result.
type Item struct {
	Link     string
	Title    string
	Platform platform.ID
}

// Record re-encodes the item in the wire format.
func (i Item) Record() string {
	return i.Link + Delimiter + i.Title
}

// Stats counts what happened while decoding one response.
type Stats struct {
	Received     int
	Malformed    int
	Unclassified int
}

// Parser decodes raw "<link>*<title>" records. It holds no mutable state.
type Parser struct {
	registry *platform.Registry
}

func NewParser(registry *platform.Registry) *Parser {
	if registry == nil {
		registry = platform.Default()
	}
	return &Parser{registry: registry}
}

// Parse splits record on the first delimiter. Anything after it, further
// delimiters included, is the title.
func (p *Parser) Parse(record string) (Item, error) {
	link, title, found := strings.Cut(record, Delimiter)
	if !found {
		return Item{}, fmt.Errorf("%w: no %q delimiter in %q", ErrMalformedRecord, Delimiter, record)
	}

	link = strings.TrimSpace(link)
	if link == "" {
		return Item{}, fmt.Errorf("%w: empty link in %q", ErrMalformedRecord, record)
	}

	return Item{
		Link:     link,
		Title:    strings.TrimSpace(title),
		Platform: p.Classify(link),
	}, nil
}

// Classify infers the platform of link.
func (p *Parser) Classify(link string) platform.ID {
	return p.registry.Classify(link)
}

// ParseAll decodes records in order, skipping malformed ones.
func (p *Parser) ParseAll(records []string) ([]Item, Stats) {
	stats := Stats{Received: len(records)}
	items := make([]Item, 0, len(records))

	for idx, record := range records {
		item, err := p.Parse(record)
		if err != nil {
			stats.Malformed++
			debuglog.WithFields(map[string]interface{}{
				"component": "parser",
				"index":     idx,
			}).Warnf("skipping record: %v", err)
			continue
		}
		if item.Platform == platform.Unclassified {
			stats.Unclassified++
			debuglog.Debugf("unclassified link %q", item.Link)
		}
		items = append(items, item)
	}

	return items, stats
}
