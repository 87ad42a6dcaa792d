// Package report renders a finished search session for non-interactive use.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/session"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
	}
}

type Entry struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Platform string `json:"platform"`
}

type Report struct {
	Query     string   `json:"query"`
	RequestID string   `json:"request_id,omitempty"`
	Platforms []string `json:"platforms"`
	Shown     int      `json:"shown"`
	Total     int      `json:"total"`
	Results   []Entry  `json:"results"`
	Error     string   `json:"error,omitempty"`
}

// New captures the visible part of s.
func New(s session.State, reg *platform.Registry) Report {
	if reg == nil {
		reg = platform.Default()
	}

	visible := s.Visible()
	r := Report{
		Query:     s.Query,
		RequestID: s.RequestID,
		Platforms: s.Selection.Keys(),
		Shown:     len(visible),
		Total:     s.Window.Total,
		Results:   make([]Entry, 0, len(visible)),
	}
	if s.Err != nil {
		r.Error = s.Err.Error()
	}
	for _, item := range visible {
		r.Results = append(r.Results, Entry{
			Title:    item.Title,
			Link:     item.Link,
			Platform: reg.Label(item.Platform),
		})
	}
	return r
}

func (r Report) Text() string {
	var b strings.Builder
	if r.Error != "" {
		fmt.Fprintf(&b, "search failed: %s\n", r.Error)
		return b.String()
	}
	if len(r.Results) == 0 {
		b.WriteString("No results found.\n")
		return b.String()
	}
	for _, e := range r.Results {
		fmt.Fprintf(&b, "[%s] %s\n  %s\n", e.Platform, e.Title, e.Link)
	}
	fmt.Fprintf(&b, "\nShowing %d of %d results\n", r.Shown, r.Total)
	return b.String()
}

func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Results for %q\n\n", r.Query)
	if r.Error != "" {
		fmt.Fprintf(&b, "**Search failed:** %s\n", r.Error)
		return b.String()
	}
	if len(r.Results) == 0 {
		b.WriteString("_No results found._\n")
		return b.String()
	}
	for _, e := range r.Results {
		title := strings.NewReplacer("[", "\\[", "]", "\\]").Replace(e.Title)
		fmt.Fprintf(&b, "- **%s** [%s](%s)\n", e.Platform, title, e.Link)
	}
	fmt.Fprintf(&b, "\n_Showing %d of %d results._\n", r.Shown, r.Total)
	return b.String()
}

// Options control markdown rendering. An empty Style picks one from the
// terminal background.
type Options struct {
	Style    string
	WordWrap int
}

func Write(w io.Writer, r Report, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatMarkdown:
		out, err := render(r.Markdown(), opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, r.Text())
		return err
	}
}

func render(md string, opts Options) (string, error) {
	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 100
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
