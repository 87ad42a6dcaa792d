package tui

import (
	"fmt"
	"strings"
)

// StatusKind indicates severity for status messages.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarn
	StatusError
)

const (
	MsgSearching   = "Searching…"
	MsgLoadingMore = "Loading more…"
	MsgNoResults   = "No results found. Try a different keyword."
	MsgNoPlatforms = "No platforms selected. Toggle one to see results."
	MsgIdle        = "Type a problem name and press enter"
)

func MsgSearchFailed(err error) string {
	return fmt.Sprintf("Search failed: %v", err)
}

// MsgResultsCount describes the window, e.g. "10 of 25 results".
func MsgResultsCount(shown, total int) string {
	if total == 1 {
		return "1 result"
	}
	if shown == total {
		return fmt.Sprintf("%d results", total)
	}
	return fmt.Sprintf("%d of %d results", shown, total)
}

func MsgStats(received, malformed, unclassified int) string {
	parts := []string{fmt.Sprintf("recv: %d", received)}
	if malformed > 0 {
		parts = append(parts, fmt.Sprintf("malformed: %d", malformed))
	}
	if unclassified > 0 {
		parts = append(parts, fmt.Sprintf("other: %d", unclassified))
	}
	return strings.Join(parts, " • ")
}

func MsgOpened(link string) string {
	return "Opened " + link
}
