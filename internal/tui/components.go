package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/results"
)

// rowHeight is the number of content lines one result occupies.
const rowHeight = 2

// renderHeader returns a consistently styled header with an optional muted subtitle.
func renderHeader(title, subtitle string, width int) string {
	line := HeaderStyle.Render(truncateEnd(title, width-2))
	if subtitle != "" {
		line += " " + renderMuted(truncateEnd(subtitle, width-lipgloss.Width(line)-3))
	}
	return line
}

// renderInputFrame draws a rounded bordered container around a rendered input view.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := MutedColor
	if focused {
		borderColor = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 4).
		Render(inputView)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}

func renderBadge(info platform.Info) string {
	return lipgloss.NewStyle().
		Foreground(BackgroundColor).
		Background(lipgloss.Color(info.Accent)).
		Bold(true).
		Padding(0, 1).
		Render(info.Label)
}

// renderFilterBar shows one chip per platform with its toggle key.
func renderFilterBar(reg *platform.Registry, sel platform.Selection, keys map[platform.ID]string) string {
	var chips []string
	for _, info := range reg.All() {
		mark := "[ ]"
		style := lipgloss.NewStyle().Foreground(MutedColor)
		if sel.Has(info.ID) {
			mark = "[x]"
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(info.Accent)).Bold(true)
		}
		chip := style.Render(mark + " " + info.Label)
		if k := keys[info.ID]; k != "" {
			chip += " " + renderMuted(k)
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, "   ")
}

// renderRow draws one result as rowHeight lines.
func renderRow(reg *platform.Registry, item results.Item, selected bool, width int) string {
	cursor := "  "
	titleStyle := TitleTextStyle
	if selected {
		cursor = CursorStyle.Render("› ")
		titleStyle = SelectedStyle
	}

	badge := ""
	if info, ok := reg.Lookup(item.Platform); ok {
		badge = renderBadge(info) + " "
	}

	// each row must stay exactly rowHeight lines tall
	title := strings.Join(strings.Fields(item.Title), " ")
	if title == "" {
		title = item.Link
	}
	room := width - lipgloss.Width(cursor) - lipgloss.Width(badge)
	first := cursor + badge + titleStyle.Render(truncateEnd(title, room))
	second := "  " + LinkStyle.Render(truncateMiddle(item.Link, width-2))

	return first + "\n" + second
}

// renderSentinel draws the "loading more" row. It always spans height lines
// so its position and size match the observer target.
func renderSentinel(spinnerView string, height int) string {
	lines := make([]string, max(height, 1))
	lines[0] = "  " + spinnerView + " " + renderMuted(MsgLoadingMore)
	return strings.Join(lines, "\n")
}
