package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/algosearch/internal/config"
)

const AppName = "algosearch"

var LogoLines = []string{
	"▄▀█ █░░ █▀▀ █▀█ █▀ █▀▀ ▄▀█ █▀█ █▀▀ █░█",
	"█▀█ █▄▄ █▄█ █▄█ ▄█ ██▄ █▀█ █▀▄ █▄▄ █▀█",
}

const CompactLogo = `algosearch ›`

var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FACC15"),
	lipgloss.Color("#F87171"),
	lipgloss.Color("#FB923C"),
}

var (
	PrimaryColor   = lipgloss.Color("#60A5FA")
	SecondaryColor = lipgloss.Color("#A78BFA")
	AccentColor    = lipgloss.Color("#22C55E")

	BackgroundColor = lipgloss.Color("#1A1A2E")
	TextColor       = lipgloss.Color("#EAEAEA")
	MutedColor      = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#F87171")
	SuccessColor = lipgloss.Color("#4ADE80")
	WarnColor    = lipgloss.Color("#FFE66D")
)

var (
	LogoStyle         lipgloss.Style
	HeaderStyle       lipgloss.Style
	HelpStyle         lipgloss.Style
	TitleTextStyle    lipgloss.Style
	LinkStyle         lipgloss.Style
	SelectedStyle     lipgloss.Style
	CursorStyle       lipgloss.Style
	SeparatorStyle    lipgloss.Style
	ErrorMessageStyle lipgloss.Style

	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// ApplyColors replaces the palette with the configured colors. Empty values
// keep the built-in color.
func ApplyColors(c config.UIColors) {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&PrimaryColor, c.Primary)
	set(&SecondaryColor, c.Secondary)
	set(&AccentColor, c.Accent)
	set(&TextColor, c.Text)
	set(&MutedColor, c.Muted)
	set(&ErrorColor, c.Error)
	set(&SuccessColor, c.Success)
	buildStyles()
}

func buildStyles() {
	LogoStyle = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
	TitleTextStyle = lipgloss.NewStyle().Foreground(TextColor)
	LinkStyle = lipgloss.NewStyle().Foreground(MutedColor).Faint(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true)
	CursorStyle = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	SeparatorStyle = lipgloss.NewStyle().Foreground(MutedColor)
	ErrorMessageStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().Foreground(MutedColor)
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusWarnStyle = lipgloss.NewStyle().Foreground(WarnColor)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Type a problem name and press enter")
}

func GetCompactBanner(message string) string {
	var lines []string
	for _, line := range LogoLines {
		lines = append(lines, LogoStyle.Render(line))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
		"",
		HelpStyle.Render(message),
	)
}

// Banner renders the startup banner printed by the CLI.
func Banner(version string) string {
	lines := append([]string{}, LogoLines...)
	lines = append(lines, "")

	tagline := "Search LeetCode, CodeForces and CodeChef"
	if version != "" && version != "dev" {
		if version[0] != 'v' && version[0] != 'V' {
			version = "v" + version
		}
		tagline = fmt.Sprintf("%s %s", tagline, version)
	}
	lines = append(lines, tagline)

	var colored []string
	for i, line := range lines {
		if line == "" {
			colored = append(colored, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))
		colored = append(colored, style.Render(line))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, colored...))

	return lipgloss.NewStyle().Width(70).Align(lipgloss.Center).Render(box)
}

func ShowBanner(version string) {
	fmt.Println(Banner(version))
}
