package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/algosearch/internal/browser"
	"github.com/pders01/algosearch/internal/config"
	"github.com/pders01/algosearch/internal/debuglog"
	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/results"
	"github.com/pders01/algosearch/internal/search"
	"github.com/pders01/algosearch/internal/session"
)

// chromeHeight is every line that is not the results pane: header, filter
// bar, the three-line input frame, status line, separator and help.
const chromeHeight = 8

// Opener opens a result link outside the terminal.
type Opener interface {
	Open(link string) error
}

type Options struct {
	Gateway  *search.Gateway
	Registry *platform.Registry
	Opener   Opener
}

type App struct {
	config     *config.Config
	gateway    *search.Gateway
	registry   *platform.Registry
	reducer    *session.Reducer
	opener     Opener
	keyHandler *KeyHandler
	observer   *IntersectionObserver

	state session.State

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model

	view       View
	cursor     int
	spinning   bool
	width      int
	height     int
	status     string
	statusKind StatusKind
}

func NewApp(cfg *config.Config, opts Options) *App {
	registry := opts.Registry
	if registry == nil {
		registry = platform.Default()
	}

	opener := opts.Opener
	if opener == nil {
		opener = browser.NewLauncher(cfg)
	}

	sel, err := platform.ParseSelection(cfg.UI.DefaultPlatforms)
	if err != nil {
		debuglog.Warnf("ignoring ui.default_platforms: %v", err)
		sel = platform.NewSelection(platform.LeetCode)
	}

	ti := textinput.New()
	ti.Placeholder = "Search problems, e.g. two sum"
	ti.CharLimit = maxQueryLength
	ti.Prompt = "› "
	ti.Focus()

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	app := &App{
		config:   cfg,
		gateway:  opts.Gateway,
		registry: registry,
		reducer:  session.NewReducer(results.NewParser(registry)),
		opener:   opener,
		observer: NewIntersectionObserver(cfg.UI.IntersectionThreshold),
		state:    session.New(sel, cfg.UI.PageSize),
		input:    ti,
		viewport: vp,
		spinner:  sp,
		help:     help.New(),
		view:     ViewSearch,
	}
	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

// State returns the current search state.
func (a *App) State() session.State {
	return a.state
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, a.syncResults()

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, tea.Batch(cmd, a.checkSentinel())

	case spinner.TickMsg:
		if !a.spinnerWanted() {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		a.refreshContent()
		return a, cmd

	case searchResponseMsg:
		return a, a.handleResponse(msg.resp)

	case sentinelMsg:
		a.dispatch(session.SentinelIntersected{SessionID: msg.sessionID, Key: msg.key})
		return a, a.syncResults()

	case linkOpenedMsg:
		a.setStatus(MsgOpened(msg.link), StatusSuccess)
		return a, nil

	case errorMsg:
		a.setStatus(msg.err.Error(), StatusError)
		return a, nil
	}

	if a.view == ViewSearch {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) dispatch(ev session.Event) {
	a.state = a.reducer.Reduce(a.state, ev)
}

func (a *App) handleResponse(resp search.Response) tea.Cmd {
	stale := resp.SessionID != a.state.SessionID
	a.dispatch(session.ResponseArrived{SessionID: resp.SessionID, Records: resp.Records, Err: resp.Err})
	if stale {
		return nil
	}
	a.resetScroll()

	switch a.state.Status {
	case session.StatusFailed:
		a.setStatus(MsgSearchFailed(a.state.Err), StatusError)
	case session.StatusLoaded:
		a.clearStatus()
		if len(a.state.Filtered) > 0 {
			a.view = ViewResults
			a.input.Blur()
		}
	}
	return a.syncResults()
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.viewport.Width = width
	a.viewport.Height = max(height-chromeHeight, 3)
	a.input.Width = max(width-8, 10)
	a.help.Width = width
}

func (a *App) resetScroll() {
	a.cursor = 0
	a.viewport.SetYOffset(0)
}

// syncResults re-renders the pane, reattaches the observer and starts the
// spinner when something is pending.
func (a *App) syncResults() tea.Cmd {
	a.refreshContent()
	a.clampCursor()
	return tea.Batch(a.checkSentinel(), a.startSpinner())
}

func (a *App) refreshContent() {
	a.viewport.SetContent(a.resultsContent())
}

func (a *App) resultsContent() string {
	switch a.state.Status {
	case session.StatusIdle:
		return renderCentered(a.viewport.Width, a.viewport.Height, GetWelcomeMessage())
	case session.StatusLoading:
		return "  " + a.spinner.View() + " " + renderMuted(MsgSearching)
	case session.StatusFailed:
		return "  " + ErrorMessageStyle.Render("✗ "+MsgSearchFailed(a.state.Err))
	}

	visible := a.state.Visible()
	if len(visible) == 0 {
		if a.state.Selection.Empty() {
			return "  " + renderMuted(MsgNoPlatforms)
		}
		return "  " + renderMuted(MsgNoResults)
	}

	rows := make([]string, 0, len(visible)+1)
	for i, item := range visible {
		rows = append(rows, renderRow(a.registry, item, a.view == ViewResults && i == a.cursor, a.viewport.Width))
	}
	if a.state.HasMore() {
		rows = append(rows, renderSentinel(a.spinner.View(), a.config.UI.SentinelHeight))
	}
	return strings.Join(rows, "\n")
}

func (a *App) sentinelTarget() Target {
	return Target{
		Top:    len(a.state.Visible()) * rowHeight,
		Height: a.config.UI.SentinelHeight,
	}
}

// checkSentinel keeps the observer attached to the current sentinel and
// turns an intersection into a message for the update loop.
func (a *App) checkSentinel() tea.Cmd {
	if !a.state.HasMore() {
		a.observer.Disconnect()
		return nil
	}

	a.observer.Observe(a.state.Window.SentinelKey(), a.sentinelTarget())
	key, ok := a.observer.Check(Geometry{Offset: a.viewport.YOffset, Height: a.viewport.Height})
	if !ok {
		return nil
	}

	sessionID := a.state.SessionID
	return func() tea.Msg {
		return sentinelMsg{sessionID: sessionID, key: key}
	}
}

func (a *App) spinnerWanted() bool {
	return a.state.Status == session.StatusLoading || a.state.HasMore()
}

func (a *App) startSpinner() tea.Cmd {
	if a.spinning || !a.spinnerWanted() {
		return nil
	}
	a.spinning = true
	return a.spinner.Tick
}

func (a *App) setStatus(text string, kind StatusKind) {
	a.status = text
	a.statusKind = kind
}

func (a *App) clearStatus() {
	a.status = ""
	a.statusKind = StatusInfo
}

func (a *App) clampCursor() {
	n := len(a.state.Visible())
	if a.cursor >= n {
		a.cursor = max(n-1, 0)
	}
}

// moveCursor moves the selection by delta rows and scrolls to keep it in
// view. Moving past the last row scrolls the pane so the sentinel can come
// into view.
func (a *App) moveCursor(delta int) tea.Cmd {
	n := len(a.state.Visible())
	if n == 0 {
		return nil
	}

	next := a.cursor + delta
	switch {
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
		a.viewport.SetYOffset(a.viewport.YOffset + rowHeight)
	}
	a.cursor = next
	a.ensureCursorVisible()
	a.refreshContent()
	return a.checkSentinel()
}

func (a *App) ensureCursorVisible() {
	top := a.cursor * rowHeight
	bottom := top + rowHeight
	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom > a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(bottom - a.viewport.Height)
	}
}

func (a *App) scrollPage(dir int) tea.Cmd {
	a.viewport.SetYOffset(a.viewport.YOffset + dir*a.viewport.Height)
	a.cursor = min(a.viewport.YOffset/rowHeight, max(len(a.state.Visible())-1, 0))
	a.refreshContent()
	return a.checkSentinel()
}

func (a *App) selectedItem() (results.Item, bool) {
	visible := a.state.Visible()
	if a.cursor < 0 || a.cursor >= len(visible) {
		return results.Item{}, false
	}
	return visible[a.cursor], true
}

func (a *App) View() string {
	header := renderHeader("› "+AppName, a.headerSubtitle(), a.width)
	filters := renderFilterBar(a.registry, a.state.Selection, a.keyHandler.ToggleLabels())
	input := renderInputFrame(a.input.View(), a.view == ViewSearch, a.input.Width)

	separator := SeparatorStyle.Render(strings.Repeat("─", max(a.width, 1)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		filters,
		input,
		a.statusLine(),
		a.viewport.View(),
		separator,
		lipgloss.NewStyle().Padding(0, 1).Render(a.help.ShortHelpView(a.keyHandler.ShortHelp())),
	)
}

func (a *App) headerSubtitle() string {
	if a.state.Query == "" {
		return ""
	}
	return "results for \"" + a.state.Query + "\""
}

func (a *App) statusLine() string {
	if a.status != "" {
		style := StatusInfoStyle
		switch a.statusKind {
		case StatusSuccess:
			style = StatusSuccessStyle
		case StatusWarn:
			style = StatusWarnStyle
		case StatusError:
			style = StatusErrorStyle
		}
		return style.Render(truncateEnd(a.status, max(a.width-2, 1)))
	}

	if a.state.Status != session.StatusLoaded {
		return ""
	}

	line := MsgResultsCount(a.state.Window.Displayed, a.state.Window.Total)
	if debuglog.Enabled(debuglog.LevelDebug) {
		s := a.state.Stats
		line += " • " + MsgStats(s.Received, s.Malformed, s.Unclassified)
	}
	return StatusInfoStyle.Render(line)
}
