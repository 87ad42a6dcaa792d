package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/algosearch/internal/config"
	"github.com/pders01/algosearch/internal/platform"
)

type keyMap struct {
	Submit   key.Binding
	Open     key.Binding
	Focus    key.Binding
	Search   key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Back     key.Binding
	Quit     key.Binding
	Toggle   map[platform.ID]key.Binding
}

type KeyHandler struct {
	app         *App
	config      *config.Config
	modifierKey string
	keys        keyMap
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	modifierKey := cfg.Keys.Modifier + "+"
	b := cfg.Keys.Bindings

	toggle := func(suffix, label string) key.Binding {
		k := modifierKey + suffix
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, label))
	}

	keys := keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Focus:    key.NewBinding(key.WithKeys(b.Focus), key.WithHelp(b.Focus, "focus")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search box")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Back:     key.NewBinding(key.WithKeys(b.Back), key.WithHelp(b.Back, "back")),
		Quit:     key.NewBinding(key.WithKeys(modifierKey+b.Quit, "ctrl+c"), key.WithHelp(modifierKey+b.Quit, "quit")),
		Toggle: map[platform.ID]key.Binding{
			platform.LeetCode:   toggle(b.ToggleLeetCode, "leetcode"),
			platform.CodeForces: toggle(b.ToggleCodeForces, "codeforces"),
			platform.CodeChef:   toggle(b.ToggleCodeChef, "codechef"),
		},
	}

	return &KeyHandler{app: app, config: cfg, modifierKey: modifierKey, keys: keys}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, kh.keys.Quit) {
		return kh.app, tea.Quit
	}

	for _, id := range platform.Known {
		if key.Matches(msg, kh.keys.Toggle[id]) {
			return kh.app, kh.app.toggle(id)
		}
	}

	switch {
	case key.Matches(msg, kh.keys.Back):
		return kh.navigateBack()
	case key.Matches(msg, kh.keys.Focus):
		return kh.switchFocus()
	}

	if kh.app.view == ViewSearch {
		return kh.handleSearchKeys(msg)
	}
	return kh.handleResultsKeys(msg)
}

func (kh *KeyHandler) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, kh.keys.Submit):
		query := sanitizeQuery(kh.app.input.Value())
		return kh.app, kh.app.submit(query)
	case msg.String() == "down":
		if len(kh.app.state.Visible()) > 0 {
			return kh.focusResults()
		}
		return kh.app, nil
	}

	var cmd tea.Cmd
	kh.app.input, cmd = kh.app.input.Update(msg)
	return kh.app, cmd
}

func (kh *KeyHandler) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, kh.keys.Open):
		if item, ok := kh.app.selectedItem(); ok {
			return kh.app, kh.app.openLink(item.Link)
		}
		return kh.app, nil
	case key.Matches(msg, kh.keys.Up):
		if kh.app.cursor == 0 {
			return kh.focusSearch()
		}
		return kh.app, kh.app.moveCursor(-1)
	case key.Matches(msg, kh.keys.Down):
		return kh.app, kh.app.moveCursor(1)
	case key.Matches(msg, kh.keys.PageUp):
		return kh.app, kh.app.scrollPage(-1)
	case key.Matches(msg, kh.keys.PageDown):
		return kh.app, kh.app.scrollPage(1)
	case key.Matches(msg, kh.keys.Search):
		return kh.focusSearch()
	}
	return kh.app, nil
}

func (kh *KeyHandler) navigateBack() (tea.Model, tea.Cmd) {
	if kh.app.view == ViewResults {
		return kh.focusSearch()
	}
	if kh.app.input.Value() != "" {
		kh.app.input.Reset()
		return kh.app, nil
	}
	return kh.app, tea.Quit
}

func (kh *KeyHandler) switchFocus() (tea.Model, tea.Cmd) {
	if kh.app.view == ViewResults {
		return kh.focusSearch()
	}
	if len(kh.app.state.Visible()) == 0 {
		return kh.app, nil
	}
	return kh.focusResults()
}

func (kh *KeyHandler) focusSearch() (tea.Model, tea.Cmd) {
	kh.app.view = ViewSearch
	cmd := kh.app.input.Focus()
	kh.app.refreshContent()
	return kh.app, cmd
}

func (kh *KeyHandler) focusResults() (tea.Model, tea.Cmd) {
	kh.app.view = ViewResults
	kh.app.input.Blur()
	kh.app.clampCursor()
	kh.app.refreshContent()
	return kh.app, nil
}

// ToggleLabels returns the key shown next to each platform chip.
func (kh *KeyHandler) ToggleLabels() map[platform.ID]string {
	labels := make(map[platform.ID]string, len(kh.keys.Toggle))
	for id, b := range kh.keys.Toggle {
		labels[id] = b.Help().Key
	}
	return labels
}

// ShortHelp returns the bindings shown in the status bar for the current view.
func (kh *KeyHandler) ShortHelp() []key.Binding {
	if kh.app.view == ViewResults {
		return []key.Binding{kh.keys.Up, kh.keys.Down, kh.keys.Open, kh.keys.Focus, kh.keys.Back, kh.keys.Quit}
	}
	return []key.Binding{kh.keys.Submit, kh.keys.Focus, kh.keys.Toggle[platform.LeetCode], kh.keys.Toggle[platform.CodeForces], kh.keys.Toggle[platform.CodeChef], kh.keys.Quit}
}
