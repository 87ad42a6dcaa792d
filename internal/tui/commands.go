package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/algosearch/internal/platform"
	"github.com/pders01/algosearch/internal/search"
	"github.com/pders01/algosearch/internal/session"
)

// submit starts a new session for query and issues its request.
func (a *App) submit(query string) tea.Cmd {
	requestID := search.NewRequestID()
	a.dispatch(session.Submitted{Query: query, RequestID: requestID})
	a.resetScroll()
	a.clearStatus()

	return tea.Batch(
		a.syncResults(),
		a.fetch(a.state.SessionID, requestID, query),
	)
}

func (a *App) fetch(sessionID uint64, requestID, query string) tea.Cmd {
	gateway := a.gateway
	return func() tea.Msg {
		if gateway == nil {
			return searchResponseMsg{resp: search.Response{
				SessionID: sessionID,
				RequestID: requestID,
				Query:     query,
				Err:       errNoGateway,
			}}
		}
		return searchResponseMsg{resp: gateway.Fetch(context.Background(), sessionID, requestID, query)}
	}
}

func (a *App) toggle(id platform.ID) tea.Cmd {
	a.dispatch(session.FilterToggled{Platform: id})
	a.resetScroll()
	return a.syncResults()
}

func (a *App) openLink(link string) tea.Cmd {
	opener := a.opener
	return func() tea.Msg {
		if err := opener.Open(link); err != nil {
			return errorMsg{err: wrapErr("failed to open link", err)}
		}
		return linkOpenedMsg{link: link}
	}
}
