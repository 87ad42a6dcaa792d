package tui

import (
	"github.com/pders01/algosearch/internal/results"
	"github.com/pders01/algosearch/internal/search"
)

type View int

const (
	ViewSearch View = iota
	ViewResults
)

func (v View) String() string {
	if v == ViewResults {
		return "results"
	}
	return "search"
}

type searchResponseMsg struct {
	resp search.Response
}

type sentinelMsg struct {
	sessionID uint64
	key       results.SentinelKey
}

type linkOpenedMsg struct {
	link string
}

type errorMsg struct {
	err error
}
