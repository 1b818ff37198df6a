package ui

import (
	"websearch/internal/domain"
)

// searchResultMsg carries the outcome of one fetch, tagged with the
// generation of the request that produced it
type searchResultMsg struct {
	generation uint64
	query      domain.SearchQuery
	set        *domain.SearchResultSet
	err        error
}

// pagerMsg reports that the pager exited
type pagerMsg struct {
	content string
	detail  bool // false for help
	err     error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
