package ui

import "github.com/wavecast/dial/internal/radio"

// storeChangedMsg tells the model to re-read the store.
type storeChangedMsg struct{}

// commandResultMsg reports a finished control command. name matches the
// in-flight flag set when the command was dispatched.
type commandResultMsg struct {
	name string
	err  error
}

// searchResultsMsg delivers one query's results. Stale responses are
// detected by comparing query against the current input.
type searchResultsMsg struct {
	query   string
	results []radio.SearchResult
	err     error
}
