package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavecast/dial/internal/radio"
)

// minQueryLength matches the server-side search behavior: single characters
// produce too much noise to be useful.
const minQueryLength = 2

// songListModel is the state of the search/schedule modal. Results are
// ephemeral: they live for one query and are never written to the store.
type songListModel struct {
	active    bool
	input     textinput.Model
	results   []radio.SearchResult
	selected  int
	searching bool
	err       string
	link      string // download URL for the selected hit, shown on demand
}

func newSongListModel() songListModel {
	input := textinput.New()
	input.Placeholder = "filter"
	input.CharLimit = 120
	return songListModel{input: input}
}

func (s *songListModel) open() {
	s.active = true
	s.results = nil
	s.selected = 0
	s.err = ""
	s.link = ""
	s.input.SetValue("")
	s.input.Focus()
}

func (s *songListModel) close() {
	s.active = false
	s.input.Blur()
}

func (m Model) updateSongList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.songList.close()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.songList.selected > 0 {
			m.songList.selected--
			m.songList.link = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.songList.selected < len(m.songList.results)-1 {
			m.songList.selected++
			m.songList.link = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Download):
		if len(m.songList.results) == 0 {
			return m, nil
		}
		clip := m.songList.results[m.songList.selected]
		m.songList.link = m.searcher.DownloadURL(clip.ID)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if len(m.songList.results) == 0 {
			return m, nil
		}
		clip := m.songList.results[m.songList.selected]
		m.songList.close()
		return m.dispatch("schedule", func(ctx context.Context) error {
			return m.controls.ScheduleClip(ctx, clip.ID)
		})
	}

	var cmd tea.Cmd
	before := strings.TrimSpace(m.songList.input.Value())
	m.songList.input, cmd = m.songList.input.Update(msg)
	after := strings.TrimSpace(m.songList.input.Value())
	if after == before {
		return m, cmd
	}
	m.songList.link = ""

	if len(after) < minQueryLength {
		m.songList.results = nil
		m.songList.selected = 0
		m.songList.searching = false
		return m, cmd
	}

	m.songList.searching = true
	return m, tea.Batch(cmd, m.searchCmd(after))
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		results, err := searcher.Search(ctx, query)
		return searchResultsMsg{query: query, results: results, err: err}
	}
}

func (m Model) updateSearchResults(msg searchResultsMsg) Model {
	if !m.songList.active {
		return m
	}
	// Responses race with typing; anything that no longer matches the input
	// is stale and dropped.
	if msg.query != strings.TrimSpace(m.songList.input.Value()) {
		return m
	}
	m.songList.searching = false
	if msg.err != nil {
		m.songList.err = userMessage(msg.err)
		m.songList.results = nil
		m.songList.selected = 0
		return m
	}
	m.songList.err = ""
	m.songList.results = msg.results
	m.songList.link = ""
	if m.songList.selected >= len(msg.results) {
		m.songList.selected = 0
	}
	return m
}
