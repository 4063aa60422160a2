package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx         context.Context
	store       *state.Store
	controls    Controls
	searcher    Searcher
	focus       Focus
	newsEnabled bool

	keys   keyMap
	styles Styles
	width  int
	height int

	snapshot  *state.Snapshot
	connected bool

	// inFlight disables a control while its own call is outstanding. It is
	// purely cosmetic; commands are never serialized against each other.
	inFlight map[string]bool

	status      string
	statusIsErr bool

	songList songListModel
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:         ctx,
		store:       opts.Store,
		controls:    opts.Controls,
		searcher:    opts.Searcher,
		focus:       opts.Focus,
		newsEnabled: opts.NewsEnabled,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		connected:   true,
		inFlight:    make(map[string]bool),
		songList:    newSongListModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return storeChangedMsg{} }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		if m.focus != nil {
			m.focus.SetForeground(true)
		}
		return m, nil

	case tea.BlurMsg:
		if m.focus != nil {
			m.focus.SetForeground(false)
		}
		return m, nil

	case storeChangedMsg:
		m.snapshot = m.store.Snapshot()
		m.connected = m.store.Connected()
		return m, nil

	case commandResultMsg:
		delete(m.inFlight, msg.name)
		if msg.err != nil {
			m.status = userMessage(msg.err)
			m.statusIsErr = true
		} else {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case searchResultsMsg:
		return m.updateSearchResults(msg), nil

	case tea.KeyMsg:
		if m.songList.active {
			return m.updateSongList(msg)
		}
		return m.updateGlobalKeys(msg)
	}
	return m, nil
}

func (m Model) updateGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		return m.dispatch("pause", m.controls.Pause)
	case key.Matches(msg, m.keys.Repeat):
		return m.dispatch("repeat", m.controls.Repeat)
	case key.Matches(msg, m.keys.Skip):
		return m.dispatch("skip", m.controls.Skip)
	case key.Matches(msg, m.keys.News):
		if !m.newsEnabled {
			return m, nil
		}
		return m.dispatch("news", m.controls.News)
	case key.Matches(msg, m.keys.SongList):
		m.songList.open()
		return m, textinput.Blink
	}
	return m, nil
}

// dispatch runs a control command off the update loop. The per-name flag
// only greys out that one control; other commands stay available.
func (m Model) dispatch(name string, op func(context.Context) error) (tea.Model, tea.Cmd) {
	if m.inFlight[name] {
		return m, nil
	}
	m.inFlight[name] = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return commandResultMsg{name: name, err: op(ctx)}
	}
}

// userMessage picks the operator-facing text for a failed command: the
// server's business message when there is one, a generic line otherwise.
func userMessage(err error) string {
	var apiErr *radio.Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "operation failed"
}
