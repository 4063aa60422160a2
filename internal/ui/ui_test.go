package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

type nopControls struct{ err error }

func (c nopControls) Pause(context.Context) error                { return c.err }
func (c nopControls) Repeat(context.Context) error               { return c.err }
func (c nopControls) Skip(context.Context) error                 { return c.err }
func (c nopControls) ScheduleClip(context.Context, string) error { return c.err }
func (c nopControls) News(context.Context) error                 { return c.err }

type nopSearcher struct{}

func (nopSearcher) Search(context.Context, string) ([]radio.SearchResult, error) {
	return nil, nil
}

func (nopSearcher) DownloadURL(fileID string) string {
	return "http://127.0.0.1:8080/api/library/download?file=" + fileID
}

func newTestModel(store *state.Store) Model {
	return New(Options{
		Store:    store,
		Controls: nopControls{},
		Searcher: nopSearcher{},
	})
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"business error carries server text", &radio.Error{Kind: radio.KindBusiness, Message: "File not found."}, "File not found."},
		{"business error without message", &radio.Error{Kind: radio.KindBusiness}, "operation failed"},
		{"transport error is generic", &radio.Error{Kind: radio.KindTransport}, "operation failed"},
		{"plain error is generic", errors.New("boom"), "operation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("userMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClipLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"nested path", "music/indie/song.mp3", "music/indie / song.mp3"},
		{"single segment", "jingle.mp3", "jingle.mp3"},
		{"one folder", "hosts/morning.mp3", "hosts / morning.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipLabel(radio.SearchResult{Name: tt.in})
			if got != tt.want {
				t.Errorf("clipLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestView_BeforeFirstSnapshot(t *testing.T) {
	m := newTestModel(&state.Store{})

	out := m.View()
	if !strings.Contains(out, "waiting for the radio") {
		t.Fatalf("empty-state view missing placeholder:\n%s", out)
	}
	if !strings.Contains(out, "connected") {
		t.Fatalf("view should start with optimistic connectivity:\n%s", out)
	}
}

func TestView_RendersSnapshotAndConnectivity(t *testing.T) {
	store := &state.Store{}
	store.ApplyFull(state.Snapshot{
		Now: radio.NowPlaying{
			Current: "Song B",
			IsPause: true,
			History: []radio.HistoryEntry{
				{Start: "2025-04-21T10:41:00.236652254+02:00", Title: "Song A", Skipped: true},
			},
		},
		Library: radio.LibraryStats{Music: 42, Hosts: 7},
		Uptime:  "3 days",
	})
	store.SetConnected(false)

	m := newTestModel(store)
	updated, _ := m.Update(storeChangedMsg{})
	m = updated.(Model)

	out := m.View()
	for _, want := range []string{"Song B", "paused", "Song A", "42 music", "3 days", "connection lost"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestFooter_NewsGatedByConfigFlag(t *testing.T) {
	m := newTestModel(&state.Store{})
	if strings.Contains(m.View(), "[n] news") {
		t.Fatal("news control shown while feature disabled")
	}

	m.newsEnabled = true
	if !strings.Contains(m.View(), "[n] news") {
		t.Fatal("news control hidden while feature enabled")
	}
}

func TestDispatch_SetsAndClearsInFlightFlag(t *testing.T) {
	m := newTestModel(&state.Store{})

	updated, cmd := m.dispatch("skip", func(context.Context) error { return nil })
	m = updated.(Model)
	if !m.inFlight["skip"] {
		t.Fatal("dispatch did not mark the control in flight")
	}

	// A second press while outstanding is ignored.
	_, dup := m.dispatch("skip", func(context.Context) error { return nil })
	if dup != nil {
		t.Fatal("duplicate dispatch produced a command")
	}

	msg := cmd()
	result, ok := msg.(commandResultMsg)
	if !ok || result.name != "skip" || result.err != nil {
		t.Fatalf("command msg = %#v", msg)
	}

	updated, _ = m.Update(result)
	m = updated.(Model)
	if m.inFlight["skip"] {
		t.Fatal("in-flight flag not cleared on completion")
	}
	if m.status != "" {
		t.Fatalf("status = %q, want empty on success", m.status)
	}
}

func TestUpdate_CommandFailureSurfacesServerMessage(t *testing.T) {
	m := newTestModel(&state.Store{})

	updated, _ := m.Update(commandResultMsg{
		name: "schedule",
		err:  &radio.Error{Kind: radio.KindBusiness, Message: "Invalid id value."},
	})
	m = updated.(Model)

	if m.status != "Invalid id value." || !m.statusIsErr {
		t.Fatalf("status = %q (err=%v), want server message", m.status, m.statusIsErr)
	}
	if !strings.Contains(m.View(), "Invalid id value.") {
		t.Fatal("failure message not rendered")
	}
}

func TestSearchResults_StaleQueryDropped(t *testing.T) {
	m := newTestModel(&state.Store{})
	m.songList.open()
	m.songList.input.SetValue("current query")

	m = m.updateSearchResults(searchResultsMsg{
		query:   "old query",
		results: []radio.SearchResult{{ID: "x", Name: "stale.mp3"}},
	})
	if len(m.songList.results) != 0 {
		t.Fatalf("stale results applied: %#v", m.songList.results)
	}

	m = m.updateSearchResults(searchResultsMsg{
		query:   "current query",
		results: []radio.SearchResult{{ID: "y", Name: "fresh.mp3"}},
	})
	if len(m.songList.results) != 1 || m.songList.results[0].Name != "fresh.mp3" {
		t.Fatalf("fresh results not applied: %#v", m.songList.results)
	}
}

func TestSongList_DownloadLinkForSelectedHit(t *testing.T) {
	m := newTestModel(&state.Store{})
	m.songList.open()
	m.songList.input.SetValue("song")
	m = m.updateSearchResults(searchResultsMsg{
		query: "song",
		results: []radio.SearchResult{
			{ID: "aaa", Name: "first.mp3"},
			{ID: "bbb", Name: "second.mp3"},
		},
	})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	m = updated.(Model)
	want := "http://127.0.0.1:8080/api/library/download?file=aaa"
	if m.songList.link != want {
		t.Fatalf("link = %q, want %q", m.songList.link, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Fatal("download link not rendered in the modal")
	}

	// Moving the selection invalidates the shown link.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.songList.link != "" {
		t.Fatalf("stale link kept after selection change: %q", m.songList.link)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(&state.Store{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit key did not produce tea.Quit")
	}
}
