package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavecast/dial/internal/radio"
	"github.com/wavecast/dial/internal/state"
)

// Controls is the command surface the UI drives. Implemented by
// app.Controls.
type Controls interface {
	Pause(ctx context.Context) error
	Repeat(ctx context.Context) error
	Skip(ctx context.Context) error
	ScheduleClip(ctx context.Context, fileID string) error
	News(ctx context.Context) error
}

// Searcher runs library queries for the song list modal and renders
// download links for its hits.
type Searcher interface {
	Search(ctx context.Context, query string) ([]radio.SearchResult, error)
	DownloadURL(fileID string) string
}

// Focus receives terminal focus transitions, the TUI analogue of page
// visibility.
type Focus interface {
	SetForeground(foreground bool)
}

// Options configure the UI runtime.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Controls    Controls
	Searcher    Searcher
	Focus       Focus
	NewsEnabled bool
}

// Run starts the TUI and blocks until the user quits or the context is
// cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithReportFocus(),
	)

	// Store notifications become redraw messages. The send happens off the
	// notifying goroutine so a slow UI never stalls the sync layer.
	unsubscribe := opts.Store.Subscribe(func() {
		go p.Send(storeChangedMsg{})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
