package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wavecast/dial/internal/radio"
)

const maxHistoryRows = 12

// View implements tea.Model.
func (m Model) View() string {
	if m.songList.active {
		return m.viewSongList()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewNowPlaying())
	b.WriteString("\n\n")
	b.WriteString(m.viewHistory())
	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("dial")

	conn := m.styles.Online.Render("● connected")
	if !m.connected {
		conn = m.styles.Offline.Render("● connection lost")
	}

	parts := []string{title, conn}
	if m.snapshot != nil {
		lib := m.snapshot.Library
		parts = append(parts, m.styles.Muted.Render(
			fmt.Sprintf("%d music / %d hosts / %d other", lib.Music, lib.Hosts, lib.Other)))
		if m.snapshot.Uptime != "" {
			parts = append(parts, m.styles.Muted.Render("up "+m.snapshot.Uptime))
		}
	}
	return strings.Join(parts, m.styles.Muted.Render("  ·  "))
}

func (m Model) viewNowPlaying() string {
	label := m.styles.Label.Render("Now playing")
	if m.snapshot == nil {
		return label + "\n" + m.styles.Muted.Render("waiting for the radio…")
	}

	current := m.snapshot.Now.Current
	if current == "" {
		current = "-"
	}
	line := m.styles.Current.Render(current)
	if m.snapshot.Now.IsPause {
		line += "  " + m.styles.Paused.Render("⏸ paused")
	}
	return label + "\n" + line
}

func (m Model) viewHistory() string {
	label := m.styles.Label.Render("Recent history")
	if m.snapshot == nil || len(m.snapshot.Now.History) == 0 {
		return label + "\n" + m.styles.Muted.Render("nothing yet")
	}

	// Newest first; the server sends ascending by start time.
	entries := m.snapshot.Now.History
	var rows []string
	for i := len(entries) - 1; i >= 0 && len(rows) < maxHistoryRows; i-- {
		rows = append(rows, m.historyRow(entries[i]))
	}
	return label + "\n" + strings.Join(rows, "\n")
}

func (m Model) historyRow(entry radio.HistoryEntry) string {
	clock := entry.LocalClock()
	if clock == "" {
		clock = "--:--"
	}
	title := entry.Title
	style := lipgloss.NewStyle()
	if entry.UserScheduled {
		style = m.styles.Scheduled
	}
	if entry.Skipped {
		style = m.styles.Skipped.Italic(entry.UserScheduled)
	}
	return m.styles.Muted.Render(clock) + "  " + style.Render(title)
}

func (m Model) viewFooter() string {
	bindings := []struct {
		binding  string
		label    string
		inFlight string
	}{
		{"p", "pause", "pause"},
		{"r", "repeat", "repeat"},
		{"s", "skip", "skip"},
		{"/", "song list", ""},
	}

	var parts []string
	for _, b := range bindings {
		text := fmt.Sprintf("[%s] %s", b.binding, b.label)
		if b.inFlight != "" && m.inFlight[b.inFlight] {
			text += "…"
		}
		parts = append(parts, text)
	}
	if m.newsEnabled {
		text := "[n] news"
		if m.inFlight["news"] {
			text += "…"
		}
		parts = append(parts, text)
	}
	parts = append(parts, "[q] quit")

	footer := m.styles.Help.Render(strings.Join(parts, "   "))
	if m.status != "" {
		line := m.styles.Muted.Render(m.status)
		if m.statusIsErr {
			line = m.styles.Error.Render(m.status)
		}
		footer += "\n" + line
	}
	return footer
}

func (m Model) viewSongList() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("song list"))
	b.WriteString("  ")
	b.WriteString(m.styles.Help.Render("enter schedules · ctrl+d download link · esc closes"))
	b.WriteString("\n\n")
	b.WriteString(m.songList.input.View())
	b.WriteString("\n\n")

	switch {
	case m.songList.err != "":
		b.WriteString(m.styles.Error.Render(m.songList.err))
	case m.songList.searching:
		b.WriteString(m.styles.Muted.Render("searching…"))
	case len(m.songList.results) == 0:
		b.WriteString(m.styles.Muted.Render("type at least two characters to search"))
	default:
		for i, clip := range m.songList.results {
			line := clipLabel(clip)
			if i == m.songList.selected {
				line = m.styles.Selected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		if m.songList.link != "" {
			b.WriteString("\n")
			b.WriteString(m.styles.Muted.Render(m.songList.link))
		}
	}
	return m.styles.Panel.Render(b.String())
}

// clipLabel renders a search hit as "folder / filename", matching how the
// library organizes clips by directory.
func clipLabel(clip radio.SearchResult) string {
	parts := strings.Split(clip.Name, "/")
	if len(parts) < 2 {
		return clip.Name
	}
	folder := strings.Join(parts[:len(parts)-1], "/")
	return folder + " / " + parts[len(parts)-1]
}
