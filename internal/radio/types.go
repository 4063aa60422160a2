package radio

import "time"

// NowPlaying is the now-playing fragment of the playout state. It is carried
// both inside the full /api/now snapshot and on its own by push events.
type NowPlaying struct {
	Current string         `json:"current"`
	IsPause bool           `json:"isPause"`
	History []HistoryEntry `json:"history"`
}

// NowResponse mirrors the payload returned by /api/now.
type NowResponse struct {
	Now     *NowPlaying  `json:"now"`
	Library LibraryStats `json:"library"`
	Uptime  string       `json:"uptime"`
}

// LibraryStats reports per-category clip counts from the server's library.
type LibraryStats struct {
	Music int `json:"music"`
	Hosts int `json:"hosts"`
	Other int `json:"other"`
	Night int `json:"night"`
}

// HistoryEntry describes one previously played clip. Entries arrive in
// chronological ascending order by Start and are never mutated in place; a
// fresh snapshot is the only unit of update.
type HistoryEntry struct {
	Start         string `json:"start"`
	Title         string `json:"title"`
	Skipped       bool   `json:"skipped"`
	UserScheduled bool   `json:"userScheduled"`
}

// StartTime returns the parsed Start timestamp when possible.
func (e HistoryEntry) StartTime() time.Time {
	return parseTime(e.Start)
}

// LocalClock renders Start as a local time-of-day string (HH:MM). The server
// emits timestamps with nanosecond precision; anything below the minute is
// dropped here. Returns "" for missing or unparseable timestamps.
func (e HistoryEntry) LocalClock() string {
	t := parseTime(e.Start)
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("15:04")
}

// SearchResult is one library search hit. IDs are opaque to the client and
// only ever echoed back to the server.
type SearchResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Flags mirrors /api/config feature flags.
type Flags struct {
	News bool `json:"news"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
