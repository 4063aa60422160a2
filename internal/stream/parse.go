package stream

import (
	"bufio"
	"strings"
)

// frame is one server-sent event: an event name and its data payload.
type frame struct {
	name string
	data string
}

// nextFrame accumulates lines from the scanner until a blank dispatch line
// and returns the completed frame. Comment lines (leading ':') and fields
// the client does not use (id:, retry:) are skipped. Returns ok=false when
// the stream ends.
func nextFrame(scanner *bufio.Scanner) (frame, bool) {
	var f frame
	var data []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case line == "":
			if f.name != "" || len(data) > 0 {
				f.data = strings.Join(data, "\n")
				return f, true
			}
			// blank line with nothing accumulated, keep reading
		case strings.HasPrefix(line, ":"):
			// comment / keep-alive
		case strings.HasPrefix(line, "event:"):
			f.name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	return frame{}, false
}
