package stream

import (
	"bufio"
	"strings"
	"testing"
)

func scannerFor(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestNextFrame_NamedEvent(t *testing.T) {
	s := scannerFor("event: now-playing\ndata: {\"current\":\"Song A\"}\n\n")

	f, ok := nextFrame(s)
	if !ok {
		t.Fatal("nextFrame = !ok, want a frame")
	}
	if f.name != "now-playing" {
		t.Fatalf("name = %q, want now-playing", f.name)
	}
	if f.data != `{"current":"Song A"}` {
		t.Fatalf("data = %q", f.data)
	}

	if _, ok := nextFrame(s); ok {
		t.Fatal("nextFrame after stream end should report !ok")
	}
}

func TestNextFrame_SkipsCommentsAndUnknownFields(t *testing.T) {
	s := scannerFor(": connected\n\nid: 7\nretry: 3000\nevent: ping\ndata: x\n\n")

	f, ok := nextFrame(s)
	if !ok {
		t.Fatal("nextFrame = !ok, want a frame")
	}
	if f.name != "ping" || f.data != "x" {
		t.Fatalf("frame = %+v, want ping/x", f)
	}
}

func TestNextFrame_MultiLineDataAndCRLF(t *testing.T) {
	s := scannerFor("event: blob\r\ndata: first\r\ndata: second\r\n\r\n")

	f, ok := nextFrame(s)
	if !ok {
		t.Fatal("nextFrame = !ok, want a frame")
	}
	if f.data != "first\nsecond" {
		t.Fatalf("data = %q, want joined lines", f.data)
	}
}

func TestNextFrame_UnterminatedFrameIsDropped(t *testing.T) {
	// A frame without its dispatch line is incomplete when the stream dies.
	s := scannerFor("event: now-playing\ndata: {\"current\":\"Song A\"}")

	if f, ok := nextFrame(s); ok {
		t.Fatalf("nextFrame = %+v, want !ok for truncated stream", f)
	}
}
