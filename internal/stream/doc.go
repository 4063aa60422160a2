// Package stream binds the server's push channel to the state store.
//
// # Overview
//
// The playout server exposes GET /api/events as a server-sent-event stream
// with named events. This package owns the full lifecycle: the initial
// /api/now read that bridges the gap before the first frame, frame parsing,
// reconnection, connectivity derivation, and teardown.
//
// # Connectivity rules
//
// Connectivity is derived exclusively from channel lifecycle, never from
// polled request failures:
//
//   - a successful open marks the channel connected
//   - any decodable event marks it connected
//   - a mid-stream read error does NOT mark it lost; the loop is about to
//     reconnect and a transient blip must not flap the UI
//   - only a failed (re)connect attempt marks it lost
//
// # Event types
//
// The only named event consumed is "now-playing", carrying the now-playing
// fragment {current, isPause, history[]}. It is forwarded verbatim to
// Store.ApplyNowPlaying; library stats and uptime are untouched until the
// next full read. Unknown event names and undecodable payloads are logged
// or skipped, never fatal.
//
// # Teardown
//
// Close is idempotent and safe to call from anywhere, including from inside
// a store observer fired by this very subscription. Frames not yet
// dispatched when Close is observed are dropped; once Done is closed the
// loop has exited and no frame mutates the store again.
package stream
