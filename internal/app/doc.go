// Package app provides the orchestration layer for the dial application.
//
// # Overview
//
// This package wires configuration, the API client, the state store, the
// push-channel subscription, and the UI into the complete application. It
// also owns the two pieces of coordination logic that sit between them: the
// refresh scheduler and the command dispatcher.
//
// # Data flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()       host + poll cadence
//	       ├─────> radio.NewClient()   transport
//	       ├─────> state.Store{}       shared snapshot
//	       ├─────> stream.Subscribe()  push channel (seeds the store)
//	       ├─────> NewScheduler()      polling fallback
//	       ├─────> NewControls()       command dispatcher
//	       └─────> ui.Run()            TUI (blocks)
//
// # Refresh scheduling
//
// The scheduler enforces "at most one outstanding timer" structurally: every
// trigger cancels the pending timer before arming a new one, so bursts of
// triggers (startup, command completion, focus regained) collapse into a
// single refresh after a short kick delay. After each refresh it re-arms
// itself: 3141ms while the terminal has focus, 6666ms while it doesn't.
// This bounds staleness when the push channel is silent and bounds network
// cost when nobody is watching.
//
// A failed refresh is logged and dropped. The last good snapshot stays on
// screen, connectivity is owned by the push channel alone, and the next
// scheduled poll is the retry. A failed command, by contrast, is always
// returned to the caller: the operator asked for something and needs to
// know it did not happen.
//
// # Commands
//
// Controls methods are independent single-shot calls. None of them touch
// the store; a successful command only nudges the scheduler, and the
// resulting refresh is what makes the effect visible. This keeps the client
// free of optimistic state that could disagree with the server.
package app
