// Package state provides the shared store for remote playout state.
//
// # Overview
//
// The Store is the single piece of mutable shared state in the application.
// Two producers write into it: the stream package (push events and
// connectivity) and the app package's refresh scheduler (full snapshot
// reads). Consumers read copies via Snapshot and re-render when their
// subscribed callback fires.
//
//	Producers:                      Consumers:
//	┌────────────────────┐          ┌────────────────────┐
//	│ stream (push)      │          │ UI observer        │
//	│  ApplyNowPlaying() │─────────→│  store.Snapshot()  │
//	│  SetConnected()    │  (mutex) │  re-render         │
//	│ scheduler (poll)   │          └────────────────────┘
//	│  ApplyFull()       │
//	└────────────────────┘
//
// # Update semantics
//
// The snapshot is a value, replaced wholesale:
//
//   - ApplyFull swaps the entire snapshot. There is no field-by-field merge;
//     two full applies in sequence leave exactly the second one visible.
//   - ApplyNowPlaying swaps only the now-playing fragment (current clip,
//     pause flag, history) because push events never carry library stats or
//     uptime. Those fields keep their last full-read values.
//   - Updates land in completion order, not initiation order. A slow /now
//     read started before a fast push may apply after it and briefly win;
//     the next poll repairs this. Last write wins by design.
//
// # Connectivity
//
// Connectivity starts up (optimistic) and is owned exclusively by the push
// channel's lifecycle signals. Transport failures on polled reads never
// touch it.
//
// # Observers
//
// Subscribe registers a plain callback. Delivery is synchronous, in
// insertion order, after the value has been swapped, so observers never see
// a torn intermediate state. A panicking observer is logged and isolated;
// later observers still run. Callbacks run outside the store lock and may
// call back into the store.
package state
