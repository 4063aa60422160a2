// Package ui implements the Bubble Tea terminal interface.
//
// The UI is a pure consumer of the sync layer: it renders whatever the
// state store exposes and never mutates playout state itself. Every key
// press is forwarded to the command dispatcher and the effect arrives
// through the next store notification. Store changes are delivered as
// messages via Program.Send from a store observer.
//
// Terminal focus reports (tea.WithReportFocus) stand in for page
// visibility: losing focus tells the scheduler to poll lazily, regaining it
// triggers a prompt refresh.
//
// Per-control "in flight" flags exist only to grey out a key while its own
// command is outstanding. They are UI-local; concurrent commands on
// different controls are allowed and race freely, which is safe because
// nothing is applied locally until the server confirms via a refresh.
package ui
