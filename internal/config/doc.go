// Package config handles loading dial's configuration file.
//
// # Overview
//
// dial needs very little configuration: where the playout server lives and,
// optionally, how often to poll it. Everything else is derived at runtime
// from the server itself.
//
// # Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/dial/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If fields are missing or blank, use defaults per field
//
// # TOML format
//
//	host = "radio.local:8080"
//	poll_active_ms = 3141
//	poll_idle_ms = 6666
//
// All fields are optional. The host defaults to 127.0.0.1:8080; the poll
// intervals default to the scheduler's built-in cadence when zero or
// negative. Tilde expansion is performed on the config path.
//
// The package is read-only and stateless: configuration is loaded once at
// startup into an immutable Config value, with no global state.
package config
