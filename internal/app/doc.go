// Package app wires configuration, the log follower and the UI together.
//
// Run is the composition root:
//
//  1. Load ~/.config/flow/config.toml; the CLI path and --lines override it
//  2. Open the diagnostics log (tea.LogToFile) or discard diagnostics
//  3. Load prefs for the theme and last active tab
//  4. Backfill the last max_lines lines with logtail.Tail
//  5. Start the follower goroutine feeding a state.Inbox
//  6. Run the Bubble Tea program until the user quits
//
// The follower polls every poll_interval and also whenever fsnotify reports
// a change to the file. Poll failures (missing file, permission errors) are
// recorded in the inbox for the status bar and retried with exponential
// backoff capped at 30 seconds; a successful poll resets the backoff.
//
// Only configuration and backfill errors are fatal. Everything after the UI
// starts is logged and shown instead.
package app
