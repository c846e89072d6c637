// Package config loads the flow configuration file.
//
// # Overview
//
// The config names the log file to follow, how much scrollback each pane
// keeps, how often the follower polls when no file event arrives, and the
// tabs the viewer shows.
//
// # Resolution
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flow/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Missing or empty fields keep their defaults
//
// # Default Values
//
//   - Log file: /var/log/syslog
//   - Scrollback: 10000 lines per tab, oldest lines dropped first
//   - Poll interval: 1s
//   - Tabs: a single unfiltered "All" tab
//
// # TOML Format
//
//	log_path = "~/logs/app.log"
//	max_lines = 10000
//	poll_interval = "1s"
//
//	[[tabs]]
//	name = "All"
//
//	[[tabs]]
//	name = "Errors"
//	contains = "ERROR"
//
// A tab without a name is named after its filter. Filters are literal,
// case-sensitive substrings.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, invalid
// TOML and unparseable durations. A missing file is not an error.
package config
