// Package ui is the flow terminal interface, built on Bubble Tea.
//
// # Structure
//
//   - app.go: Model, message loop, key routing and Run
//   - pane.go: one tab; owns a scrollback.Buffer, its canvas and viewport,
//     and the search state for that tab
//   - canvas.go: the scrollback.Painter; keeps every wrapped row styled so
//     View only slices the visible window
//   - header.go: tab strip, status and footer
//   - help.go: key reference modal (bubbles/help)
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: palettes and Lipgloss styles
//   - strings.go: input sanitizing and truncation
//
// # Data Flow
//
// A tick every 100ms drains state.Inbox. Lines are stripped of escape
// sequences, then appended to every pane whose tab filter accepts them. Each
// pane measures the line at its width, appends it to its buffer, prints it
// on the canvas and, while a query is active, searches just that line. Panes
// then evict the oldest lines beyond max_lines.
//
// A reset from the follower (truncation or rotation) clears every pane.
//
// # Scrolling
//
// Windows are bottom-anchored. A pane that shows the newest row keeps
// following; a pane scrolled into history has its reverse index raised by
// the height of each appended line so the rows on screen do not move.
//
// # Search
//
// "/" opens the prompt. Every keystroke re-runs the search over the active
// pane. If the current window already shows a match the cursor lands on it
// and nothing scrolls; otherwise the view jumps to the newest match. Enter
// keeps the query for n/N navigation, Esc clears it. The query carries over
// when switching tabs.
//
// # Preferences
//
// Theme (T) and active tab are saved to prefs.toml whenever they change.
package ui
