// Package scrollback holds the rendered-line buffer behind every log pane.
//
// # Overview
//
// A Buffer is an ordered, append-only sequence of Line records. Each record
// keeps the raw text of one log line, the number of terminal rows it occupies
// once wrapped at the pane width, and the wrapped row offsets that currently
// contain a search match.
//
// # Coordinates
//
// Every scroll computation uses a bottom-anchored coordinate: the reverse
// row of a wrapped row is its distance from the very bottom of the buffer,
// where the newest row has reverse row 1 and the oldest row has reverse row
// Height(). A Viewport is described the same way:
//
//	ReverseIndex  rows hidden below the window (0 while following)
//	Rows          rows visible in the window
//	Limit()       ReverseIndex + Rows, the window's leading edge
//
// A match with reverse row r is visible when ReverseIndex <= r <= Limit().
// Keeping the viewer anchored to the newest line means appending content
// never moves a followed window, and a window scrolled back into history only
// needs ReverseIndex bumped by the height that was appended.
//
// # Searching
//
// Search is literal, case-sensitive substring containment. Line.Search paints
// the line through a Painter and records the rows returned by the painter's
// highlighter. Navigation queries (LastMatch, NextMatch, PreviousMatch,
// VisibleMatch) hand back a Match cursor that the caller keeps between calls.
//
// # Errors
//
// Queries whose preconditions are the caller's responsibility (MatchCount on
// a line without matches, LastMatch on a buffer without matches, At out of
// range) panic. Queries that may legitimately find nothing return a second
// ok result instead.
//
// The package does no locking; a Buffer belongs to the single goroutine that
// runs the UI event loop.
package scrollback
