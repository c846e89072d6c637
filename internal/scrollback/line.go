package scrollback

import (
	"fmt"
	"slices"
	"strings"
)

// Painter is the drawing surface a Line renders itself onto. Rows are
// absolute: row 0 is the first wrapped row of the oldest line in the buffer.
type Painter interface {
	// Print paints text without highlighting, starting at row.
	Print(row int, text string)
	// Highlight paints every occurrence of needle in text (wrapped at width,
	// starting at row) and returns the ascending wrapped row offsets that hold
	// at least one occurrence.
	Highlight(row int, text, needle string, width int) []int
}

// Line is one logical log line together with its wrapped height and the
// rows currently matching the active search.
type Line struct {
	Text   string
	Height int

	// nil while the line does not match the active query
	matches []int
}

func newLine(text string, height int, matches []int) Line {
	if height < 1 {
		height = 1
	}
	return Line{
		Text:    strings.Clone(text),
		Height:  height,
		matches: normalizeMatches(matches),
	}
}

// Search tests whether the line contains needle and repaints it accordingly.
// A matching line is printed and highlighted. A line that stops matching is
// printed once more so a stale highlight is erased.
func (l *Line) Search(needle string, p Painter, width, row int) bool {
	isMatch := needle != "" && strings.Contains(l.Text, needle)

	var matches []int
	if isMatch {
		p.Print(row, l.Text)
		matches = l.Highlight(needle, p, width, row)
	}

	if l.UpdateMatches(matches) && !isMatch {
		p.Print(row, l.Text)
	}

	return isMatch
}

// Highlight asks the painter to highlight needle and returns the matched rows.
func (l *Line) Highlight(needle string, p Painter, width, row int) []int {
	return p.Highlight(row, l.Text, needle, width)
}

// UpdateMatches replaces the matched rows and reports whether they changed.
// An empty slice is stored as "no matches".
func (l *Line) UpdateMatches(matches []int) bool {
	matches = normalizeMatches(matches)
	if slices.Equal(l.matches, matches) {
		return false
	}
	l.matches = matches
	return true
}

// HasMatches reports whether the line matches the active query.
func (l *Line) HasMatches() bool {
	return l.matches != nil
}

// Matches returns a copy of the matched row offsets, nil when the line does
// not match. Use UpdateMatches to change them.
func (l *Line) Matches() []int {
	return normalizeMatches(l.matches)
}

// MatchCount returns the number of matched rows. It panics when the line
// does not match the active query.
func (l *Line) MatchCount() int {
	if l.matches == nil {
		panic("scrollback: MatchCount on a line without matches")
	}
	return len(l.matches)
}

func (l *Line) matchOffset(index int) int {
	if index < 0 || index >= l.MatchCount() {
		panic(fmt.Sprintf("scrollback: match index %d out of range [0,%d)", index, len(l.matches)))
	}
	return l.matches[index]
}

func normalizeMatches(matches []int) []int {
	if len(matches) == 0 {
		return nil
	}
	return slices.Clone(matches)
}
