package scrollback

import (
	"fmt"
	"iter"
	"strings"
)

// Buffer is an ordered collection of lines, oldest first.
type Buffer struct {
	entries []Line
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds a line at the end of the buffer.
func (b *Buffer) Append(text string, height int, matches []int) {
	b.entries = append(b.entries, newLine(text, height, matches))
}

// Matching returns a new buffer holding copies of the lines that contain
// needle, in their original order.
func (b *Buffer) Matching(needle string) *Buffer {
	out := &Buffer{}
	for i := range b.entries {
		entry := &b.entries[i]
		if strings.Contains(entry.Text, needle) {
			out.entries = append(out.entries, newLine(entry.Text, entry.Height, entry.matches))
		}
	}
	return out
}

// Height returns the total number of wrapped rows.
func (b *Buffer) Height() int {
	return sumHeights(b.entries)
}

// HeightUpTo returns the rows taken by the lines before index, which is the
// absolute row the line at index starts on.
func (b *Buffer) HeightUpTo(index int) int {
	index = min(max(index, 0), len(b.entries))
	return sumHeights(b.entries[:index])
}

// LastLinesHeight returns the rows taken by the newest count lines.
func (b *Buffer) LastLinesHeight(count int) int {
	count = min(max(count, 0), len(b.entries))
	return sumHeights(b.entries[len(b.entries)-count:])
}

// ReverseIndex returns the reverse row of a match: the rows from the bottom
// of the buffer up to and including the matched row.
func (b *Buffer) ReverseIndex(line, match int) int {
	offset := b.At(line).matchOffset(match)
	return sumHeights(b.entries[line:]) - offset
}

// IsMatchVisible reports whether the matched row lies inside the viewport.
func (b *Buffer) IsMatchVisible(m Match, v Viewport) bool {
	entry := b.At(m.Line)
	offset := entry.matchOffset(m.Index)
	limit := v.Limit()

	below := 0
	for i := len(b.entries) - 1; i > m.Line; i-- {
		below += b.entries[i].Height
		if below >= limit {
			return false
		}
	}

	r := below + entry.Height - offset
	return r >= v.ReverseIndex && r <= limit
}

// VisibleMatch returns the match closest to the bottom of the viewport.
// Lines above the viewport are never examined.
func (b *Buffer) VisibleMatch(v Viewport) (Match, bool) {
	limit := v.Limit()
	below := 0

	for i := len(b.entries) - 1; i >= 0; i-- {
		entry := &b.entries[i]
		for j := len(entry.matches) - 1; j >= 0; j-- {
			r := below + entry.Height - entry.matches[j]
			if r > limit {
				break
			}
			if r >= v.ReverseIndex {
				return Match{Line: i, Index: j}, true
			}
		}

		below += entry.Height
		if below >= limit {
			break
		}
	}

	return Match{}, false
}

// LastMatch returns the last match of the newest matching line. It panics
// when no line matches.
func (b *Buffer) LastMatch() Match {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].HasMatches() {
			return b.matchAt(i)
		}
	}
	panic("scrollback: LastMatch on a buffer without matches")
}

// NextMatch returns the first matching line after index.
func (b *Buffer) NextMatch(index int) (Match, bool) {
	for i := max(index+1, 0); i < len(b.entries); i++ {
		if b.entries[i].HasMatches() {
			return b.matchAt(i), true
		}
	}
	return Match{}, false
}

// PreviousMatch returns the closest matching line before index.
func (b *Buffer) PreviousMatch(index int) (Match, bool) {
	for i := min(index, len(b.entries)) - 1; i >= 0; i-- {
		if b.entries[i].HasMatches() {
			return b.matchAt(i), true
		}
	}
	return Match{}, false
}

// Search runs Line.Search on every line, painting each at its absolute row,
// and returns how many lines matched. An empty needle clears every match.
func (b *Buffer) Search(needle string, p Painter, width int) int {
	matched := 0
	row := 0
	for i := range b.entries {
		entry := &b.entries[i]
		if entry.Search(needle, p, width, row) {
			matched++
		}
		row += entry.Height
	}
	return matched
}

// SearchLast searches only the newest line.
func (b *Buffer) SearchLast(needle string, p Painter, width int) bool {
	if len(b.entries) == 0 {
		return false
	}
	last := len(b.entries) - 1
	return b.entries[last].Search(needle, p, width, b.HeightUpTo(last))
}

// MatchTotal returns the number of matched rows across all lines.
func (b *Buffer) MatchTotal() int {
	total := 0
	for i := range b.entries {
		total += len(b.entries[i].matches)
	}
	return total
}

// MatchOrdinal returns the 1-based position of m among all matched rows,
// counted from the oldest line.
func (b *Buffer) MatchOrdinal(m Match) int {
	n := 0
	for i := 0; i < m.Line && i < len(b.entries); i++ {
		n += len(b.entries[i].matches)
	}
	return n + m.Index + 1
}

// Trim drops the oldest lines so at most limit remain and reports how many
// lines and rows were dropped. A limit of zero or less disables trimming.
func (b *Buffer) Trim(limit int) (lines, rows int) {
	if limit <= 0 || len(b.entries) <= limit {
		return 0, 0
	}
	lines = len(b.entries) - limit
	rows = sumHeights(b.entries[:lines])
	b.entries = append([]Line(nil), b.entries[lines:]...)
	return lines, rows
}

// Clear removes every line.
func (b *Buffer) Clear() {
	b.entries = nil
}

// Len returns the number of lines.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Empty reports whether the buffer holds no lines.
func (b *Buffer) Empty() bool {
	return len(b.entries) == 0
}

// At returns the line at index. It panics when index is out of range.
func (b *Buffer) At(index int) *Line {
	if index < 0 || index >= len(b.entries) {
		panic(fmt.Sprintf("scrollback: line index %d out of range [0,%d)", index, len(b.entries)))
	}
	return &b.entries[index]
}

// All iterates over the lines, oldest first.
func (b *Buffer) All() iter.Seq2[int, *Line] {
	return func(yield func(int, *Line) bool) {
		for i := range b.entries {
			if !yield(i, &b.entries[i]) {
				return
			}
		}
	}
}

func (b *Buffer) matchAt(index int) Match {
	return Match{Line: index, Index: b.entries[index].MatchCount() - 1}
}

func sumHeights(lines []Line) int {
	total := 0
	for i := range lines {
		total += lines[i].Height
	}
	return total
}
