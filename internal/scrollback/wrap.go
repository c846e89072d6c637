package scrollback

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Measure returns how many rows text occupies when wrapped at width cells.
// Empty text still occupies one row.
func Measure(text string, width int) int {
	return len(rowStarts(text, width))
}

// Wrap splits text into the rows Measure counts.
func Wrap(text string, width int) []string {
	starts := rowStarts(text, width)
	rows := make([]string, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		rows[i] = text[start:end]
	}
	return rows
}

// MatchRows returns the ascending, deduplicated rows of text (wrapped at
// width) that hold the first byte of an occurrence of needle.
func MatchRows(text, needle string, width int) []int {
	if needle == "" {
		return nil
	}
	var starts []int
	var rows []int
	from := 0
	for from <= len(text) {
		idx := strings.Index(text[from:], needle)
		if idx < 0 {
			break
		}
		if starts == nil {
			starts = rowStarts(text, width)
		}
		pos := from + idx
		row := rowOf(starts, pos)
		if n := len(rows); n == 0 || rows[n-1] != row {
			rows = append(rows, row)
		}
		from = pos + len(needle)
	}
	return rows
}

// rowStarts walks grapheme clusters and returns the byte offset at which each
// wrapped row begins. A cluster that does not fit the remaining cells starts
// a new row; a cluster wider than width gets a row of its own.
func rowStarts(text string, width int) []int {
	starts := []int{0}
	if width <= 0 {
		return starts
	}
	col, pos := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if col > 0 && col+w > width {
			starts = append(starts, pos)
			col = 0
		}
		col += w
		pos += len(cluster)
	}
	return starts
}

func rowOf(starts []int, pos int) int {
	return sort.SearchInts(starts, pos+1) - 1
}
