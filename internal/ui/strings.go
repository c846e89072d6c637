package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 4

// sanitizeLines strips terminal escape sequences and control characters so
// every rune of a stored line is printable and measurable.
func sanitizeLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = sanitize(line)
	}
	return out
}

func sanitize(line string) string {
	line = ansi.Strip(line)
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, line)
}

// truncateMiddle shortens value by removing runes from the middle, keeping
// the start and the end, which is where paths carry their meaning.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	head := keep / 2
	tail := keep - head
	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}
