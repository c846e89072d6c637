package ui

import (
	"strings"

	"github.com/five82/flow/internal/scrollback"
)

// canvas holds every wrapped row of a pane, already styled. Row numbers are
// absolute, matching the scrollback.Painter contract.
type canvas struct {
	width  int
	styles Styles
	plain  []string
	rows   []string

	// bumped on every change so renderers know when to refresh
	gen int
}

func newCanvas(width int, styles Styles) *canvas {
	return &canvas{width: width, styles: styles}
}

// Print implements scrollback.Painter.
func (c *canvas) Print(row int, text string) {
	style := c.styles.LineStyle(text)
	for i, segment := range scrollback.Wrap(text, c.width) {
		c.set(row+i, segment, style.Render(segment))
	}
}

// Highlight implements scrollback.Painter.
func (c *canvas) Highlight(row int, text, needle string, width int) []int {
	spans := occurrences(text, needle)
	offset := 0
	for i, segment := range scrollback.Wrap(text, width) {
		c.set(row+i, segment, c.renderSpans(segment, offset, spans))
		offset += len(segment)
	}
	return scrollback.MatchRows(text, needle, width)
}

// renderSpans styles the parts of segment covered by spans as matches.
// offset is the byte position of segment within the full line.
func (c *canvas) renderSpans(segment string, offset int, spans [][2]int) string {
	var b strings.Builder
	end := offset + len(segment)
	pos := offset
	for _, span := range spans {
		from, to := max(span[0], pos), min(span[1], end)
		if from >= to {
			continue
		}
		if from > pos {
			b.WriteString(c.styles.Text.Render(segment[pos-offset : from-offset]))
		}
		b.WriteString(c.styles.Match.Render(segment[from-offset : to-offset]))
		pos = to
	}
	if pos < end {
		b.WriteString(c.styles.Text.Render(segment[pos-offset:]))
	}
	return b.String()
}

func (c *canvas) set(row int, plain, styled string) {
	for len(c.rows) <= row {
		c.rows = append(c.rows, "")
		c.plain = append(c.plain, "")
	}
	c.plain[row] = plain
	c.rows[row] = styled
	c.gen++
}

// drop removes the first n rows after lines were evicted from the buffer.
func (c *canvas) drop(n int) {
	n = min(max(n, 0), len(c.rows))
	c.rows = append([]string(nil), c.rows[n:]...)
	c.plain = append([]string(nil), c.plain[n:]...)
	c.gen++
}

func (c *canvas) reset(width int, styles Styles) {
	c.width = width
	c.styles = styles
	c.rows = nil
	c.plain = nil
	c.gen++
}

// content joins every row for display, with the row at selected (absolute,
// or -1) drawn in the selection style.
func (c *canvas) content(selected int) string {
	var b strings.Builder
	for row, styled := range c.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		if row == selected {
			styled = c.styles.Selected.Render(c.plain[row])
		}
		b.WriteString(styled)
	}
	return b.String()
}

// occurrences returns the byte ranges of every non-overlapping occurrence of
// needle in text.
func occurrences(text, needle string) [][2]int {
	if needle == "" {
		return nil
	}
	var spans [][2]int
	from := 0
	for {
		idx := strings.Index(text[from:], needle)
		if idx < 0 {
			return spans
		}
		start := from + idx
		spans = append(spans, [2]int{start, start + len(needle)})
		from = start + len(needle)
	}
}
