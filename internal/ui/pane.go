package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/flow/internal/config"
	"github.com/five82/flow/internal/scrollback"
)

type searchMode int

const (
	searchIdle searchMode = iota
	searchTyping
	searchNavigating
)

// pane is one tab: a filtered buffer of log lines, the canvas it is painted
// on and the window currently shown.
type pane struct {
	tab     config.Tab
	filters []string
	buf     *scrollback.Buffer
	canvas  *canvas
	view    scrollback.Viewport
	width   int

	display viewport.Model
	// canvas generation and selected row last handed to display
	shownGen      int
	shownSelected int

	query   string
	mode    searchMode
	matched int

	cursor    scrollback.Match
	hasCursor bool
}

func newPane(tab config.Tab, width, rows int, styles Styles) *pane {
	var filters []string
	if tab.Contains != "" {
		filters = []string{tab.Contains}
	}
	return &pane{
		tab:           tab,
		filters:       filters,
		buf:           scrollback.NewBuffer(),
		canvas:        newCanvas(width, styles),
		view:          scrollback.Viewport{Rows: rows},
		width:         width,
		display:       viewport.New(width, rows),
		shownSelected: -1,
	}
}

// accepts reports whether text belongs in this tab.
func (p *pane) accepts(text string) bool {
	for _, f := range p.filters {
		if !strings.Contains(text, f) {
			return false
		}
	}
	return true
}

// pin returns a new pane holding the lines of p that contain the active
// query. The new pane keeps collecting lines that pass both filters.
func (p *pane) pin(rows int) *pane {
	tab := config.Tab{Name: p.query, Contains: p.query}
	pinned := newPane(tab, p.width, rows, p.canvas.styles)
	pinned.filters = append(slices.Clone(p.filters), p.query)
	pinned.buf = p.buf.Matching(p.query)
	pinned.repaint(p.canvas.styles)
	return pinned
}

// appendLines adds the lines this tab accepts, then evicts the oldest lines
// beyond maxLines. A window scrolled back into history keeps showing the
// same rows.
func (p *pane) appendLines(lines []string, maxLines int) {
	added := 0
	for _, text := range lines {
		if !p.accepts(text) {
			continue
		}
		row := p.buf.Height()
		p.buf.Append(text, scrollback.Measure(text, p.width), nil)
		p.canvas.Print(row, text)
		if p.query != "" && p.buf.SearchLast(p.query, p.canvas, p.width) {
			p.matched++
		}
		added++
	}
	if added > 0 && !p.view.Following() {
		p.view.ReverseIndex += p.buf.LastLinesHeight(added)
	}
	p.trim(maxLines)
}

func (p *pane) trim(maxLines int) {
	lines, rows := p.buf.Trim(maxLines)
	if lines == 0 {
		return
	}
	p.canvas.drop(rows)
	p.matched = p.countMatchingLines()
	if p.hasCursor {
		p.cursor.Line -= lines
		if p.cursor.Line < 0 {
			p.hasCursor = false
		}
	}
	p.view = p.view.ScrollBy(0, p.buf.Height())
}

// clear drops every line, used when the log source restarts.
func (p *pane) clear() {
	p.buf.Clear()
	p.canvas.reset(p.width, p.canvas.styles)
	p.view.ReverseIndex = 0
	p.matched = 0
	p.hasCursor = false
}

// resize re-measures every line when the width changes and repaints.
func (p *pane) resize(width, rows int) {
	p.view.Rows = max(rows, 1)
	p.display.Width = width
	p.display.Height = p.view.Rows
	if width != p.width {
		p.width = width
		p.repaint(p.canvas.styles)
	}
	p.view = p.view.ScrollBy(0, p.buf.Height())
}

// repaint redraws every line with styles, re-measuring at the pane width and
// re-running the active query.
func (p *pane) repaint(styles Styles) {
	p.canvas.reset(p.width, styles)
	row := 0
	for _, line := range p.buf.All() {
		line.Height = scrollback.Measure(line.Text, p.width)
		line.UpdateMatches(nil)
		p.canvas.Print(row, line.Text)
		row += line.Height
	}
	if p.query == "" {
		return
	}
	p.matched = p.buf.Search(p.query, p.canvas, p.width)
	if p.hasCursor {
		line := p.buf.At(p.cursor.Line)
		if !line.HasMatches() {
			p.hasCursor = false
			return
		}
		p.cursor.Index = min(p.cursor.Index, line.MatchCount()-1)
	}
}

// setQuery re-runs the search for query. The window stays put when it
// already shows a match; otherwise it jumps to the newest match.
func (p *pane) setQuery(query string) {
	p.query = query
	p.matched = p.buf.Search(query, p.canvas, p.width)
	p.hasCursor = false

	if query == "" {
		p.mode = searchIdle
		return
	}
	if p.mode == searchIdle {
		p.mode = searchTyping
	}
	if p.matched == 0 {
		return
	}

	if m, ok := p.buf.VisibleMatch(p.view); ok {
		p.cursor = m
	} else {
		p.cursor = p.buf.LastMatch()
	}
	p.hasCursor = true
	p.reveal()
}

// nextMatch moves the cursor one matched row toward the newest line,
// wrapping to the oldest match.
func (p *pane) nextMatch() {
	if p.matched == 0 {
		return
	}
	p.mode = searchNavigating
	switch {
	case !p.hasCursor:
		p.cursor = p.buf.LastMatch()
	case p.cursor.Index < p.buf.At(p.cursor.Line).MatchCount()-1:
		p.cursor.Index++
	default:
		m, ok := p.buf.NextMatch(p.cursor.Line)
		if !ok {
			m, _ = p.buf.NextMatch(-1)
		}
		m.Index = 0
		p.cursor = m
	}
	p.hasCursor = true
	p.reveal()
}

// previousMatch moves the cursor one matched row toward the oldest line,
// wrapping to the newest match.
func (p *pane) previousMatch() {
	if p.matched == 0 {
		return
	}
	p.mode = searchNavigating
	switch {
	case !p.hasCursor:
		p.cursor = p.buf.LastMatch()
	case p.cursor.Index > 0:
		p.cursor.Index--
	default:
		m, ok := p.buf.PreviousMatch(p.cursor.Line)
		if !ok {
			m = p.buf.LastMatch()
		}
		p.cursor = m
	}
	p.hasCursor = true
	p.reveal()
}

func (p *pane) reveal() {
	r := p.buf.ReverseIndex(p.cursor.Line, p.cursor.Index)
	if r > p.view.ReverseIndex && p.buf.IsMatchVisible(p.cursor, p.view) {
		return
	}
	p.view = p.view.Reveal(r, p.buf.Height())
}

func (p *pane) scroll(delta int) {
	p.view = p.view.ScrollBy(delta, p.buf.Height())
}

func (p *pane) top() {
	p.view = p.view.ScrollBy(p.buf.Height(), p.buf.Height())
}

func (p *pane) follow() {
	p.view.ReverseIndex = 0
}

// cursorRow returns the absolute row of the cursor, or -1.
func (p *pane) cursorRow() int {
	if !p.hasCursor {
		return -1
	}
	return p.buf.Height() - p.buf.ReverseIndex(p.cursor.Line, p.cursor.Index)
}

// matchPosition returns the cursor's 1-based ordinal and the total matched
// rows, zero when nothing is selected.
func (p *pane) matchPosition() (int, int) {
	if p.matched == 0 {
		return 0, 0
	}
	total := p.buf.MatchTotal()
	if !p.hasCursor {
		return 0, total
	}
	return p.buf.MatchOrdinal(p.cursor), total
}

// render draws the window through the display viewport. Content is only
// handed over again when the canvas or the selected row changed.
func (p *pane) render() string {
	selected := p.cursorRow()
	if p.canvas.gen != p.shownGen || selected != p.shownSelected {
		p.display.SetContent(p.canvas.content(selected))
		p.shownGen, p.shownSelected = p.canvas.gen, selected
	}
	p.display.SetYOffset(p.view.Top(p.buf.Height()))
	return p.display.View()
}

func (p *pane) countMatchingLines() int {
	n := 0
	for _, line := range p.buf.All() {
		if line.HasMatches() {
			n++
		}
	}
	return n
}
