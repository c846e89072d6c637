package scrollback

// Viewport is the visible window of a pane in bottom-anchored coordinates.
type Viewport struct {
	// ReverseIndex is the number of rows between the bottom of the buffer
	// and the window's trailing edge.
	ReverseIndex int
	// Rows is the number of visible rows.
	Rows int
}

// Limit returns the window's leading edge.
func (v Viewport) Limit() int {
	return v.ReverseIndex + v.Rows
}

// Following reports whether the window shows the newest row.
func (v Viewport) Following() bool {
	return v.ReverseIndex == 0
}

// Top returns the absolute row drawn on the window's first line for a
// buffer of total rows.
func (v Viewport) Top(total int) int {
	return max(0, total-v.Limit())
}

// ScrollBy moves the window delta rows back into history (negative delta
// moves toward the newest row), keeping it inside a buffer of total rows.
func (v Viewport) ScrollBy(delta, total int) Viewport {
	v.ReverseIndex = v.clamp(v.ReverseIndex+delta, total)
	return v
}

// Reveal returns the closest window that shows reverse row r.
func (v Viewport) Reveal(r, total int) Viewport {
	switch {
	case r <= v.ReverseIndex:
		v.ReverseIndex = r - 1
	case r > v.Limit():
		v.ReverseIndex = r - v.Rows
	}
	v.ReverseIndex = v.clamp(v.ReverseIndex, total)
	return v
}

func (v Viewport) clamp(reverse, total int) int {
	return min(max(reverse, 0), max(total-v.Rows, 0))
}

// Match identifies one matched row: the line index in the buffer and the
// index into that line's matched rows.
type Match struct {
	Line  int
	Index int
}
