package scrollback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_Limit(t *testing.T) {
	v := Viewport{ReverseIndex: 3, Rows: 10}
	assert.Equal(t, 13, v.Limit())
	assert.False(t, v.Following())
	assert.True(t, Viewport{Rows: 10}.Following())
}

func TestViewport_Top(t *testing.T) {
	assert.Equal(t, 90, Viewport{Rows: 10}.Top(100))
	assert.Equal(t, 85, Viewport{ReverseIndex: 5, Rows: 10}.Top(100))
	assert.Equal(t, 0, Viewport{Rows: 10}.Top(4))
}

func TestViewport_ScrollByClamps(t *testing.T) {
	v := Viewport{Rows: 10}
	assert.Equal(t, 5, v.ScrollBy(5, 100).ReverseIndex)
	assert.Equal(t, 90, v.ScrollBy(500, 100).ReverseIndex)
	assert.Equal(t, 0, v.ScrollBy(-5, 100).ReverseIndex)
	assert.Equal(t, 0, v.ScrollBy(3, 8).ReverseIndex)
}

func TestViewport_Reveal(t *testing.T) {
	v := Viewport{ReverseIndex: 10, Rows: 5}

	// already inside (10, 15]
	assert.Equal(t, v, v.Reveal(12, 100))
	// above the window
	assert.Equal(t, 25, v.Reveal(30, 100).ReverseIndex)
	// below the window
	assert.Equal(t, 2, v.Reveal(3, 100).ReverseIndex)
	assert.Equal(t, 0, v.Reveal(1, 100).ReverseIndex)
}
