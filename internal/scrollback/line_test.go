package scrollback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_SearchMatchRecordsRows(t *testing.T) {
	text := "error one; padding padding error two"
	width := 10
	line := newLine(text, Measure(text, width), nil)

	p := &recorder{}
	require.True(t, line.Search("error", p, width, 7))
	assert.Equal(t, []int{7}, p.prints)
	assert.Equal(t, []int{7}, p.highlights)

	matches := line.Matches()
	require.NotEmpty(t, matches)
	for i, row := range matches {
		assert.Less(t, row, line.Height)
		if i > 0 {
			assert.Greater(t, row, matches[i-1])
		}
	}
	assert.Equal(t, len(matches), line.MatchCount())
}

func TestLine_SearchIsCaseSensitive(t *testing.T) {
	line := newLine("Error here", 1, nil)
	p := &recorder{}
	assert.False(t, line.Search("error", p, 80, 0))
	assert.False(t, line.HasMatches())
	assert.Empty(t, p.prints)
}

func TestLine_ClearingRepaintsExactlyOnce(t *testing.T) {
	for _, needle := range []string{"", "absent"} {
		t.Run("needle="+needle, func(t *testing.T) {
			line := newLine("some text", 1, nil)
			require.True(t, line.Search("text", &recorder{}, 80, 0))

			p := &recorder{}
			assert.False(t, line.Search(needle, p, 80, 3))
			assert.False(t, line.HasMatches())
			assert.Equal(t, []int{3}, p.prints)
			assert.Empty(t, p.highlights)

			// already cleared, nothing left to erase
			p = &recorder{}
			assert.False(t, line.Search(needle, p, 80, 3))
			assert.Empty(t, p.prints)
		})
	}
}

func TestLine_UpdateMatches(t *testing.T) {
	line := newLine("x", 3, nil)

	assert.False(t, line.UpdateMatches(nil))
	assert.False(t, line.UpdateMatches([]int{}))
	assert.True(t, line.UpdateMatches([]int{0, 2}))
	assert.False(t, line.UpdateMatches([]int{0, 2}))
	assert.True(t, line.UpdateMatches([]int{1}))
	assert.True(t, line.UpdateMatches(nil))
	assert.False(t, line.HasMatches())
}

func TestLine_MatchCountPanicsWithoutMatches(t *testing.T) {
	line := newLine("x", 1, nil)
	assert.Panics(t, func() { line.MatchCount() })
}

func TestLine_OwnsItsMatches(t *testing.T) {
	rows := []int{0, 1}
	line := newLine("x", 2, nil)
	line.UpdateMatches(rows)
	rows[0] = 5
	assert.Equal(t, []int{0, 1}, line.Matches())
}

func TestLine_MatchesReturnsCopy(t *testing.T) {
	line := newLine("x", 2, []int{0, 1})
	got := line.Matches()
	got[0] = 7
	assert.Equal(t, []int{0, 1}, line.Matches())
}
