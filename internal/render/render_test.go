package render_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"pickandtip/backend/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestRowsMapsEveryRecord(t *testing.T) {
	rows := render.Rows([]int{1, 2, 3}, func(v int) string {
		return strings.Repeat("x", v)
	})

	assert.Equal(t, []string{"x", "xx", "xxx"}, rows)
}

func TestRowsEmptyInput(t *testing.T) {
	rows := render.Rows(nil, func(v int) int { return v })

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSummarize(t *testing.T) {
	s := render.Summarize(12)
	assert.Equal(t, "12", s.Count)
	assert.False(t, s.NoResults)
}

func TestSummarizeEmptySetFlagsNoResults(t *testing.T) {
	s := render.Summarize(0)
	assert.Equal(t, "0", s.Count)
	assert.True(t, s.NoResults)
}

func TestNotesCellShortTextPassesThrough(t *testing.T) {
	notes := render.NotesCell("Taxe annuelle sur la valeur cadastrale.")

	assert.Equal(t, "Taxe annuelle sur la valeur cadastrale.", notes.Text)
	assert.Empty(t, notes.Tooltip)
}

func TestNotesCellLongTextTruncatesWithTooltip(t *testing.T) {
	long := strings.Repeat("abcde ", 60) // 360 chars

	notes := render.NotesCell(long)

	assert.True(t, strings.HasSuffix(notes.Text, "..."))
	assert.LessOrEqual(t, len(notes.Text), 203)
	assert.NotEqual(t, " ", string(notes.Text[len(notes.Text)-4]))
	assert.Equal(t, long, notes.Tooltip)
}

func TestNotesCellCountsRunesNotBytes(t *testing.T) {
	// An accented rune straddling the byte boundary must survive the cut.
	long := strings.Repeat("x", 199) + "é" + strings.Repeat("à la crème ", 10)

	notes := render.NotesCell(long)

	assert.True(t, utf8.ValidString(notes.Text))
	assert.True(t, strings.HasSuffix(notes.Text, "é..."))
	assert.Equal(t, long, notes.Tooltip)
}

func TestNotesCellShortMultiByteTextPassesThrough(t *testing.T) {
	// 150 runes but well over 150 bytes; still under the preview length.
	short := strings.Repeat("é", 150)

	notes := render.NotesCell(short)

	assert.Equal(t, short, notes.Text)
	assert.Empty(t, notes.Tooltip)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "20%", render.Percent(20))
	assert.Equal(t, "5.5%", render.Percent(5.5))
	assert.Equal(t, "0%", render.Percent(0))
}

func TestRange(t *testing.T) {
	assert.Equal(t, "3-5", render.Range(3, 5))
	assert.Equal(t, "1.5-2.5", render.Range(1.5, 2.5))
}
