package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"abcdef", 4, "abc…"},
		{"abc", 4, "abc"},
		{"abc", 0, ""},
		{"日本語", 4, "日…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.text, tt.width), "%q in %d", tt.text, tt.width)
	}
}

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short", 10, []string{"short"}},
		{"words", "the quick brown fox", 9, []string{"the quick", "brown fox"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"newline", "one\ntwo", 10, []string{"one", "two"}},
		{"no width", "text", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordWrap(tt.text, tt.width))
		})
	}
}

func TestPrint(t *testing.T) {
	screen := newTestScreen(t, 10, 2)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	bytes, cells := Print(screen, "héllo", 0, 0, 10, AlignmentLeft, style)
	assert.Equal(t, 6, bytes)
	assert.Equal(t, 5, cells)
	assert.Equal(t, 'é', runeAt(screen, 1, 0))

	_, cells = Print(screen, "abc", 0, 1, 10, AlignmentRight, style)
	assert.Equal(t, 3, cells)
	assert.Equal(t, 'a', runeAt(screen, 7, 1))

	_, cells = Print(screen, "abcdef", 0, 1, 4, AlignmentLeft, style)
	assert.Equal(t, 4, cells)
}

func TestPrintKeepsBackground(t *testing.T) {
	screen := newTestScreen(t, 4, 1)
	background := tcell.NewRGBColor(10, 20, 30)
	fill(screen, 0, 0, 4, 1, ' ', tcell.StyleDefault.Background(background))

	Print(screen, "ab", 0, 0, 4, AlignmentLeft, tcell.StyleDefault.Foreground(tcell.ColorRed))

	_, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorRed, fg)
	assert.Equal(t, background, bg)
}
