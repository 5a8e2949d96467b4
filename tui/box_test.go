package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRect(t *testing.T) {
	tests := []struct {
		name    string
		borders Borders
		title   string
		padding [4]int
		want    [4]int
	}{
		{"plain", BordersNone, "", [4]int{}, [4]int{2, 3, 10, 5}},
		{"all borders", BordersAll, "", [4]int{}, [4]int{3, 4, 8, 3}},
		{"title only", BordersNone, "t", [4]int{}, [4]int{2, 4, 10, 4}},
		{"padding", BordersAll, "", [4]int{1, 0, 2, 1}, [4]int{5, 5, 5, 2}},
		{"clamped", BordersAll, "", [4]int{5, 5, 5, 5}, [4]int{8, 9, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBox().SetBorders(tt.borders).SetTitle(tt.title)
			b.SetBorderPadding(tt.padding[0], tt.padding[1], tt.padding[2], tt.padding[3])
			b.SetRect(2, 3, 10, 5)

			x, y, w, h := b.GetInnerRect()
			assert.Equal(t, tt.want, [4]int{x, y, w, h})
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox().SetBorders(BordersAll)
	b.SetRect(0, 0, 4, 4)

	assert.True(t, b.InRect(0, 0))
	assert.False(t, b.InInnerRect(0, 0))
	assert.True(t, b.InInnerRect(1, 1))
	assert.False(t, b.InRect(4, 0))
}

func TestBoxDraw(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	b := NewBox().SetBorders(BordersAll).SetTitle("hi").SetBorderSet(BorderSetDouble())
	b.SetRect(0, 0, 10, 3)

	b.Draw(screen)

	set := BorderSetDouble()
	assert.Equal(t, set.TopLeft, runeAt(screen, 0, 0))
	assert.Equal(t, set.BottomRight, runeAt(screen, 9, 2))
	assert.Equal(t, set.Left, runeAt(screen, 0, 1))
	assert.Equal(t, 'h', runeAt(screen, 4, 0))
}

func TestBorderSetByName(t *testing.T) {
	set, ok := BorderSetByName("")
	assert.True(t, ok)
	assert.Equal(t, BorderSetRound(), set)

	_, ok = BorderSetByName("dotted")
	assert.False(t, ok)
}
