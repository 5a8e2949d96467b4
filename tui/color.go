package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend mixes from toward to by t in [0, 1] in HCL space. Terminals have no
// alpha channel, so a faded item is drawn as its colors blended toward the
// background. Colors without an RGB value switch over at t = 0.5.
func Blend(from, to tcell.Color, t float64) tcell.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}

	a, okA := toColorful(from)
	b, okB := toColorful(to)
	if !okA || !okB {
		if t < 0.5 {
			return from
		}
		return to
	}
	r, g, bl := a.BlendHcl(b, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if c == tcell.ColorDefault || !c.Valid() {
		return colorful.Color{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}
