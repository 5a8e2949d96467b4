package tui

import "github.com/gdamore/tcell/v2"

// Theme defines the colors used when widgets are created.
type Theme struct {
	BackgroundColor    tcell.Color // Screen and widget background.
	BorderColor        tcell.Color // Widget borders.
	TitleColor         tcell.Color // Widget titles.
	PrimaryTextColor   tcell.Color // Card titles.
	SecondaryTextColor tcell.Color // Card bodies.
	TrackColor         tcell.Color // Position indicator track.
	ThumbColor         tcell.Color // Position indicator thumb.

	// Accents cycles through card border colors.
	Accents []tcell.Color
}

// Styles is the theme new widgets start from.
var Styles = Theme{
	BackgroundColor:    tcell.NewRGBColor(0x1a, 0x1b, 0x26),
	BorderColor:        tcell.NewRGBColor(0x56, 0x5f, 0x89),
	TitleColor:         tcell.NewRGBColor(0xc0, 0xca, 0xf5),
	PrimaryTextColor:   tcell.NewRGBColor(0xc0, 0xca, 0xf5),
	SecondaryTextColor: tcell.NewRGBColor(0xa9, 0xb1, 0xd6),
	TrackColor:         tcell.NewRGBColor(0x3b, 0x42, 0x61),
	ThumbColor:         tcell.NewRGBColor(0x7a, 0xa2, 0xf7),
	Accents: []tcell.Color{
		tcell.NewRGBColor(0x7a, 0xa2, 0xf7),
		tcell.NewRGBColor(0xbb, 0x9a, 0xf7),
		tcell.NewRGBColor(0x9e, 0xce, 0x6a),
		tcell.NewRGBColor(0xe0, 0xaf, 0x68),
		tcell.NewRGBColor(0xf7, 0x76, 0x8e),
		tcell.NewRGBColor(0x7d, 0xcf, 0xff),
	},
}

// Accent returns the accent color for the i-th card.
func (t Theme) Accent(i int) tcell.Color {
	if len(t.Accents) == 0 {
		return t.BorderColor
	}
	return t.Accents[((i%len(t.Accents))+len(t.Accents))%len(t.Accents)]
}
