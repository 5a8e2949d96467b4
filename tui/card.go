package tui

import "github.com/gdamore/tcell/v2"

// Card is an item view with a title and a wrapped body inside an accented
// border. It is handed to the carousel engine as a view handle and drawn by
// the Surface.
type Card struct {
	title  string
	body   string
	accent tcell.Color

	borderSet BorderSet
	// Background tint towards the accent color, in [0, 1].
	tint float64
}

// NewCard returns a card with the given title, body and accent color.
func NewCard(title, body string, accent tcell.Color) *Card {
	return &Card{
		title:     title,
		body:      body,
		accent:    accent,
		borderSet: BorderSetRound(),
		tint:      0.12,
	}
}

// Title returns the card's title.
func (c *Card) Title() string {
	return c.title
}

// SetBody sets the text below the title.
func (c *Card) SetBody(body string) *Card {
	c.body = body
	return c
}

// SetBorderSet sets the runes the card border is drawn with.
func (c *Card) SetBorderSet(set BorderSet) *Card {
	c.borderSet = set
	return c
}

// DrawItem draws the card into the given rectangle. A terminal cannot blend
// cells, so alpha fades every color towards the theme background instead.
func (c *Card) DrawItem(screen tcell.Screen, x, y, width, height int, alpha float64) {
	if width <= 0 || height <= 0 {
		return
	}
	fade := func(color tcell.Color) tcell.Color {
		return Blend(Styles.BackgroundColor, color, alpha)
	}

	background := fade(Blend(Styles.BackgroundColor, c.accent, c.tint))
	fill(screen, x, y, width, height, ' ', tcell.StyleDefault.Background(background))
	if width < 3 || height < 3 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(fade(c.accent)).Background(background)
	drawBorder(screen, x, y, width, height, BordersAll, c.borderSet, borderStyle)

	innerX, innerY := x+1, y+1
	innerWidth, innerHeight := width-2, height-2

	titleStyle := tcell.StyleDefault.Foreground(fade(Styles.PrimaryTextColor)).Background(background).Bold(true)
	Print(screen, Truncate(c.title, innerWidth), innerX, innerY, innerWidth, AlignmentCenter, titleStyle)

	rows := innerHeight - 2
	if rows <= 0 || c.body == "" {
		return
	}
	bodyStyle := tcell.StyleDefault.Foreground(fade(Styles.SecondaryTextColor)).Background(background)
	lines := WordWrap(c.body, innerWidth)
	for i := 0; i < len(lines) && i < rows; i++ {
		line := lines[i]
		if i == rows-1 && len(lines) > rows {
			line = ellipsize(line, innerWidth)
		}
		Print(screen, line, innerX, innerY+2+i, innerWidth, AlignmentLeft, bodyStyle)
	}
}

// ellipsize marks a line as cut off.
func ellipsize(line string, width int) string {
	if StringWidth(line) < width {
		return line + Ellipsis
	}
	return Truncate(line+Ellipsis, width)
}
