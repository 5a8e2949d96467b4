package tui

import (
	"github.com/gdamore/tcell/v2"
)

// Box is a rectangle with an optional border and title. It does not hold any
// content itself but is embedded by the other widgets, which draw within its
// inner rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	// The box's background color.
	backgroundColor tcell.Color

	// If set to true, the background of this box is not cleared while drawing.
	dontClear bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		backgroundColor: Styles.BackgroundColor,
		borderSet:       BorderSetRound(),
		borderStyle:     tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.BackgroundColor),
		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment:  AlignmentCenter,
	}
}

// SetBorderPadding sets the size of the padding inside the border.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	x, y, width, height := b.GetRect()

	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= b.paddingLeft + b.paddingRight
	height -= b.paddingTop + b.paddingBottom
	return x, y, max(width, 0), max(height, 0)
}

// SetRect sets a new position of the box.
func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// InInnerRect returns true if the given coordinate is within the bounds of the
// box's inner rectangle (within the border and padding).
func (b *Box) InInnerRect(x, y int) bool {
	rectX, rectY, width, height := b.GetInnerRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBackgroundColor sets the box's background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

// GetBackgroundColor returns the box's background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetDontClear disables clearing the background before drawing.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	return b
}

// SetBorderSet sets the runes the border is drawn with.
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// GetTitle returns the box's current title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the box's title.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

// SetTitleStyle sets the style of the title.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.titleStyle = style
	return b
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.titleAlignment = alignment
	return b
}

// InputHandler ignores all key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler ignores all mouse events.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	return nil, nil
}

// Draw draws this box onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawFrame(screen)
}

// DrawFrame draws the background, border and title. Widgets embedding Box
// call it before drawing their content.
func (b *Box) DrawFrame(screen tcell.Screen) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		fill(screen, b.x, b.y, b.width, b.height, ' ', tcell.StyleDefault.Background(b.backgroundColor))
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		drawBorder(screen, b.x, b.y, b.width, b.height, b.borders, b.borderSet, b.borderStyle)
	}

	if b.title != "" && b.width >= 4 {
		title := Truncate(b.title, b.width-2)
		Print(screen, title, b.x+1, b.y, b.width-2, b.titleAlignment, b.titleStyle)
	}
}

// drawBorder draws the selected sides of a rectangle outline.
func drawBorder(screen tcell.Screen, x, y, width, height int, borders Borders, set BorderSet, style tcell.Style) {
	right, bottom := x+width-1, y+height-1
	if borders.Has(BordersTop) {
		fill(screen, x+1, y, width-2, 1, set.Top, style)
	}
	if borders.Has(BordersBottom) {
		fill(screen, x+1, bottom, width-2, 1, set.Bottom, style)
	}
	if borders.Has(BordersLeft) {
		fill(screen, x, y+1, 1, height-2, set.Left, style)
	}
	if borders.Has(BordersRight) {
		fill(screen, right, y+1, 1, height-2, set.Right, style)
	}
	if borders.Has(BordersTop | BordersLeft) {
		screen.SetContent(x, y, set.TopLeft, nil, style)
	}
	if borders.Has(BordersTop | BordersRight) {
		screen.SetContent(right, y, set.TopRight, nil, style)
	}
	if borders.Has(BordersBottom | BordersLeft) {
		screen.SetContent(x, bottom, set.BottomLeft, nil, style)
	}
	if borders.Has(BordersBottom | BordersRight) {
		screen.SetContent(right, bottom, set.BottomRight, nil, style)
	}
}

var _ Primitive = &Box{}
