package tui

import "github.com/gdamore/tcell/v2"

const subcell = 8

// GlyphSet defines the track and fractional thumb glyphs of an Indicator.
// ThumbLeft[i] covers the left (i+1)/8 of a cell, ThumbRight[i] the right
// (i+1)/8.
type GlyphSet struct {
	Track      rune
	ThumbLeft  [subcell]rune
	ThumbRight [subcell]rune
}

// LegacyComputingGlyphSet uses the legacy computing block for full 1/8 cell
// fidelity on both thumb edges.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		Track:      '─',
		ThumbLeft:  [subcell]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
		ThumbRight: [subcell]rune{'▕', '🮇', '🮈', '▐', '🮉', '🮊', '🮋', '█'},
	}
}

// UnicodeGlyphSet approximates the right thumb edge with standard blocks.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		Track:      '─',
		ThumbLeft:  [subcell]rune{'▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'},
		ThumbRight: [subcell]rune{'▕', '▕', '▐', '▐', '▐', '▐', '█', '█'},
	}
}

// Indicator is a one row horizontal bar showing which part of the content is
// in view. The thumb moves in 1/8 cell steps.
type Indicator struct {
	*Box

	contentLen  int
	viewportLen int
	offset      int

	glyphSet   GlyphSet
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewIndicator returns an empty indicator.
func NewIndicator() *Indicator {
	return &Indicator{
		Box:        NewBox(),
		glyphSet:   LegacyComputingGlyphSet(),
		trackStyle: tcell.StyleDefault.Foreground(Styles.TrackColor).Background(Styles.BackgroundColor),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.ThumbColor).Background(Styles.BackgroundColor),
	}
}

// SetLengths sets the content and viewport lengths.
func (i *Indicator) SetLengths(contentLen, viewportLen int) *Indicator {
	i.contentLen = max(contentLen, 0)
	i.viewportLen = max(viewportLen, 0)
	return i
}

// SetOffset sets the offset of the viewport within the content.
func (i *Indicator) SetOffset(offset int) *Indicator {
	i.offset = max(offset, 0)
	return i
}

// SetGlyphSet applies a glyph set.
func (i *Indicator) SetGlyphSet(g GlyphSet) *Indicator {
	i.glyphSet = g
	return i
}

type indicatorMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeMetrics returns the thumb geometry in subcell units.
func computeMetrics(trackCells, contentLen, viewportLen, offset int) indicatorMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return indicatorMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := max(contentLen-viewportLen, 0)
	offset = min(max(offset, 0), maxOffset)

	if maxOffset == 0 {
		return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbTravel := max(trackLen-thumbLen, 0)
	thumbStart := (thumbTravel * offset) / maxOffset
	return indicatorMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns the cell-local start and length of the thumb in a cell.
func cellFill(m indicatorMetrics, cell int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cell * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (i *Indicator) glyphFor(start, fillLen int) (rune, tcell.Style) {
	switch {
	case fillLen <= 0:
		return i.glyphSet.Track, i.trackStyle
	case fillLen >= subcell:
		return i.glyphSet.ThumbLeft[subcell-1], i.thumbStyle
	case start == 0:
		return i.glyphSet.ThumbLeft[fillLen-1], i.thumbStyle
	default:
		return i.glyphSet.ThumbRight[fillLen-1], i.thumbStyle
	}
}

// Draw draws the indicator on the first row of its inner rectangle. Nothing
// is drawn when the whole content is in view.
func (i *Indicator) Draw(screen tcell.Screen) {
	i.DrawFrame(screen)

	x, y, width, height := i.GetInnerRect()
	if width <= 0 || height <= 0 || i.contentLen <= i.viewportLen {
		return
	}
	m := computeMetrics(width, i.contentLen, i.viewportLen, i.offset)
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := i.glyphFor(cellFill(m, cell))
		screen.SetContent(x+cell, y, glyph, nil, style)
	}
}

var _ Primitive = &Indicator{}
