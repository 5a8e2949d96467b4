package carousel

import (
	"math"
	"sort"
)

// Multiplier values for the physical item space.
const (
	finiteMultiplier   = 1
	infiniteMultiplier = 3
)

// Size is a width and height in layout units.
type Size struct {
	Width, Height float64
}

// Empty returns true if either dimension is not positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle in content coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// ContainsX returns true if x lies within [MinX, MaxX).
func (r Rect) ContainsX(x float64) bool {
	return x >= r.MinX() && x < r.MaxX()
}

// ItemFrame is the rectangle of one physical item.
type ItemFrame struct {
	Physical int
	Rect     Rect
}

// Layout is the immutable result of one geometry pass. All values are
// rounded to whole units.
type Layout struct {
	frames []ItemFrame

	count      int
	multiplier int
	infinite   bool

	viewport     Size
	itemSize     Size
	spacing      float64
	itemSpacing  float64
	sideRatio    float64
	leftInset    float64
	rightInset   float64
	contentWidth float64
}

// BuildLayout computes the frames of count logical items for the given
// appearance and viewport. In infinite mode the items are replicated three
// times. An empty layout is returned when there are no items or the viewport
// is empty.
func BuildLayout(count int, appearance Appearance, viewport Size, infinite bool) Layout {
	multiplier := finiteMultiplier
	if infinite {
		multiplier = infiniteMultiplier
	}
	l := Layout{
		count:       max(count, 0),
		multiplier:  multiplier,
		infinite:    infinite,
		viewport:    viewport,
		itemSpacing: appearance.ItemSpacing,
		sideRatio:   appearance.SideItemTransform.SizeRatio,
	}
	if l.count == 0 || viewport.Empty() {
		return l
	}

	insets := appearance.AdditionalInsets
	centerWidth := centerItemWidth(appearance, viewport)
	if centerWidth <= 0 {
		return l
	}
	height := math.Round(viewport.Height - insets.Top - insets.Bottom)
	l.itemSize = Size{Width: centerWidth, Height: height}

	// Side items shrink around their own centers, which widens the visible gap
	// next to the centered item. Remove that extra gap from the layout pitch.
	shrink := 0.0
	for _, ratio := range []float64{1, appearance.SideItemTransform.SizeRatio} {
		shrink += centerWidth * (1 - ratio) / 2
	}
	l.spacing = math.Round(appearance.ItemSpacing - shrink)

	sideInset := (viewport.Width - centerWidth) / 2
	if !infinite {
		l.leftInset = math.Round(sideInset + insets.Left)
		l.rightInset = math.Round(sideInset + insets.Right)
	}

	pitch := centerWidth + l.spacing
	top := math.Round(insets.Top)
	total := l.count * multiplier
	l.frames = make([]ItemFrame, total)
	for i := range total {
		l.frames[i] = ItemFrame{
			Physical: i,
			Rect: Rect{
				X:      float64(i)*pitch + l.leftInset,
				Y:      top,
				Width:  centerWidth,
				Height: height,
			},
		}
	}

	if infinite {
		l.contentWidth = float64(multiplier) * l.SectionWidth()
	} else {
		l.contentWidth = l.frames[total-1].Rect.MaxX() + l.rightInset
	}
	return l
}

func centerItemWidth(appearance Appearance, viewport Size) float64 {
	ratio := appearance.CenterItemWidth.Ratio
	if appearance.CenterItemWidth.Dimension == DimensionHeight {
		insets := appearance.AdditionalInsets
		return math.Round(ratio * (viewport.Height - insets.Top - insets.Bottom))
	}
	return math.Round(ratio * viewport.Width)
}

// Frames returns a copy of the item frames, sorted by physical index.
func (l Layout) Frames() []ItemFrame {
	frames := make([]ItemFrame, len(l.frames))
	copy(frames, l.frames)
	return frames
}

// Frame returns the frame of a physical index.
func (l Layout) Frame(physical int) (ItemFrame, bool) {
	if physical < 0 || physical >= len(l.frames) {
		return ItemFrame{}, false
	}
	return l.frames[physical], true
}

// Len returns the number of physical items.
func (l Layout) Len() int {
	return len(l.frames)
}

// Count returns the number of logical items.
func (l Layout) Count() int {
	return l.count
}

// Multiplier returns the number of replicas.
func (l Layout) Multiplier() int {
	return l.multiplier
}

// Infinite returns true if the layout is replicated for wraparound.
func (l Layout) Infinite() bool {
	return l.infinite
}

// Empty returns true if the layout has no frames.
func (l Layout) Empty() bool {
	return len(l.frames) == 0
}

// Viewport returns the viewport size the layout was computed for.
func (l Layout) Viewport() Size {
	return l.viewport
}

// ItemSize returns the size shared by every item.
func (l Layout) ItemSize() Size {
	return l.itemSize
}

// Spacing returns the derived layout spacing between two frames. It may be
// negative when side items shrink more than the configured spacing.
func (l Layout) Spacing() float64 {
	return l.spacing
}

// Pitch returns the distance between the left edges of two neighbors.
func (l Layout) Pitch() float64 {
	return l.itemSize.Width + l.spacing
}

// SectionWidth returns the width of one replica of the logical items.
func (l Layout) SectionWidth() float64 {
	return float64(l.count) * l.Pitch()
}

// ContentWidth returns the scrollable width of the whole content.
func (l Layout) ContentWidth() float64 {
	return l.contentWidth
}

// MaxOffset returns the largest scroll offset that keeps the viewport within
// the content.
func (l Layout) MaxOffset() float64 {
	return max(l.contentWidth-l.viewport.Width, 0)
}

// CenteringOffset returns the scroll offset that centers the given physical
// item.
func (l Layout) CenteringOffset(physical int) (float64, bool) {
	frame, ok := l.Frame(physical)
	if !ok {
		return 0, false
	}
	return frame.Rect.MidX() - l.viewport.Width/2, true
}

// Nearest returns the physical index whose frame center is closest to x.
// Ties resolve to the lower index.
func (l Layout) Nearest(x float64) (int, bool) {
	n := len(l.frames)
	if n == 0 {
		return 0, false
	}
	// Centers are strictly increasing, so the first center at or past x and
	// its predecessor are the only candidates.
	i := sort.Search(n, func(i int) bool {
		return l.frames[i].Rect.MidX() >= x
	})
	switch {
	case i == 0:
		return 0, true
	case i == n:
		return n - 1, true
	}
	before := x - l.frames[i-1].Rect.MidX()
	after := l.frames[i].Rect.MidX() - x
	if before <= after {
		return i - 1, true
	}
	return i, true
}
