package carousel

import (
	"math"
	"slices"
)

// ItemTransform is the visual adjustment applied to a mounted item.
type ItemTransform struct {
	Alpha      float64
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
}

// IdentityTransform leaves an item unchanged.
var IdentityTransform = ItemTransform{Alpha: 1, ScaleX: 1, ScaleY: 1}

// sideDistance is the distance from the viewport center at which an item is
// fully side-styled.
func sideDistance(layout Layout) float64 {
	width := layout.ItemSize().Width
	return width/2 + layout.Spacing() + width*layout.sideRatio/2
}

// interpolate maps an item's distance from the viewport center to its
// transform. distance is viewport center minus item center.
func interpolate(layout Layout, side Transform, distance float64) ItemTransform {
	d := sideDistance(layout)
	progress := 0.0
	if d > 0 {
		progress = math.Abs(distance) / d
	}

	lerp := func(start, end float64) float64 {
		return start + (end-start)*progress
	}
	// Side items only get narrower. They keep the full item height.
	t := ItemTransform{
		Alpha:  max(lerp(1, side.Alpha), 0),
		ScaleX: max(lerp(1, side.SizeRatio), 0),
		ScaleY: 1,
	}

	// Spacing assumes neighbors at exactly the side ratio. Items shrunk past
	// it are pulled toward the center so no gap opens up.
	if t.ScaleX < side.SizeRatio {
		sideWidth := layout.ItemSize().Width * side.SizeRatio
		t.TranslateX = (side.SizeRatio - t.ScaleX) * (sideWidth + layout.itemSpacing) * sign(distance)
	}
	return t
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// zOrder returns the physical indices ordered back to front: the item
// farthest from center first, the centermost item last.
func zOrder(layout Layout, physicals []int, center float64) []int {
	order := slices.Clone(physicals)
	distance := func(p int) float64 {
		frame, _ := layout.Frame(p)
		return math.Abs(center - frame.Rect.MidX())
	}
	slices.SortStableFunc(order, func(a, b int) int {
		da, db := distance(a), distance(b)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	return order
}
