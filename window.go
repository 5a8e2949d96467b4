package carousel

import (
	"slices"
	"sort"
)

// DefaultPreloadDistance is how far beyond each horizontal viewport edge items
// are materialized ahead of time.
const DefaultPreloadDistance = 80

// windowDiff is the minimal change between two mounted sets. Both slices are
// sorted by physical index.
type windowDiff struct {
	mount   []int
	unmount []int
}

func (d windowDiff) empty() bool {
	return len(d.mount) == 0 && len(d.unmount) == 0
}

// visibleRange returns the physical indices whose frames overlap the viewport
// widened by preload on both horizontal sides, in ascending order.
func visibleRange(layout Layout, offset float64, preload float64) []int {
	if layout.Empty() {
		return nil
	}
	viewport := layout.Viewport()
	if viewport.Empty() {
		return nil
	}
	left := offset - preload
	right := offset + viewport.Width + preload

	frames := layout.frames
	// Frames are sorted by x, so skip everything ending at or before left.
	start := sort.Search(len(frames), func(i int) bool {
		return frames[i].Rect.MaxX() > left
	})

	var indices []int
	for i := start; i < len(frames); i++ {
		if frames[i].Rect.MinX() >= right {
			break
		}
		indices = append(indices, frames[i].Physical)
	}
	return indices
}

// diffWindow returns which physical indices to mount and unmount to go from
// prev to next. Inputs need not be sorted.
func diffWindow(prev, next []int) windowDiff {
	inPrev := make(map[int]struct{}, len(prev))
	for _, p := range prev {
		inPrev[p] = struct{}{}
	}
	inNext := make(map[int]struct{}, len(next))
	for _, p := range next {
		inNext[p] = struct{}{}
	}

	var d windowDiff
	for _, p := range next {
		if _, ok := inPrev[p]; !ok {
			d.mount = append(d.mount, p)
		}
	}
	for _, p := range prev {
		if _, ok := inNext[p]; !ok {
			d.unmount = append(d.unmount, p)
		}
	}
	slices.Sort(d.mount)
	slices.Sort(d.unmount)
	return d
}

// sortVisibleItems orders items by logical index, then by physical index so
// replicas of the same item keep a stable order.
func sortVisibleItems(items []VisibleItem) {
	slices.SortFunc(items, func(a, b VisibleItem) int {
		if a.Logical != b.Logical {
			return a.Logical - b.Logical
		}
		return a.Physical - b.Physical
	})
}
