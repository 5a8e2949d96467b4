// Package carousel implements the layout and virtualization engine of a
// horizontally scrolling carousel: one item is always centered and
// emphasized, side items are shrunk and faded, and only the items near the
// viewport are materialized.
//
// The engine does not draw. Views come from an ItemProvider, are mounted by a
// Renderer and scrolled by a ScrollSurface, which reports back through the
// ScrollHandler methods of Engine.
package carousel

import (
	"fmt"
	"io"
	"log"
	"math"
	"slices"
)

// targetTolerance is how close the offset must get to a pending animation
// target for the target to count as reached.
const targetTolerance = 0.5

// Engine computes item geometry, keeps the mounted window in sync with the
// scroll offset, keeps infinite carousels inside their middle replica and
// chooses snap targets.
//
// Engine is not safe for concurrent use. All calls, including the
// ScrollHandler callbacks, must come from one goroutine.
type Engine struct {
	provider ItemProvider
	renderer Renderer
	surface  ScrollSurface

	appearance     Appearance
	snap           SnapBehavior
	infinite       bool
	preload        float64
	velocityFactor float64
	freeEdges      bool

	logger *log.Logger

	layout  Layout
	mounted map[int]VisibleItem

	// The target of an animated scroll in flight, shifted along with every
	// wraparound correction.
	pendingTarget float64
	hasPending    bool

	// Incremented by every reload. A computation that sees a newer value
	// after calling out to a collaborator has been superseded.
	generation  uint64
	recentering bool

	scrolled func(offset float64)
	willSnap func(index int)
	selected func(index int)
}

var _ ScrollHandler = (*Engine)(nil)

// New returns an engine bound to its collaborators. Call Reload once the
// surface has a viewport size to lay out the items.
func New(provider ItemProvider, renderer Renderer, surface ScrollSurface, options ...Option) (*Engine, error) {
	e := &Engine{
		provider:       provider,
		renderer:       renderer,
		surface:        surface,
		appearance:     DefaultAppearance(),
		snap:           SnapHard,
		preload:        DefaultPreloadDistance,
		velocityFactor: DefaultVelocityFactor,
		logger:         log.New(io.Discard, "", 0),
		mounted:        make(map[int]VisibleItem),
	}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// SetScrolledFunc sets a handler called after every scroll position update.
func (e *Engine) SetScrolledFunc(handler func(offset float64)) *Engine {
	e.scrolled = handler
	return e
}

// SetWillSnapFunc sets a handler called with the logical index a released
// drag is about to settle on.
func (e *Engine) SetWillSnapFunc(handler func(index int)) *Engine {
	e.willSnap = handler
	return e
}

// SetSelectedFunc sets a handler called when an item is selected.
func (e *Engine) SetSelectedFunc(handler func(index int)) *Engine {
	e.selected = handler
	return e
}

// Appearance returns the current appearance.
func (e *Engine) Appearance() Appearance {
	return e.appearance
}

// ApplyAppearance validates and applies a new appearance and reloads when it
// differs from the current one. An invalid appearance is rejected and the
// current one stays in place.
func (e *Engine) ApplyAppearance(appearance Appearance) error {
	if err := appearance.Validate(); err != nil {
		return err
	}
	if appearance == e.appearance {
		return nil
	}
	e.appearance = appearance
	e.Reload()
	return nil
}

// SnapBehavior returns the current snap behavior.
func (e *Engine) SnapBehavior() SnapBehavior {
	return e.snap
}

// SetSnapBehavior sets how released drags settle.
func (e *Engine) SetSnapBehavior(behavior SnapBehavior) *Engine {
	e.snap = behavior
	return e
}

// Infinite returns whether wraparound scrolling is enabled.
func (e *Engine) Infinite() bool {
	return e.infinite
}

// SetInfinite toggles wraparound scrolling and reloads when it changes.
func (e *Engine) SetInfinite(infinite bool) *Engine {
	if e.infinite != infinite {
		e.infinite = infinite
		e.Reload()
	}
	return e
}

// SetPreloadDistance sets how far outside the viewport items are mounted.
func (e *Engine) SetPreloadDistance(distance float64) error {
	if err := WithPreloadDistance(distance)(e); err != nil {
		return err
	}
	e.refresh()
	return nil
}

// Layout returns the current layout.
func (e *Engine) Layout() Layout {
	return e.layout
}

// Reload rebuilds the layout from the provider and the surface's viewport,
// remounts the visible window and, when snapping is enabled, restores the
// previously centered item.
func (e *Engine) Reload() {
	e.generation++
	gen := e.generation

	restore, hasRestore := -1, false
	if e.snap != SnapNone {
		restore, hasRestore = e.CenterIndex()
	}

	e.unmountAll()
	if e.generation != gen {
		return
	}

	count := 0
	if e.provider != nil {
		count = e.provider.Count()
	}
	if e.generation != gen {
		return
	}

	e.layout = BuildLayout(count, e.appearance, e.surface.ViewportSize(), e.infinite)
	e.hasPending = false
	e.surface.SetContentWidth(e.layout.ContentWidth())
	if e.generation != gen {
		return
	}
	e.logger.Printf("carousel: reload count=%d frames=%d content=%.0f", count, e.layout.Len(), e.layout.ContentWidth())

	// The content may have shrunk below the current offset.
	if maxOffset := e.layout.MaxOffset(); e.surface.Offset() > maxOffset {
		e.surface.SetOffset(maxOffset, false)
		if e.generation != gen {
			return
		}
	}
	// The centered item is gone, so keep the one now closest to the center.
	if hasRestore && restore >= count {
		restore, hasRestore = e.CenterIndex()
	}

	// Infinite carousels start on the first item of the middle replica.
	if !hasRestore && e.infinite {
		restore, hasRestore = 0, true
	}
	if hasRestore {
		// Start from the middle replica so the restored item never needs a
		// negative offset.
		e.recenter()
		if e.generation != gen {
			return
		}
		e.scrollTo(restore, false)
		if e.generation != gen {
			return
		}
		e.recenter()
		if e.generation != gen {
			return
		}
	}
	e.refresh()
}

// Relayout reloads if the surface's viewport size differs from the one the
// current layout was built for.
func (e *Engine) Relayout() {
	if e.surface.ViewportSize() != e.layout.Viewport() {
		e.Reload()
	}
}

// ScrollTo centers the replica of a logical item nearest to the current
// position. Out of range indices are ignored.
func (e *Engine) ScrollTo(index int, animated bool) {
	e.scrollTo(index, animated)
}

func (e *Engine) scrollTo(index int, animated bool) {
	center := e.surface.Offset() + e.layout.Viewport().Width/2
	physical, ok := newIndexMap(e.layout).closestPhysical(e.layout, index, center)
	if !ok {
		return
	}
	target, _ := e.layout.CenteringOffset(physical)

	if animated {
		e.pendingTarget, e.hasPending = target, true
		e.surface.SetOffset(target, true)
		return
	}
	e.hasPending = false
	e.surface.SetOffset(target, false)
	e.refresh()
}

// CenterIndex returns the logical index of the item closest to the viewport
// center.
func (e *Engine) CenterIndex() (int, bool) {
	center := e.surface.Offset() + e.layout.Viewport().Width/2
	physical, ok := e.layout.Nearest(center)
	if !ok {
		return 0, false
	}
	return newIndexMap(e.layout).logical(physical)
}

// MountedItems returns the mounted items sorted by logical index.
func (e *Engine) MountedItems() []VisibleItem {
	items := make([]VisibleItem, 0, len(e.mounted))
	for _, item := range e.mounted {
		items = append(items, item)
	}
	sortVisibleItems(items)
	return items
}

// ItemAt returns the mounted physical item whose frame contains the content
// x coordinate.
func (e *Engine) ItemAt(x float64) (int, bool) {
	for physical := range e.mounted {
		frame, ok := e.layout.Frame(physical)
		if ok && frame.Rect.ContainsX(x) {
			return physical, true
		}
	}
	return 0, false
}

// Select reports the logical index of a physical item to the selected
// handler. Unknown indices are ignored.
func (e *Engine) Select(physical int) {
	logical, ok := newIndexMap(e.layout).logical(physical)
	if !ok {
		return
	}
	e.logger.Printf("carousel: selected %d (physical %d)", logical, physical)
	if e.selected != nil {
		e.selected(logical)
	}
}

// Scrolled implements ScrollHandler.
func (e *Engine) Scrolled(offset float64) {
	// Corrections issue their own offset updates; the outer call finishes
	// the work.
	if e.recentering {
		return
	}
	if e.infinite && nearContentEdge(e.layout, offset) {
		e.recenter()
	}

	current := e.surface.Offset()
	if e.hasPending && math.Abs(current-e.pendingTarget) < targetTolerance {
		e.hasPending = false
	}
	e.refresh()

	if e.scrolled != nil {
		e.scrolled(current)
	}
}

// DragBegan implements ScrollHandler.
func (e *Engine) DragBegan() {
	e.hasPending = false
	e.recenter()
}

// DragWillEnd implements ScrollHandler. It returns the offset the surface
// should settle on.
func (e *Engine) DragWillEnd(velocity, proposed float64) float64 {
	result := selectSnap(e.layout, snapRequest{
		behavior:  e.snap,
		velocity:  velocity,
		current:   e.surface.Offset(),
		proposed:  proposed,
		factor:    e.velocityFactor,
		freeEdges: e.freeEdges,
	})
	if !result.snapped {
		e.pendingTarget, e.hasPending = proposed, true
		return proposed
	}

	e.pendingTarget, e.hasPending = result.offset, true
	if logical, ok := newIndexMap(e.layout).logical(result.physical); ok {
		e.logger.Printf("carousel: %s snap velocity=%.2f -> %d", e.snap, velocity, logical)
		if e.willSnap != nil {
			e.willSnap(logical)
		}
	}
	return result.offset
}

// DragEnded implements ScrollHandler.
func (e *Engine) DragEnded() {
	e.recenter()
}

// DecelerationEnded implements ScrollHandler.
func (e *Engine) DecelerationEnded() {
	e.hasPending = false
	e.recenter()
}

// recenter moves the offset back into the middle replica of an infinite
// layout. An animation in flight is re-aimed at the same item in the middle
// replica so the motion continues without a jump.
func (e *Engine) recenter() bool {
	if !e.infinite || e.recentering {
		return false
	}
	offset := e.surface.Offset()
	corrected, delta := wrapOffset(offset, e.layout.SectionWidth(), e.layout.Multiplier())
	// A viewport wider than one replica can put the middle section out of
	// the surface's reach. The surface would clamp the jump and every scroll
	// update would try again.
	if delta == 0 || corrected > e.layout.MaxOffset() {
		return false
	}

	e.recentering = true
	e.surface.SetOffset(corrected, false)
	if e.hasPending {
		e.pendingTarget += delta
		e.surface.SetOffset(e.pendingTarget, true)
	}
	e.recentering = false

	e.logger.Printf("carousel: wrapped offset %.1f -> %.1f", offset, corrected)
	return true
}

// refresh brings the mounted window and the item transforms up to date with
// the current offset.
func (e *Engine) refresh() {
	gen := e.generation
	offset := e.surface.Offset()

	next := visibleRange(e.layout, offset, e.preload)
	prev := make([]int, 0, len(e.mounted))
	for physical := range e.mounted {
		prev = append(prev, physical)
	}
	diff := diffWindow(prev, next)

	if !diff.empty() {
		for _, physical := range diff.unmount {
			delete(e.mounted, physical)
			e.renderer.Unmount(physical)
			if e.generation != gen {
				return
			}
		}
		index := newIndexMap(e.layout)
		for _, physical := range diff.mount {
			logical, ok := index.logical(physical)
			if !ok {
				continue
			}
			view := e.provider.ViewFor(logical)
			if e.generation != gen {
				return
			}
			frame, _ := e.layout.Frame(physical)
			e.mounted[physical] = VisibleItem{Logical: logical, Physical: physical, View: view}
			e.renderer.Mount(physical, view, frame.Rect)
			if e.generation != gen {
				return
			}
		}
	}

	e.updateTransforms(offset)
}

func (e *Engine) updateTransforms(offset float64) {
	if len(e.mounted) == 0 {
		return
	}
	center := offset + e.layout.Viewport().Width/2

	physicals := make([]int, 0, len(e.mounted))
	for physical := range e.mounted {
		physicals = append(physicals, physical)
	}
	slices.Sort(physicals)

	side := e.appearance.SideItemTransform
	for _, physical := range physicals {
		frame, _ := e.layout.Frame(physical)
		e.renderer.ApplyTransform(physical, interpolate(e.layout, side, center-frame.Rect.MidX()))
	}
	for _, physical := range zOrder(e.layout, physicals, center) {
		e.renderer.BringToFront(physical)
	}
}

func (e *Engine) unmountAll() {
	gen := e.generation
	physicals := make([]int, 0, len(e.mounted))
	for physical := range e.mounted {
		physicals = append(physicals, physical)
	}
	slices.Sort(physicals)
	e.mounted = make(map[int]VisibleItem)
	for _, physical := range physicals {
		e.renderer.Unmount(physical)
		if e.generation != gen {
			return
		}
	}
}

// String returns a short description for debugging.
func (e *Engine) String() string {
	center, ok := e.CenterIndex()
	if !ok {
		center = -1
	}
	return fmt.Sprintf("carousel(count=%d infinite=%t snap=%s center=%d mounted=%d)",
		e.layout.Count(), e.infinite, e.snap, center, len(e.mounted))
}
