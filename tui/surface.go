package tui

import (
	"math"
	"slices"
	"time"

	"github.com/ayn2op/carousel"
	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
)

const (
	DefaultFPS       = 60
	DefaultFrequency = 6.0
	DefaultDamping   = 1.0

	// DefaultMomentumScale converts a release velocity in cells per
	// millisecond into the distance momentum would carry the content.
	DefaultMomentumScale = 400

	// Velocity of a keyboard or wheel nudge, in cells per millisecond.
	nudgeVelocity = 0.06
	// A pointer resting this long before release carries no momentum.
	dragIdle = 100 * time.Millisecond

	settleDistance = 0.5
	settleVelocity = 0.5
)

// ItemView is a mounted view the surface knows how to draw. The rectangle is
// in screen cells and already reflects the item's scale and translation.
type ItemView interface {
	DrawItem(screen tcell.Screen, x, y, width, height int, alpha float64)
}

type mountedItem struct {
	view      carousel.ViewHandle
	rect      carousel.Rect
	transform carousel.ItemTransform
}

// Surface is a horizontally scrolling viewport in terminal cells. It serves
// as both the ScrollSurface and the Renderer of a carousel engine: it owns
// the scroll offset, animates towards targets with a spring, turns mouse
// drags into drag callbacks and draws the mounted items.
type Surface struct {
	*Box

	handler carousel.ScrollHandler

	offset       float64
	contentWidth float64

	items map[int]*mountedItem
	// Physical indices back to front.
	order []int

	spring    harmonica.Spring
	velocity  float64
	target    float64
	animating bool

	dragging     bool
	dragMoved    bool
	lastX        int
	lastAt       time.Time
	dragVelocity float64

	momentumScale float64
	viewport      carousel.Size

	resized  func(viewport carousel.Size)
	selected func(physical int)
}

var (
	_ carousel.ScrollSurface = (*Surface)(nil)
	_ carousel.Renderer      = (*Surface)(nil)
	_ Primitive              = (*Surface)(nil)
	_ Animator               = (*Surface)(nil)
)

// NewSurface returns an empty surface with a round border.
func NewSurface() *Surface {
	s := &Surface{
		Box:           NewBox(),
		items:         make(map[int]*mountedItem),
		spring:        harmonica.NewSpring(harmonica.FPS(DefaultFPS), DefaultFrequency, DefaultDamping),
		momentumScale: DefaultMomentumScale,
	}
	s.SetBorders(BordersAll)
	return s
}

// SetHandler sets the receiver of scroll and drag callbacks.
func (s *Surface) SetHandler(handler carousel.ScrollHandler) *Surface {
	s.handler = handler
	return s
}

// SetSpring configures the animation spring. fps must match the rate at which
// Animate is called.
func (s *Surface) SetSpring(fps int, frequency, damping float64) *Surface {
	s.spring = harmonica.NewSpring(harmonica.FPS(max(fps, 1)), frequency, damping)
	return s
}

// SetMomentumScale sets how far a release velocity carries the content.
func (s *Surface) SetMomentumScale(scale float64) *Surface {
	s.momentumScale = max(scale, 0)
	return s
}

// SetResizedFunc sets a handler called when the viewport size changes.
func (s *Surface) SetResizedFunc(handler func(viewport carousel.Size)) *Surface {
	s.resized = handler
	return s
}

// SetSelectedFunc sets a handler called with the physical index of a clicked
// item.
func (s *Surface) SetSelectedFunc(handler func(physical int)) *Surface {
	s.selected = handler
	return s
}

// SetRect sets the position of the surface and reports viewport changes.
func (s *Surface) SetRect(x, y, width, height int) {
	s.Box.SetRect(x, y, width, height)
	viewport := s.ViewportSize()
	if viewport == s.viewport {
		return
	}
	s.viewport = viewport
	if s.resized != nil {
		s.resized(viewport)
	}
}

// ViewportSize implements carousel.ScrollSurface.
func (s *Surface) ViewportSize() carousel.Size {
	_, _, width, height := s.GetInnerRect()
	return carousel.Size{Width: float64(width), Height: float64(height)}
}

// Offset implements carousel.ScrollSurface.
func (s *Surface) Offset() float64 {
	return s.offset
}

// ContentWidth returns the width set by the engine.
func (s *Surface) ContentWidth() float64 {
	return s.contentWidth
}

// Animating reports whether the surface is moving towards a target.
func (s *Surface) Animating() bool {
	return s.animating
}

// SetContentWidth implements carousel.ScrollSurface. An offset or animation
// target past the new content is pulled back into range.
func (s *Surface) SetContentWidth(width float64) {
	s.contentWidth = max(width, 0)
	if s.animating {
		s.target = s.clamp(s.target)
	}
	if offset := s.clamp(s.offset); offset != s.offset {
		s.offset = offset
		s.notifyScrolled()
	}
}

// SetOffset implements carousel.ScrollSurface. An animated change only
// retargets the spring; the velocity of a running animation is kept so a
// wraparound jump does not stall the motion.
func (s *Surface) SetOffset(x float64, animated bool) {
	if animated {
		s.target = s.clamp(x)
		s.animating = true
		return
	}
	s.offset = s.clamp(x)
	s.notifyScrolled()
}

func (s *Surface) maxOffset() float64 {
	return max(s.contentWidth-s.ViewportSize().Width, 0)
}

func (s *Surface) clamp(x float64) float64 {
	return min(max(x, 0), s.maxOffset())
}

func (s *Surface) notifyScrolled() {
	if s.handler != nil {
		s.handler.Scrolled(s.offset)
	}
}

// Animate advances a running animation by one frame.
func (s *Surface) Animate(now time.Time) bool {
	if !s.animating || s.dragging {
		return false
	}

	pos, vel := s.spring.Update(s.offset, s.velocity, s.target)
	s.velocity = vel
	if math.Abs(pos-s.target) < settleDistance && math.Abs(vel) < settleVelocity {
		pos, s.velocity, s.animating = s.target, 0, false
	}
	settled := !s.animating
	s.offset = s.clamp(pos)
	s.notifyScrolled()

	// A wraparound correction may have restarted the animation.
	if settled && !s.animating && s.handler != nil {
		s.handler.DecelerationEnded()
	}
	return true
}

// BeginDrag starts a pointer drag at screen column x.
func (s *Surface) BeginDrag(x int, at time.Time) {
	s.stop()
	s.dragging, s.dragMoved = true, false
	s.lastX, s.lastAt = x, at
	s.dragVelocity = 0
	if s.handler != nil {
		s.handler.DragBegan()
	}
}

// DragTo moves the content along with the pointer.
func (s *Surface) DragTo(x int, at time.Time) {
	if !s.dragging || x == s.lastX {
		return
	}
	dx := float64(x - s.lastX)
	elapsed := max(float64(at.Sub(s.lastAt))/float64(time.Millisecond), 1)
	// Dragging to the left moves the offset up.
	sample := -dx / elapsed
	s.dragVelocity = 0.6*sample + 0.4*s.dragVelocity
	s.lastX, s.lastAt = x, at
	s.dragMoved = true

	s.offset = s.clamp(s.offset - dx)
	s.notifyScrolled()
}

// EndDrag releases the pointer. The engine decides where the content settles.
func (s *Surface) EndDrag(x int, at time.Time) {
	s.DragTo(x, at)
	if !s.dragging {
		return
	}
	s.dragging = false

	velocity := s.dragVelocity
	if at.Sub(s.lastAt) > dragIdle {
		velocity = 0
	}
	s.release(velocity)
}

// Nudge flings the content one step left (negative) or right (positive), as
// a short swipe would.
func (s *Surface) Nudge(direction int) {
	if s.handler == nil || direction == 0 || s.dragging {
		return
	}
	s.stop()
	s.handler.DragBegan()
	s.release(float64(direction) * nudgeVelocity)
}

func (s *Surface) release(velocity float64) {
	proposed := s.offset + velocity*s.momentumScale
	target := proposed
	if s.handler != nil {
		target = s.handler.DragWillEnd(velocity, proposed)
	}
	s.target, s.animating = s.clamp(target), true
	if s.handler != nil {
		s.handler.DragEnded()
	}

	if s.animating && math.Abs(s.offset-s.target) < settleDistance {
		s.animating = false
		if s.offset != s.target {
			s.offset = s.target
			s.notifyScrolled()
		}
		if s.handler != nil {
			s.handler.DecelerationEnded()
		}
	}
}

func (s *Surface) stop() {
	s.animating = false
	s.velocity = 0
}

// Mount implements carousel.Renderer.
func (s *Surface) Mount(physical int, view carousel.ViewHandle, rect carousel.Rect) {
	s.items[physical] = &mountedItem{view: view, rect: rect, transform: carousel.IdentityTransform}
	s.order = append(slices.DeleteFunc(s.order, func(p int) bool { return p == physical }), physical)
}

// Unmount implements carousel.Renderer.
func (s *Surface) Unmount(physical int) {
	delete(s.items, physical)
	s.order = slices.DeleteFunc(s.order, func(p int) bool { return p == physical })
}

// ApplyTransform implements carousel.Renderer.
func (s *Surface) ApplyTransform(physical int, transform carousel.ItemTransform) {
	if item, ok := s.items[physical]; ok {
		item.transform = transform
	}
}

// BringToFront implements carousel.Renderer.
func (s *Surface) BringToFront(physical int) {
	if _, ok := s.items[physical]; !ok {
		return
	}
	s.order = append(slices.DeleteFunc(s.order, func(p int) bool { return p == physical }), physical)
}

// Mounted returns the mounted physical indices back to front.
func (s *Surface) Mounted() []int {
	return slices.Clone(s.order)
}

// itemRect returns the on-screen rectangle of a mounted item.
func (s *Surface) itemRect(item *mountedItem) (int, int, int, int) {
	ix, iy, _, _ := s.GetInnerRect()
	t := item.transform
	width := item.rect.Width * t.ScaleX
	height := item.rect.Height * t.ScaleY
	left := item.rect.MidX() + t.TranslateX - s.offset - width/2
	top := item.rect.MidY() - height/2
	x := ix + int(math.Round(left))
	y := iy + int(math.Round(top))
	return x, y, int(math.Round(left+width)) - int(math.Round(left)), int(math.Round(top+height)) - int(math.Round(top))
}

// ItemAtScreen returns the frontmost mounted item drawn at the screen cell.
func (s *Surface) ItemAtScreen(x, y int) (int, bool) {
	if !s.InInnerRect(x, y) {
		return 0, false
	}
	for i := len(s.order) - 1; i >= 0; i-- {
		item := s.items[s.order[i]]
		ix, iy, w, h := s.itemRect(item)
		if x >= ix && x < ix+w && y >= iy && y < iy+h {
			return s.order[i], true
		}
	}
	return 0, false
}

// Draw draws the mounted items back to front, clipped to the viewport.
func (s *Surface) Draw(screen tcell.Screen) {
	s.DrawFrame(screen)

	ix, iy, iw, ih := s.GetInnerRect()
	if iw <= 0 || ih <= 0 {
		return
	}
	clipped := newClippedScreen(screen, ix, iy, iw, ih)
	for _, physical := range s.order {
		item := s.items[physical]
		view, ok := item.view.(ItemView)
		if !ok {
			continue
		}
		x, y, w, h := s.itemRect(item)
		if w <= 0 || h <= 0 || x >= ix+iw || x+w <= ix {
			continue
		}
		view.DrawItem(clipped, x, y, w, h, item.transform.Alpha)
	}
}

// MouseHandler turns left button drags into drag callbacks, clicks into
// selections and wheel events into nudges.
func (s *Surface) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	switch action {
	case MouseLeftDown:
		if !s.InInnerRect(x, y) {
			return nil, nil
		}
		s.BeginDrag(x, event.When())
		return s, RedrawCommand{}
	case MouseMove:
		if !s.dragging {
			return nil, nil
		}
		s.DragTo(x, event.When())
		return s, RedrawCommand{}
	case MouseLeftUp:
		if !s.dragging {
			return nil, nil
		}
		s.EndDrag(x, event.When())
		// Keep the capture so the click that follows reaches the surface.
		return s, RedrawCommand{}
	case MouseLeftClick:
		if s.dragMoved {
			return nil, nil
		}
		if physical, ok := s.ItemAtScreen(x, y); ok && s.selected != nil {
			s.selected(physical)
			return nil, RedrawCommand{}
		}
	case MouseScrollLeft, MouseScrollUp:
		if s.InRect(x, y) {
			s.Nudge(-1)
			return nil, RedrawCommand{}
		}
	case MouseScrollRight, MouseScrollDown:
		if s.InRect(x, y) {
			s.Nudge(1)
			return nil, RedrawCommand{}
		}
	}
	return nil, nil
}
