package tui

import (
	"testing"
	"time"

	"github.com/ayn2op/carousel"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dragEnd struct {
	velocity, proposed float64
}

type recordingHandler struct {
	scrolled    []float64
	began       int
	willEnd     []dragEnd
	ended       int
	decelerated int
	snapTo      func(proposed float64) float64
}

func (h *recordingHandler) Scrolled(offset float64) { h.scrolled = append(h.scrolled, offset) }
func (h *recordingHandler) DragBegan()              { h.began++ }
func (h *recordingHandler) DragEnded()              { h.ended++ }

func (h *recordingHandler) DragWillEnd(velocity, proposed float64) float64 {
	h.willEnd = append(h.willEnd, dragEnd{velocity, proposed})
	if h.snapTo != nil {
		return h.snapTo(proposed)
	}
	return proposed
}

func (h *recordingHandler) DecelerationEnded() { h.decelerated++ }

// newTestSurface returns a surface with a 40x10 viewport at (1, 1) and 100
// cells of content.
func newTestSurface() (*Surface, *recordingHandler) {
	h := &recordingHandler{}
	s := NewSurface().SetHandler(h)
	s.SetRect(0, 0, 42, 12)
	s.SetContentWidth(100)
	return s, h
}

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestSurfaceViewport(t *testing.T) {
	var sizes []carousel.Size
	s := NewSurface().SetResizedFunc(func(viewport carousel.Size) {
		sizes = append(sizes, viewport)
	})
	s.SetRect(0, 0, 42, 12)
	s.SetRect(0, 0, 42, 12)
	s.SetRect(5, 5, 22, 12)

	assert.Equal(t, carousel.Size{Width: 20, Height: 10}, s.ViewportSize())
	assert.Equal(t, []carousel.Size{{Width: 40, Height: 10}, {Width: 20, Height: 10}}, sizes)
}

func TestSurfaceSetOffsetClamps(t *testing.T) {
	s, h := newTestSurface()

	s.SetOffset(-5, false)
	assert.Equal(t, 0.0, s.Offset())
	s.SetOffset(500, false)
	assert.Equal(t, 60.0, s.Offset())
	s.SetOffset(12.5, false)
	assert.Equal(t, 12.5, s.Offset())

	assert.Equal(t, []float64{0, 60, 12.5}, h.scrolled)
	assert.False(t, s.Animating())
}

func TestSurfaceShrinkingContentClampsOffset(t *testing.T) {
	s, h := newTestSurface()
	s.SetOffset(50, false)
	s.SetOffset(55, true)

	s.SetContentWidth(70)
	assert.Equal(t, 30.0, s.Offset())
	assert.Equal(t, 30.0, s.target)
	assert.Equal(t, []float64{50, 30}, h.scrolled)

	s.SetContentWidth(200)
	assert.Equal(t, 30.0, s.Offset())
	assert.Equal(t, []float64{50, 30}, h.scrolled, "growing content leaves the offset alone")
}

func TestSurfaceAnimateSettles(t *testing.T) {
	s, h := newTestSurface()

	s.SetOffset(20, true)
	assert.True(t, s.Animating())
	assert.Empty(t, h.scrolled, "animated offsets are reported frame by frame")

	now := time.Now()
	for i := 0; i < 600 && s.Animating(); i++ {
		assert.True(t, s.Animate(now))
		now = now.Add(time.Second / DefaultFPS)
	}

	require.False(t, s.Animating())
	assert.Equal(t, 20.0, s.Offset())
	assert.Equal(t, 20.0, h.scrolled[len(h.scrolled)-1])
	assert.Equal(t, 1, h.decelerated)
	assert.False(t, s.Animate(now))
}

func TestSurfaceAnimateRestartedByCorrection(t *testing.T) {
	s, h := newTestSurface()
	restarted := false
	s.SetHandler(&correctingHandler{recordingHandler: h, surface: s, restarted: &restarted})

	s.SetOffset(10, true)
	now := time.Now()
	for i := 0; i < 600 && s.Animating(); i++ {
		s.Animate(now)
		now = now.Add(time.Second / DefaultFPS)
	}

	assert.True(t, restarted)
	assert.Equal(t, 30.0, s.Offset())
	assert.Equal(t, 1, h.decelerated, "no deceleration end while a correction keeps the surface moving")
}

// correctingHandler retargets the surface the first time it reaches 10.
type correctingHandler struct {
	*recordingHandler
	surface   *Surface
	restarted *bool
}

func (h *correctingHandler) Scrolled(offset float64) {
	h.recordingHandler.Scrolled(offset)
	if offset == 10 && !*h.restarted {
		*h.restarted = true
		h.surface.SetOffset(30, true)
	}
}

func TestSurfaceDrag(t *testing.T) {
	s, h := newTestSurface()
	h.snapTo = func(float64) float64 { return 30 }
	start := time.Now()

	s.BeginDrag(20, start)
	s.DragTo(15, start.Add(10*time.Millisecond))
	assert.Equal(t, 5.0, s.Offset(), "dragging left moves the content forward")

	s.EndDrag(15, start.Add(20*time.Millisecond))

	assert.Equal(t, 1, h.began)
	assert.Equal(t, 1, h.ended)
	require.Len(t, h.willEnd, 1)
	assert.InDelta(t, 0.3, h.willEnd[0].velocity, 1e-9)
	assert.InDelta(t, 5+0.3*DefaultMomentumScale, h.willEnd[0].proposed, 1e-9)
	assert.True(t, s.Animating())
	assert.Equal(t, []float64{5}, h.scrolled)
}

func TestSurfaceDragIdleReleaseHasNoMomentum(t *testing.T) {
	s, h := newTestSurface()
	start := time.Now()

	s.BeginDrag(20, start)
	s.DragTo(15, start.Add(10*time.Millisecond))
	s.EndDrag(15, start.Add(500*time.Millisecond))

	require.Len(t, h.willEnd, 1)
	assert.Equal(t, dragEnd{0, 5}, h.willEnd[0])
	// Already at rest, so the surface settles right away.
	assert.False(t, s.Animating())
	assert.Equal(t, 1, h.decelerated)
}

func TestSurfaceNudge(t *testing.T) {
	s, h := newTestSurface()

	s.Nudge(1)
	s.Nudge(0)

	assert.Equal(t, 1, h.began)
	require.Len(t, h.willEnd, 1)
	assert.InDelta(t, nudgeVelocity, h.willEnd[0].velocity, 1e-9)
	assert.InDelta(t, nudgeVelocity*DefaultMomentumScale, h.willEnd[0].proposed, 1e-9)
	assert.True(t, s.Animating())
}

func TestSurfaceMountOrder(t *testing.T) {
	s, _ := newTestSurface()
	card := NewCard("a", "", Styles.Accent(0))

	s.Mount(0, card, carousel.Rect{Width: 20, Height: 10})
	s.Mount(1, card, carousel.Rect{X: 25, Width: 20, Height: 10})
	s.Mount(2, card, carousel.Rect{X: 50, Width: 20, Height: 10})
	assert.Equal(t, []int{0, 1, 2}, s.Mounted())

	s.BringToFront(0)
	s.BringToFront(7)
	assert.Equal(t, []int{1, 2, 0}, s.Mounted())

	s.Unmount(2)
	assert.Equal(t, []int{1, 0}, s.Mounted())
}

func TestSurfaceItemAtScreen(t *testing.T) {
	s, _ := newTestSurface()
	card := NewCard("a", "", Styles.Accent(0))
	s.Mount(0, card, carousel.Rect{Width: 20, Height: 10})
	s.Mount(1, card, carousel.Rect{X: 25, Width: 20, Height: 10})

	tests := []struct {
		name     string
		x, y     int
		physical int
		ok       bool
	}{
		{"first", 5, 5, 0, true},
		{"second", 30, 5, 1, true},
		{"gap", 23, 5, 0, false},
		{"border", 0, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			physical, ok := s.ItemAtScreen(tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.physical, physical)
			}
		})
	}

	// Shift the second item over the first one.
	s.ApplyTransform(1, carousel.ItemTransform{Alpha: 1, ScaleX: 1, ScaleY: 1, TranslateX: -10})
	physical, ok := s.ItemAtScreen(18, 5)
	require.True(t, ok)
	assert.Equal(t, 1, physical)

	s.BringToFront(0)
	physical, _ = s.ItemAtScreen(18, 5)
	assert.Equal(t, 0, physical)

	// Scrolling moves the items under the pointer.
	s.SetOffset(25, false)
	physical, ok = s.ItemAtScreen(5, 5)
	require.True(t, ok)
	assert.Equal(t, 1, physical)
}

func TestSurfaceScaledItemRect(t *testing.T) {
	s, _ := newTestSurface()
	s.Mount(0, NewCard("a", "", Styles.Accent(0)), carousel.Rect{Width: 20, Height: 10})
	s.ApplyTransform(0, carousel.ItemTransform{Alpha: 1, ScaleX: 0.5, ScaleY: 0.5})

	x, y, w, h := s.itemRect(s.items[0])
	assert.Equal(t, []int{6, 4, 10, 5}, []int{x, y, w, h})
}

func TestSurfaceDrawClipsItems(t *testing.T) {
	screen := newTestScreen(t, 42, 12)
	s, _ := newTestSurface()
	s.Mount(0, NewCard("first", "", Styles.Accent(0)), carousel.Rect{Width: 20, Height: 10})
	s.Mount(1, NewCard("second", "", Styles.Accent(1)), carousel.Rect{X: 25, Width: 20, Height: 10})

	s.Draw(screen)

	set := BorderSetRound()
	assert.Equal(t, set.TopLeft, runeAt(screen, 0, 0), "surface border")
	assert.Equal(t, set.TopLeft, runeAt(screen, 1, 1), "first card")
	assert.Equal(t, set.TopRight, runeAt(screen, 20, 1))
	assert.Equal(t, set.TopLeft, runeAt(screen, 26, 1), "second card")
	assert.Equal(t, set.Right, runeAt(screen, 41, 5), "second card is clipped at the viewport edge")
}

func TestSurfaceMouse(t *testing.T) {
	s, h := newTestSurface()
	s.Mount(0, NewCard("a", "", Styles.Accent(0)), carousel.Rect{Width: 20, Height: 10})
	var selected []int
	s.SetSelectedFunc(func(physical int) { selected = append(selected, physical) })

	click := tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)
	capture, cmd := s.MouseHandler(MouseLeftClick, click)
	assert.Nil(t, capture)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, []int{0}, selected)

	down := tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)
	capture, _ = s.MouseHandler(MouseLeftDown, down)
	assert.Equal(t, s, capture)
	assert.Equal(t, 1, h.began)

	capture, _ = s.MouseHandler(MouseLeftUp, click)
	assert.Equal(t, s, capture)
	assert.Len(t, h.willEnd, 1)

	_, cmd = s.MouseHandler(MouseScrollRight, tcell.NewEventMouse(5, 5, tcell.WheelRight, tcell.ModNone))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Len(t, h.willEnd, 2)
	assert.Positive(t, h.willEnd[1].velocity)
}
