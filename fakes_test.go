package carousel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	count     int
	requested []int
	onViewFor func(logical int)
}

func (p *fakeProvider) Count() int {
	return p.count
}

func (p *fakeProvider) ViewFor(logical int) ViewHandle {
	p.requested = append(p.requested, logical)
	if p.onViewFor != nil {
		p.onViewFor(logical)
	}
	return fmt.Sprintf("view-%d", logical)
}

type fakeRenderer struct {
	rects      map[int]Rect
	views      map[int]ViewHandle
	transforms map[int]ItemTransform
	front      []int
	mounts     []int
	unmounts   []int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		rects:      make(map[int]Rect),
		views:      make(map[int]ViewHandle),
		transforms: make(map[int]ItemTransform),
	}
}

func (r *fakeRenderer) Mount(physical int, view ViewHandle, rect Rect) {
	r.mounts = append(r.mounts, physical)
	r.rects[physical] = rect
	r.views[physical] = view
}

func (r *fakeRenderer) Unmount(physical int) {
	r.unmounts = append(r.unmounts, physical)
	delete(r.rects, physical)
	delete(r.views, physical)
	delete(r.transforms, physical)
}

func (r *fakeRenderer) ApplyTransform(physical int, transform ItemTransform) {
	r.transforms[physical] = transform
}

func (r *fakeRenderer) BringToFront(physical int) {
	r.front = append(r.front, physical)
}

func (r *fakeRenderer) resetCalls() {
	r.mounts = nil
	r.unmounts = nil
	r.front = nil
}

type offsetCall struct {
	x        float64
	animated bool
}

// fakeSurface reports non-animated offset changes synchronously, the way a
// platform scroll view does.
type fakeSurface struct {
	offset   float64
	viewport Size
	content  float64
	calls    []offsetCall
	handler  ScrollHandler
}

func (s *fakeSurface) Offset() float64 {
	return s.offset
}

func (s *fakeSurface) ViewportSize() Size {
	return s.viewport
}

func (s *fakeSurface) SetOffset(x float64, animated bool) {
	s.calls = append(s.calls, offsetCall{x: x, animated: animated})
	if animated {
		return
	}
	s.offset = x
	if s.handler != nil {
		s.handler.Scrolled(x)
	}
}

func (s *fakeSurface) SetContentWidth(width float64) {
	s.content = width
}

type harness struct {
	engine   *Engine
	provider *fakeProvider
	renderer *fakeRenderer
	surface  *fakeSurface
}

func newHarness(t *testing.T, count int, viewport Size, options ...Option) *harness {
	t.Helper()
	h := &harness{
		provider: &fakeProvider{count: count},
		renderer: newFakeRenderer(),
		surface:  &fakeSurface{viewport: viewport},
	}
	engine, err := New(h.provider, h.renderer, h.surface, options...)
	require.NoError(t, err)
	h.engine = engine
	h.surface.handler = engine
	return h
}

func (h *harness) mountedPhysicals() []int {
	var out []int
	for _, item := range h.engine.MountedItems() {
		out = append(out, item.Physical)
	}
	return out
}
