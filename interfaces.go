package carousel

// ViewHandle is an opaque reference to a view created by an ItemProvider. The
// engine never inspects it; its lifecycle belongs to the Renderer.
type ViewHandle any

// ItemProvider supplies the items shown by the carousel.
type ItemProvider interface {
	// Count returns the number of logical items. It may be zero.
	Count() int
	// ViewFor returns the view for a logical index.
	ViewFor(logical int) ViewHandle
}

// Renderer materializes views. All indices are physical indices.
type Renderer interface {
	Mount(physical int, view ViewHandle, rect Rect)
	Unmount(physical int)
	ApplyTransform(physical int, transform ItemTransform)
	BringToFront(physical int)
}

// ScrollSurface owns the scroll offset and the momentum physics.
type ScrollSurface interface {
	// Offset returns the current horizontal content offset.
	Offset() float64
	// ViewportSize returns the visible size.
	ViewportSize() Size
	// SetOffset moves the content. Animated moves are fire-and-forget and
	// may be interrupted by a new gesture.
	SetOffset(x float64, animated bool)
	// SetContentWidth sets the scrollable content width.
	SetContentWidth(width float64)
}

// ScrollHandler receives the events a ScrollSurface reports. Engine
// implements it.
type ScrollHandler interface {
	Scrolled(offset float64)
	DragBegan()
	// DragWillEnd returns the offset the surface should come to rest at.
	DragWillEnd(velocity, proposed float64) float64
	DragEnded()
	DecelerationEnded()
}

// VisibleItem is a mounted item.
type VisibleItem struct {
	Logical  int
	Physical int
	View     ViewHandle
}
