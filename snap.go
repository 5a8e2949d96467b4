package carousel

// DefaultVelocityFactor scales the release velocity when hard snapping looks
// up the item the drag started from. It is an empirical smoothing factor.
const DefaultVelocityFactor = 50

// snapRequest describes one drag release.
type snapRequest struct {
	behavior SnapBehavior
	// Positive velocity moves the offset toward higher indices.
	velocity float64
	current  float64
	proposed float64
	factor   float64
	// freeEdges suppresses snapping of finite layouts when the proposed
	// target lies past the first or last item.
	freeEdges bool
}

type snapResult struct {
	physical int
	offset   float64
	snapped  bool
}

// selectSnap picks the item a released drag settles on and the offset that
// centers it. snapped is false when the momentum target must be left alone.
func selectSnap(layout Layout, req snapRequest) snapResult {
	if req.behavior == SnapNone || layout.Empty() {
		return snapResult{}
	}
	half := layout.Viewport().Width / 2

	if req.freeEdges && !layout.Infinite() && outsideSnapRange(layout, req.proposed) {
		return snapResult{}
	}

	var reference float64
	switch req.behavior {
	case SnapSoft:
		reference = req.proposed + half
	case SnapHard:
		reference = req.current + half
		if target, ok := hardSnapTarget(layout, req, half); ok {
			reference = layout.frames[target].Rect.MidX()
		}
	default:
		return snapResult{}
	}

	physical, ok := layout.Nearest(reference)
	if !ok {
		return snapResult{}
	}
	offset, _ := layout.CenteringOffset(physical)
	return snapResult{physical: physical, offset: offset, snapped: true}
}

// hardSnapTarget finds the item nearest the velocity-compensated center and
// steps one item in the direction of the velocity. It fails for zero
// velocity and when the step leaves the valid range.
func hardSnapTarget(layout Layout, req snapRequest, half float64) (int, bool) {
	step := 0
	switch {
	case req.velocity > 0:
		step = 1
	case req.velocity < 0:
		step = -1
	default:
		return 0, false
	}

	compensated := req.current + half - req.velocity*req.factor
	nearest, ok := layout.Nearest(compensated)
	if !ok {
		return 0, false
	}
	target := nearest + step
	if target < 0 || target >= layout.Len() {
		return 0, false
	}
	return target, true
}

func outsideSnapRange(layout Layout, offset float64) bool {
	first, _ := layout.CenteringOffset(0)
	last, _ := layout.CenteringOffset(layout.Len() - 1)
	return offset < first || offset > last
}
