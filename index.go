package carousel

import "math"

// indexMap converts between logical indices (what callers see) and physical
// indices (positions in the replicated layout).
type indexMap struct {
	count      int
	multiplier int
}

func newIndexMap(layout Layout) indexMap {
	return indexMap{count: layout.Count(), multiplier: layout.Multiplier()}
}

// logical returns physical mod count.
func (m indexMap) logical(physical int) (int, bool) {
	if m.count <= 0 || physical < 0 || physical >= m.count*m.multiplier {
		return 0, false
	}
	return physical % m.count, true
}

// replicas returns every physical index showing the logical item.
func (m indexMap) replicas(logical int) []int {
	if m.count <= 0 || logical < 0 || logical >= m.count {
		return nil
	}
	out := make([]int, 0, m.multiplier)
	for k := range m.multiplier {
		out = append(out, logical+k*m.count)
	}
	return out
}

// closestPhysical returns the replica of logical whose frame center is
// nearest reference. Ties resolve to the lower replica.
func (m indexMap) closestPhysical(layout Layout, logical int, reference float64) (int, bool) {
	best, found := 0, false
	bestDistance := math.Inf(1)
	for _, physical := range m.replicas(logical) {
		frame, ok := layout.Frame(physical)
		if !ok {
			continue
		}
		distance := math.Abs(frame.Rect.MidX() - reference)
		if distance < bestDistance {
			best, bestDistance, found = physical, distance, true
		}
	}
	return best, found
}
