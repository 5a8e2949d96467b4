package carousel

// edgeThreshold is how close to either end of the replicated content the
// offset may get before it is moved back into the middle section.
const edgeThreshold = 40

// middleSection returns the closed offset range of the middle replica.
func middleSection(section float64, multiplier int) (lo, hi float64) {
	middle := float64(multiplier / 2)
	return section * middle, section * (middle + 1)
}

// wrapOffset moves offset by whole sections until it lies within the middle
// section. It returns the corrected offset and the applied delta.
func wrapOffset(offset, section float64, multiplier int) (float64, float64) {
	if section <= 0 || multiplier < 2 {
		return offset, 0
	}
	lo, hi := middleSection(section, multiplier)
	corrected := offset
	for corrected < lo {
		corrected += section
	}
	for corrected > hi {
		corrected -= section
	}
	return corrected, corrected - offset
}

// nearContentEdge returns true if offset is within edgeThreshold of either
// end of the scrollable range.
func nearContentEdge(layout Layout, offset float64) bool {
	return offset <= edgeThreshold || offset >= layout.MaxOffset()-edgeThreshold
}
