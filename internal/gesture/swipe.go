package gesture

// swipeCommitDistance is the accumulated displacement, in logical touchpad
// units, at which a swipe commits to an axis. 16 units matches the touchpad
// gesture threshold GNOME Shell uses.
const swipeCommitDistance = 16.0

// swipeAxis picks the committed axis from accumulated displacement. The
// comparison is strictly |cx| > |cy| for horizontal; equal magnitudes
// resolve to vertical.
func swipeAxis(cx, cy float64) Direction {
	ax, ay := cx, cy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		return DirectionHorizontal
	}
	return DirectionVertical
}

// classifySwipe decides whether accumulated displacement is enough to
// commit, and to which axis. It returns (DirectionUnknown, false) until the
// Euclidean displacement reaches the commit distance.
func classifySwipe(cx, cy float64) (Direction, bool) {
	if cx*cx+cy*cy < swipeCommitDistance*swipeCommitDistance {
		return DirectionUnknown, false
	}
	return swipeAxis(cx, cy), true
}

// Swipe tracks one multi-finger swipe gesture from begin to end.
type Swipe struct {
	// Cx and Cy accumulate displacement while the direction is undecided.
	// Once the decision commits, Cy is frozen and Cx is reused by the
	// dispatcher as the live horizontal accumulator for in-gesture
	// triggers; whatever displacement Cx holds at commit time carries
	// over into that role.
	Cx float64
	Cy float64

	// Direction is the committed axis, DirectionUnknown until decided.
	Direction Direction

	// Decision is the classification phase.
	Decision Decision
}

// Begin starts a new swipe. Any in-flight state is discarded first, so a
// begin that arrives mid-gesture restarts cleanly.
func (s *Swipe) Begin() {
	s.Reset()
	s.Decision = DecisionDeciding
}

// Update feeds one displacement sample into the cell. While the cell is
// deciding it accumulates the sample and attempts to classify; on the
// sample that crosses the commit threshold it returns the committed
// direction and true, exactly once per gesture. In every other phase the
// sample is ignored and (DirectionUnknown, false) is returned; post-commit
// accumulation is the dispatcher's concern, not the cell's.
func (s *Swipe) Update(dx, dy float64) (Direction, bool) {
	if s.Decision != DecisionDeciding {
		return DirectionUnknown, false
	}
	s.Cx += dx
	s.Cy += dy
	dir, ok := classifySwipe(s.Cx, s.Cy)
	if !ok {
		return DirectionUnknown, false
	}
	s.Direction = dir
	s.Decision = DecisionDecided
	return dir, true
}

// Reset returns the cell to its idle state.
func (s *Swipe) Reset() {
	*s = Swipe{}
}
