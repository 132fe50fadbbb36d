package gesture

// Hold tracks one multi-finger press-and-hold gesture. There is nothing to
// classify: a hold is decided the moment it begins, and whether it was held
// long enough is judged from the timestamps at end.
type Hold struct {
	// BeginTS is the input stack's monotonic millisecond timestamp at
	// begin.
	BeginTS uint32

	// Decision is DecisionDecided for the whole life of the gesture.
	Decision Decision
}

// Begin starts a new hold at the given timestamp, discarding any in-flight
// state first.
func (h *Hold) Begin(ts uint32) {
	h.Reset()
	h.BeginTS = ts
	h.Decision = DecisionDecided
}

// Elapsed returns the milliseconds between begin and ts. Unsigned
// subtraction keeps the result correct when the timestamp counter wraps.
func (h *Hold) Elapsed(ts uint32) uint32 {
	return ts - h.BeginTS
}

// Reset returns the cell to its idle state.
func (h *Hold) Reset() {
	*h = Hold{}
}
