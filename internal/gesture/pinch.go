package gesture

// Pinch commit thresholds. Scale is reported by the input stack as a
// factor relative to the fingers' starting spread, so 1.0 means no change.
// The band between the two thresholds is treated as noise.
const (
	pinchInThreshold  = 0.9
	pinchOutThreshold = 1.1
)

// classifyPinch decides whether a scale sample is decisive. Samples inside
// the neutral band (pinchInThreshold to pinchOutThreshold inclusive) return
// (DirectionUnknown, false): the gesture stays undecided until the fingers
// clearly converge or diverge.
func classifyPinch(scale float64) (Direction, bool) {
	switch {
	case scale < pinchInThreshold:
		return DirectionIn, true
	case scale > pinchOutThreshold:
		return DirectionOut, true
	default:
		return DirectionUnknown, false
	}
}

// Pinch tracks one multi-finger pinch gesture from begin to end.
type Pinch struct {
	// Scale is the most recent sample observed after the decision
	// committed. It stays zero through the deciding phase, so an end
	// handler reads the final magnitude of the gesture, not the magnitude
	// that triggered the commit. A pinch that ends on the same sample
	// that committed it therefore reports Scale == 0.
	Scale float64

	// Direction is DirectionIn or DirectionOut once decided.
	Direction Direction

	// Decision is the classification phase.
	Decision Decision
}

// Begin starts a new pinch, discarding any in-flight state first.
func (p *Pinch) Begin() {
	p.Reset()
	p.Decision = DecisionDeciding
}

// Update feeds one scale sample into the cell and reports whether the cell
// consumed it. While deciding, a decisive sample commits the direction and
// an indecisive one is absorbed; both count as consumed. Once decided,
// samples only refresh Scale. Updates on an idle cell are not consumed.
func (p *Pinch) Update(scale float64) bool {
	switch p.Decision {
	case DecisionDeciding:
		if dir, ok := classifyPinch(scale); ok {
			p.Direction = dir
			p.Decision = DecisionDecided
		}
		return true
	case DecisionDecided:
		p.Scale = scale
		return true
	default:
		return false
	}
}

// Reset returns the cell to its idle state.
func (p *Pinch) Reset() {
	*p = Pinch{}
}
