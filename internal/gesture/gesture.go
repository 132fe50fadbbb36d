package gesture

// Kind identifies a gesture family.
type Kind uint8

const (
	// KindSwipe is a multi-finger directional swipe.
	KindSwipe Kind = iota
	// KindPinch is a two-dimensional scale gesture (fingers moving
	// together or apart).
	KindPinch
	// KindHold is a press-and-hold with no movement.
	KindHold
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindSwipe:
		return "swipe"
	case KindPinch:
		return "pinch"
	case KindHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Decision represents how far a cell has progressed toward classifying
// the current gesture.
type Decision uint8

const (
	// DecisionUnknown means no gesture is in flight. Zero value.
	DecisionUnknown Decision = iota
	// DecisionDeciding means a gesture has begun but the evidence has not
	// yet crossed the commit threshold.
	DecisionDeciding
	// DecisionDecided means the direction is committed for the remainder
	// of the gesture.
	DecisionDecided
)

// String returns a string representation of the decision phase.
func (d Decision) String() string {
	switch d {
	case DecisionDeciding:
		return "deciding"
	case DecisionDecided:
		return "decided"
	default:
		return "unknown"
	}
}

// Direction represents the committed direction of a gesture.
type Direction uint8

const (
	// DirectionUnknown means no direction has been committed. Zero value.
	DirectionUnknown Direction = iota
	// DirectionUp is an upward swipe.
	DirectionUp
	// DirectionDown is a downward swipe.
	DirectionDown
	// DirectionLeft is a leftward swipe.
	DirectionLeft
	// DirectionRight is a rightward swipe.
	DirectionRight
	// DirectionHorizontal is a swipe along the x axis, sign undetermined
	// at commit time.
	DirectionHorizontal
	// DirectionVertical is a swipe along the y axis, sign undetermined at
	// commit time.
	DirectionVertical
	// DirectionIn is a pinch with fingers moving together (scale < 1).
	DirectionIn
	// DirectionOut is a pinch with fingers moving apart (scale > 1).
	DirectionOut
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionIn:
		return "in"
	case DirectionOut:
		return "out"
	default:
		return "unknown"
	}
}

// IsAxis returns true for the axis-only swipe directions. Swipe cells
// commit to an axis; the sign is resolved later from the live accumulator.
func (d Direction) IsAxis() bool {
	return d == DirectionHorizontal || d == DirectionVertical
}

// IsPinch returns true for the pinch directions.
func (d Direction) IsPinch() bool {
	return d == DirectionIn || d == DirectionOut
}
