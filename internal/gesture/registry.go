package gesture

// Registry holds the six gesture cells the dispatcher tracks: one cell per
// supported (kind, finger count) pair. The cells are fully independent;
// nothing in this package links them. A Registry's zero value is ready to
// use.
type Registry struct {
	Swipe3 Swipe
	Swipe4 Swipe
	Pinch3 Pinch
	Pinch4 Pinch
	Hold3  Hold
	Hold4  Hold
}

// Reset returns every cell to its idle state.
func (r *Registry) Reset() {
	r.Swipe3.Reset()
	r.Swipe4.Reset()
	r.Pinch3.Reset()
	r.Pinch4.Reset()
	r.Hold3.Reset()
	r.Hold4.Reset()
}
