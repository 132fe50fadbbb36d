package dispatch

import (
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
)

// holdActionMS is the minimum hold duration for the close action, in
// milliseconds. Shorter holds are treated as accidental contact.
const holdActionMS uint32 = 300

// Hold3Begin starts tracking a three-finger hold at the given monotonic
// millisecond timestamp.
func (d *Dispatcher) Hold3Begin(ts uint32) {
	d.cells.Hold3.Begin(ts)
	d.notifyDecided(gesture.KindHold, 3, gesture.DirectionUnknown)
}

// Hold3End ends a three-finger hold. No action is bound; the cell is
// reset and the end acknowledged if a hold was in flight.
func (d *Dispatcher) Hold3End(cancelled bool, ts uint32) bool {
	cell := &d.cells.Hold3
	if cell.Decision == gesture.DecisionUnknown {
		return false
	}
	cell.Reset()
	return true
}

// Hold4Begin starts tracking a four-finger hold at the given monotonic
// millisecond timestamp.
func (d *Dispatcher) Hold4Begin(ts uint32) {
	d.cells.Hold4.Begin(ts)
	d.notifyDecided(gesture.KindHold, 4, gesture.DirectionUnknown)
}

// Hold4End ends a four-finger hold. An uncancelled hold of at least the
// action duration closes something: the focused tab when the target
// application is focused, otherwise the window under the cursor via a
// compositor close request.
func (d *Dispatcher) Hold4End(cancelled bool, ts uint32) bool {
	cell := &d.cells.Hold4
	if cell.Decision == gesture.DecisionUnknown {
		return false
	}
	if !cancelled && cell.Elapsed(ts) >= holdActionMS {
		d.holdClose()
	}
	cell.Reset()
	return true
}

// holdClose carries out the hold-to-close action for whatever context is
// present.
func (d *Dispatcher) holdClose() {
	if d.focusedAppMatches() {
		d.injectSequence(gesture.KindHold, 4, inject.CloseTab)
		return
	}
	if d.comp == nil {
		return
	}
	w, ok := d.comp.WindowUnderCursor()
	if !ok {
		return
	}
	d.comp.RequestClose(w)
	d.notifyAction(gesture.KindHold, 4, "close-request")
}
