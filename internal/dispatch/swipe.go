package dispatch

import (
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
)

// tabSwitchThreshold is the accumulated horizontal displacement that
// triggers one tab switch during a live four-finger swipe. The comparison
// is strict, and the accumulator re-arms at zero after every trigger.
const tabSwitchThreshold = 150.0

// Swipe3Begin starts tracking a three-finger swipe.
func (d *Dispatcher) Swipe3Begin() {
	d.cells.Swipe3.Begin()
}

// Swipe3Update feeds displacement into the three-finger swipe cell. The
// direction still commits (and is observable through hooks), but no
// three-finger swipe behavior is bound, so the event is never consumed.
func (d *Dispatcher) Swipe3Update(dx, dy float64) bool {
	if dir, decided := d.cells.Swipe3.Update(dx, dy); decided {
		d.notifyDecided(gesture.KindSwipe, 3, dir)
	}
	return false
}

// Swipe3End ends a three-finger swipe. No action is bound; the cell is
// reset and the end is acknowledged if a gesture was in flight.
func (d *Dispatcher) Swipe3End(cancelled bool, ts uint32) bool {
	return d.swipeEnd(&d.cells.Swipe3)
}

// Swipe4Begin starts tracking a four-finger swipe.
func (d *Dispatcher) Swipe4Begin() {
	d.cells.Swipe4.Begin()
}

// Swipe4Update feeds displacement into the four-finger swipe cell.
//
// While the cell is deciding, the sample goes entirely to classification.
// Once a horizontal direction has committed, samples instead feed the
// live tab-switch accumulator; every time it passes the threshold one tab
// switch is injected and the accumulator re-arms. A committed vertical
// swipe is left to the compositor, so those events are not consumed.
func (d *Dispatcher) Swipe4Update(dx, dy float64) bool {
	cell := &d.cells.Swipe4
	switch cell.Decision {
	case gesture.DecisionDeciding:
		if dir, decided := cell.Update(dx, dy); decided {
			d.notifyDecided(gesture.KindSwipe, 4, dir)
		}
		return true
	case gesture.DecisionDecided:
		if cell.Direction != gesture.DirectionHorizontal {
			return false
		}
		d.accumulateTabSwitch(cell, dx)
		return true
	default:
		return false
	}
}

// Swipe4End ends a four-finger swipe. Tab switches fire live during the
// gesture, so the end itself carries no action beyond the reset.
func (d *Dispatcher) Swipe4End(cancelled bool, ts uint32) bool {
	return d.swipeEnd(&d.cells.Swipe4)
}

// accumulateTabSwitch advances the live horizontal accumulator and fires
// a tab switch each time it crosses the threshold. The accumulator only
// advances while the target application is focused; the displacement the
// cell carried over from classification counts toward the first trigger.
func (d *Dispatcher) accumulateTabSwitch(cell *gesture.Swipe, dx float64) {
	if !d.focusedAppMatches() {
		return
	}
	cell.Cx += dx
	switch {
	case cell.Cx < -tabSwitchThreshold:
		d.injectSequence(gesture.KindSwipe, 4, inject.PrevTab)
		cell.Cx = 0
	case cell.Cx > tabSwitchThreshold:
		d.injectSequence(gesture.KindSwipe, 4, inject.NextTab)
		cell.Cx = 0
	}
}

// swipeEnd resets a swipe cell. Ends with no gesture in flight are
// benign no-ops; everything else resets unconditionally, cancelled or
// not.
func (d *Dispatcher) swipeEnd(cell *gesture.Swipe) bool {
	if cell.Decision == gesture.DecisionUnknown {
		return false
	}
	cell.Reset()
	return true
}
