package dispatch

import (
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
)

// Neutral band for the final pinch scale. A pinch whose fingers drift
// back toward their starting spread by the time the gesture ends was
// accidental and produces no action. The band is asymmetric on purpose:
// 0.7 is inside it, 1.3 is not. A pinch that never saw a post-commit
// sample ends with scale 0, which is outside the band and acts.
const (
	pinchNeutralLow  = 0.7
	pinchNeutralHigh = 1.3
)

// pinchNeutral reports whether a final scale lands in the neutral band.
func pinchNeutral(scale float64) bool {
	return scale >= pinchNeutralLow && scale < pinchNeutralHigh
}

// Pinch3Begin starts tracking a three-finger pinch.
func (d *Dispatcher) Pinch3Begin() {
	d.cells.Pinch3.Begin()
}

// Pinch3Update feeds a scale sample into the three-finger pinch cell.
func (d *Dispatcher) Pinch3Update(scale float64) bool {
	return d.pinchUpdate(&d.cells.Pinch3, 3, scale)
}

// Pinch3End ends a three-finger pinch. A decided, uncancelled pinch whose
// final scale is outside the neutral band toggles the width of the window
// under the cursor: shrink on pinch in, grow on pinch out.
func (d *Dispatcher) Pinch3End(cancelled bool, ts uint32) bool {
	cell := &d.cells.Pinch3
	if cell.Decision == gesture.DecisionUnknown {
		return false
	}
	if cell.Decision == gesture.DecisionDecided && !cancelled && !pinchNeutral(cell.Scale) {
		d.toggleWindowWidth(cell.Direction == gesture.DirectionOut)
	}
	cell.Reset()
	return true
}

// Pinch4Begin starts tracking a four-finger pinch.
func (d *Dispatcher) Pinch4Begin() {
	d.cells.Pinch4.Begin()
}

// Pinch4Update feeds a scale sample into the four-finger pinch cell.
func (d *Dispatcher) Pinch4Update(scale float64) bool {
	return d.pinchUpdate(&d.cells.Pinch4, 4, scale)
}

// Pinch4End ends a four-finger pinch. A decided, uncancelled pinch whose
// final scale is outside the neutral band injects browser navigation into
// the target application: back on pinch in, refresh on pinch out. With
// any other application focused the gesture is silently dropped.
func (d *Dispatcher) Pinch4End(cancelled bool, ts uint32) bool {
	cell := &d.cells.Pinch4
	if cell.Decision == gesture.DecisionUnknown {
		return false
	}
	if cell.Decision == gesture.DecisionDecided && !cancelled && !pinchNeutral(cell.Scale) && d.focusedAppMatches() {
		if cell.Direction == gesture.DirectionIn {
			d.injectSequence(gesture.KindPinch, 4, inject.Back)
		} else {
			d.injectSequence(gesture.KindPinch, 4, inject.Refresh)
		}
	}
	cell.Reset()
	return true
}

// pinchUpdate drives one pinch cell and reports hook notifications for
// decision commits.
func (d *Dispatcher) pinchUpdate(cell *gesture.Pinch, fingers int, scale float64) bool {
	wasDeciding := cell.Decision == gesture.DecisionDeciding
	handled := cell.Update(scale)
	if wasDeciding && cell.Decision == gesture.DecisionDecided {
		d.notifyDecided(gesture.KindPinch, fingers, cell.Direction)
	}
	return handled
}

// toggleWindowWidth asks the compositor to resize the window under the
// cursor. No window under the cursor means nothing happens.
func (d *Dispatcher) toggleWindowWidth(grow bool) {
	if d.comp == nil {
		return
	}
	w, ok := d.comp.WindowUnderCursor()
	if !ok {
		return
	}
	d.comp.ToggleWindowWidth(w, grow)
	action := "toggle-width shrink"
	if grow {
		action = "toggle-width grow"
	}
	d.notifyAction(gesture.KindPinch, 3, action)
}
