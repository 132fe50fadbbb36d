package dispatch

import "github.com/gestured/gestured/internal/gesture"

// Hook observes dispatcher activity. Hooks run synchronously on the
// reducer goroutine and cannot veto or mutate; keep them fast.
type Hook interface {
	// GestureDecided fires when a cell commits its decision. Holds commit
	// at begin and report DirectionUnknown.
	GestureDecided(kind gesture.Kind, fingers int, dir gesture.Direction)

	// ActionDispatched fires after a terminal or live action has been
	// carried out. The action string is a stable description such as
	// "inject next-tab" or "toggle-width grow".
	ActionDispatched(kind gesture.Kind, fingers int, action string)
}

func (d *Dispatcher) notifyDecided(kind gesture.Kind, fingers int, dir gesture.Direction) {
	for _, h := range d.hooks {
		h.GestureDecided(kind, fingers, dir)
	}
}

func (d *Dispatcher) notifyAction(kind gesture.Kind, fingers int, action string) {
	for _, h := range d.hooks {
		h.ActionDispatched(kind, fingers, action)
	}
}
