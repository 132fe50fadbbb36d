package dispatch

import (
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
)

// DefaultTargetApp is the application id gestures are matched against
// when no configuration overrides it.
const DefaultTargetApp = "google-chrome"

// Dispatcher owns the gesture cells and turns committed gestures into
// actions. It is not safe for concurrent use: the input stack delivers
// events one at a time, and everything here runs on that goroutine.
type Dispatcher struct {
	cells     gesture.Registry
	comp      Compositor
	inj       inject.Injector
	targetApp string
	hooks     []Hook
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTargetApp overrides the target application id.
func WithTargetApp(app string) Option {
	return func(d *Dispatcher) {
		if app != "" {
			d.targetApp = app
		}
	}
}

// WithHook registers an observer. Hooks are invoked in registration
// order.
func WithHook(h Hook) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.hooks = append(d.hooks, h)
		}
	}
}

// NewDispatcher creates a dispatcher bound to the given window context
// and injector. Either may be nil; the affected actions degrade to
// no-ops.
func NewDispatcher(comp Compositor, inj inject.Injector, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		comp:      comp,
		inj:       inj,
		targetApp: DefaultTargetApp,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Cells exposes the registry for read-mostly consumers such as status
// displays. Mutating it outside the reducers corrupts gesture tracking.
func (d *Dispatcher) Cells() *gesture.Registry {
	return &d.cells
}

// TargetApp returns the application id actions are gated on.
func (d *Dispatcher) TargetApp() string {
	return d.targetApp
}

// SetTargetApp swaps the target application id. Not synchronized: call
// it from the goroutine that drives the reducers, between events.
func (d *Dispatcher) SetTargetApp(app string) {
	if app != "" {
		d.targetApp = app
	}
}

// AddHook registers an observer after construction. Same contract as
// SetTargetApp: call it from the goroutine that drives the reducers.
func (d *Dispatcher) AddHook(h Hook) {
	if h != nil {
		d.hooks = append(d.hooks, h)
	}
}

// Reset returns every cell to idle, abandoning any gestures in flight.
func (d *Dispatcher) Reset() {
	d.cells.Reset()
}

// focusedAppMatches reports whether the focused window belongs to the
// target application.
func (d *Dispatcher) focusedAppMatches() bool {
	if d.comp == nil {
		return false
	}
	w, ok := d.comp.FocusedWindow()
	if !ok {
		return false
	}
	app, ok := d.comp.AppID(w)
	return ok && app == d.targetApp
}

// injectSequence sends a key sequence and reports it to the hooks.
func (d *Dispatcher) injectSequence(kind gesture.Kind, fingers int, seq inject.Sequence) {
	if d.inj != nil {
		d.inj.Inject(seq)
	}
	d.notifyAction(kind, fingers, "inject "+seq.Name())
}
