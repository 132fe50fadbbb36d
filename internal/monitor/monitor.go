// Package monitor provides an interactive terminal simulator for the
// gesture dispatcher. Keys stand in for the input stack: they begin,
// feed, and end synthetic gestures while the screen shows the cells,
// dispatcher activity, and compositor commands in real time.
package monitor

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/gestured/gestured/internal/compositor"
	"github.com/gestured/gestured/internal/config"
	"github.com/gestured/gestured/internal/dispatch"
	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/trace"
)

const (
	// swipeStep is the delta one arrow key press feeds into a swipe cell.
	swipeStep = 10.0
	// pinchStep is the scale change one bracket key press applies.
	pinchStep = 0.05
	// neutralApp is the focused app id toggled against the target.
	neutralApp = "org.gnome.Nautilus"
	// activityMax bounds the dispatcher activity log.
	activityMax = 8
)

// activeKind tracks which synthetic gesture is currently in flight.
type activeKind uint8

const (
	idle activeKind = iota
	activeSwipe
	activePinch
	activeHold
)

func (k activeKind) String() string {
	switch k {
	case activeSwipe:
		return "swipe"
	case activePinch:
		return "pinch"
	case activeHold:
		return "hold"
	default:
		return "idle"
	}
}

// Monitor drives a Dispatcher from keyboard input and renders its state.
// It owns the tcell screen for the duration of Run; all dispatcher access
// happens on the event loop goroutine.
type Monitor struct {
	screen tcell.Screen
	disp   *dispatch.Dispatcher
	sim    *compositor.Sim
	tw     *trace.Writer
	log    *zap.Logger

	start    time.Time
	fingers  int
	active   activeKind
	scale    float64
	activity []string
	quit     bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets the logger used for trace write failures.
func WithLogger(log *zap.Logger) Option {
	return func(m *Monitor) {
		if log != nil {
			m.log = log
		}
	}
}

// WithTraceWriter mirrors every synthetic event to w. The caller keeps
// ownership of w and closes it after Run returns.
func WithTraceWriter(w *trace.Writer) Option {
	return func(m *Monitor) {
		m.tw = w
	}
}

// WithScreen substitutes the tcell screen, primarily for tests.
func WithScreen(s tcell.Screen) Option {
	return func(m *Monitor) {
		m.screen = s
	}
}

// New creates a monitor for disp backed by sim. The sim must be the same
// Compositor the dispatcher was built with, so focus and cursor toggles
// are observed by the actions they gate.
func New(disp *dispatch.Dispatcher, sim *compositor.Sim, opts ...Option) (*Monitor, error) {
	m := &Monitor{
		disp:    disp,
		sim:     sim,
		log:     zap.NewNop(),
		start:   time.Now(),
		fingers: 3,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("monitor: create screen: %w", err)
		}
		m.screen = s
	}
	disp.AddHook(m)
	return m, nil
}

// Run initializes the screen and blocks in the event loop until the user
// quits.
func (m *Monitor) Run() error {
	if err := m.screen.Init(); err != nil {
		return fmt.Errorf("monitor: init screen: %w", err)
	}
	defer m.screen.Fini()

	// Seed the trace with the starting context so a replay reproduces it.
	if m.tw != nil {
		m.record(m.tw.Focus(m.sim.FocusedApp()))
		m.record(m.tw.Cursor(m.sim.HasWindowUnderCursor()))
	}

	for !m.quit {
		m.draw()
		ev := m.screen.PollEvent()
		if ev == nil {
			break
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			m.handleKey(e)
		case *tcell.EventResize:
			m.screen.Sync()
		case *tcell.EventInterrupt:
			if cfg, ok := e.Data().(config.Config); ok {
				m.applyConfig(cfg)
			} else {
				m.quit = true
			}
		}
	}
	return nil
}

// PostConfig hands a reloaded configuration to the event loop. Safe from
// any goroutine.
func (m *Monitor) PostConfig(cfg config.Config) {
	_ = m.screen.PostEvent(tcell.NewEventInterrupt(cfg))
}

// Quit asks the event loop to exit. Safe from any goroutine.
func (m *Monitor) Quit() {
	_ = m.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (m *Monitor) applyConfig(cfg config.Config) {
	m.disp.SetTargetApp(cfg.TargetApp)
	m.pushActivity("config reloaded, target " + m.disp.TargetApp())
}

// GestureDecided records a cell commit in the activity pane.
func (m *Monitor) GestureDecided(kind gesture.Kind, fingers int, dir gesture.Direction) {
	m.pushActivity(fmt.Sprintf("%s-%d decided %s", kind, fingers, dir))
}

// ActionDispatched records a dispatched action in the activity pane.
func (m *Monitor) ActionDispatched(kind gesture.Kind, fingers int, action string) {
	m.pushActivity(fmt.Sprintf("%s-%d %s", kind, fingers, action))
}

var _ dispatch.Hook = (*Monitor)(nil)

func (m *Monitor) handleKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		m.quit = true
		return
	case tcell.KeyLeft:
		m.swipe(-swipeStep, 0)
		return
	case tcell.KeyRight:
		m.swipe(swipeStep, 0)
		return
	case tcell.KeyUp:
		m.swipe(0, -swipeStep)
		return
	case tcell.KeyDown:
		m.swipe(0, swipeStep)
		return
	}
	if e.Key() != tcell.KeyRune {
		return
	}

	switch e.Rune() {
	case 'q':
		m.quit = true
	case '3':
		m.armFingers(3)
	case '4':
		m.armFingers(4)
	case 's':
		m.begin(activeSwipe)
	case 'p':
		m.begin(activePinch)
	case 'h':
		m.begin(activeHold)
	case '[':
		m.pinch(-pinchStep)
	case ']':
		m.pinch(pinchStep)
	case 'e':
		m.end(false)
	case 'c':
		m.end(true)
	case 'f':
		m.toggleFocus()
	case 'u':
		m.toggleCursor()
	}
}

// armFingers selects the finger count for the next gesture. Ignored while
// one is in flight: a real input stack never changes the count mid-gesture.
func (m *Monitor) armFingers(n int) {
	if m.active == idle {
		m.fingers = n
	}
}

func (m *Monitor) begin(kind activeKind) {
	if m.active != idle {
		return
	}
	m.active = kind
	ts := m.now()

	switch kind {
	case activeSwipe:
		if m.fingers == 3 {
			m.disp.Swipe3Begin()
		} else {
			m.disp.Swipe4Begin()
		}
		if m.tw != nil {
			m.record(m.tw.GestureBegin(gesture.KindSwipe, m.fingers, ts))
		}
	case activePinch:
		m.scale = 1.0
		if m.fingers == 3 {
			m.disp.Pinch3Begin()
		} else {
			m.disp.Pinch4Begin()
		}
		if m.tw != nil {
			m.record(m.tw.GestureBegin(gesture.KindPinch, m.fingers, ts))
		}
	case activeHold:
		if m.fingers == 3 {
			m.disp.Hold3Begin(ts)
		} else {
			m.disp.Hold4Begin(ts)
		}
		if m.tw != nil {
			m.record(m.tw.GestureBegin(gesture.KindHold, m.fingers, ts))
		}
	}
}

func (m *Monitor) swipe(dx, dy float64) {
	if m.active != activeSwipe {
		return
	}
	if m.fingers == 3 {
		m.disp.Swipe3Update(dx, dy)
	} else {
		m.disp.Swipe4Update(dx, dy)
	}
	if m.tw != nil {
		m.record(m.tw.SwipeUpdate(m.fingers, dx, dy))
	}
}

func (m *Monitor) pinch(delta float64) {
	if m.active != activePinch {
		return
	}
	m.scale += delta
	if m.fingers == 3 {
		m.disp.Pinch3Update(m.scale)
	} else {
		m.disp.Pinch4Update(m.scale)
	}
	if m.tw != nil {
		m.record(m.tw.PinchUpdate(m.fingers, m.scale))
	}
}

func (m *Monitor) end(cancelled bool) {
	if m.active == idle {
		return
	}
	ts := m.now()

	var kind gesture.Kind
	switch m.active {
	case activeSwipe:
		kind = gesture.KindSwipe
		if m.fingers == 3 {
			m.disp.Swipe3End(cancelled, ts)
		} else {
			m.disp.Swipe4End(cancelled, ts)
		}
	case activePinch:
		kind = gesture.KindPinch
		if m.fingers == 3 {
			m.disp.Pinch3End(cancelled, ts)
		} else {
			m.disp.Pinch4End(cancelled, ts)
		}
	case activeHold:
		kind = gesture.KindHold
		if m.fingers == 3 {
			m.disp.Hold3End(cancelled, ts)
		} else {
			m.disp.Hold4End(cancelled, ts)
		}
	}
	if m.tw != nil {
		m.record(m.tw.GestureEnd(kind, m.fingers, cancelled, ts))
	}
	m.active = idle
}

func (m *Monitor) toggleFocus() {
	app := m.disp.TargetApp()
	if m.sim.FocusedApp() == app {
		app = neutralApp
	}
	m.sim.SetFocusedApp(app)
	if m.tw != nil {
		m.record(m.tw.Focus(app))
	}
}

func (m *Monitor) toggleCursor() {
	present := !m.sim.HasWindowUnderCursor()
	m.sim.SetUnderCursor(present)
	if m.tw != nil {
		m.record(m.tw.Cursor(present))
	}
}

// now returns milliseconds since the monitor started. Truncation to
// uint32 matches the input stack's wrapping timestamp domain.
func (m *Monitor) now() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}

func (m *Monitor) pushActivity(line string) {
	m.activity = append(m.activity, line)
	if len(m.activity) > activityMax {
		m.activity = m.activity[len(m.activity)-activityMax:]
	}
}

func (m *Monitor) record(err error) {
	if err != nil {
		m.log.Warn("trace write failed", zap.Error(err))
	}
}
