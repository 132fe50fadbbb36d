package dispatch

import (
	"fmt"
	"testing"

	"github.com/gestured/gestured/internal/gesture"
	"github.com/gestured/gestured/internal/inject"
)

// fakeCompositor is a controllable window context. The focused window and
// the window under the cursor are modeled as fixed string handles.
type fakeCompositor struct {
	focusedApp  string // empty means no focused window
	underCursor bool
	commands    []string
}

var _ Compositor = (*fakeCompositor)(nil)

func (c *fakeCompositor) FocusedWindow() (Window, bool) {
	if c.focusedApp == "" {
		return nil, false
	}
	return "focused", true
}

func (c *fakeCompositor) WindowUnderCursor() (Window, bool) {
	if !c.underCursor {
		return nil, false
	}
	return "under-cursor", true
}

func (c *fakeCompositor) AppID(w Window) (string, bool) {
	if s, ok := w.(string); ok && s == "focused" && c.focusedApp != "" {
		return c.focusedApp, true
	}
	return "", false
}

func (c *fakeCompositor) ToggleWindowWidth(w Window, grow bool) {
	if grow {
		c.commands = append(c.commands, "toggle-width grow")
	} else {
		c.commands = append(c.commands, "toggle-width shrink")
	}
}

func (c *fakeCompositor) RequestClose(w Window) {
	c.commands = append(c.commands, "close-request")
}

// fakeHook records hook notifications as "kind/fingers/detail" strings.
type fakeHook struct {
	decided []string
	actions []string
}

var _ Hook = (*fakeHook)(nil)

func (h *fakeHook) GestureDecided(kind gesture.Kind, fingers int, dir gesture.Direction) {
	h.decided = append(h.decided, fmt.Sprintf("%s/%d/%s", kind, fingers, dir))
}

func (h *fakeHook) ActionDispatched(kind gesture.Kind, fingers int, action string) {
	h.actions = append(h.actions, fmt.Sprintf("%s/%d/%s", kind, fingers, action))
}

// newTestDispatcher wires a dispatcher to a target-focused compositor and
// a recording injector.
func newTestDispatcher() (*Dispatcher, *fakeCompositor, *inject.Recorder) {
	comp := &fakeCompositor{focusedApp: DefaultTargetApp, underCursor: true}
	rec := &inject.Recorder{}
	return NewDispatcher(comp, rec), comp, rec
}

func TestEndWithoutBeginIsNoOp(t *testing.T) {
	d, comp, rec := newTestDispatcher()

	ends := []struct {
		name string
		end  func(bool, uint32) bool
	}{
		{"swipe3", d.Swipe3End},
		{"swipe4", d.Swipe4End},
		{"pinch3", d.Pinch3End},
		{"pinch4", d.Pinch4End},
		{"hold3", d.Hold3End},
		{"hold4", d.Hold4End},
	}

	for _, tt := range ends {
		t.Run(tt.name, func(t *testing.T) {
			if tt.end(false, 1000) {
				t.Error("end on idle cell reported a gesture in flight")
			}
		})
	}

	if rec.Len() != 0 || len(comp.commands) != 0 {
		t.Errorf("idle ends produced actions: inject=%v commands=%v", rec.Names(), comp.commands)
	}
}

func TestEndIsIdempotent(t *testing.T) {
	d, _, _ := newTestDispatcher()

	d.Swipe4Begin()
	d.Swipe4Update(20, 0)

	if !d.Swipe4End(false, 0) {
		t.Fatal("first end = false, want true")
	}
	if d.Swipe4End(false, 0) {
		t.Error("second end = true, want false")
	}
}

func TestUpdateWithoutBeginIsNoOp(t *testing.T) {
	d, _, rec := newTestDispatcher()

	if d.Swipe3Update(100, 0) {
		t.Error("Swipe3Update on idle cell consumed the event")
	}
	if d.Swipe4Update(100, 0) {
		t.Error("Swipe4Update on idle cell consumed the event")
	}
	if d.Pinch3Update(0.5) {
		t.Error("Pinch3Update on idle cell consumed the event")
	}
	if d.Pinch4Update(0.5) {
		t.Error("Pinch4Update on idle cell consumed the event")
	}
	if rec.Len() != 0 {
		t.Errorf("idle updates injected %v", rec.Names())
	}
}

func TestNilContextNeverPanics(t *testing.T) {
	d := NewDispatcher(nil, nil)

	d.Swipe4Begin()
	if !d.Swipe4Update(20, 0) {
		t.Error("deciding swipe update not consumed")
	}
	d.Swipe4Update(200, 0)
	d.Swipe4End(false, 0)

	d.Pinch3Begin()
	d.Pinch3Update(0.85)
	d.Pinch3End(false, 0)

	d.Hold4Begin(0)
	d.Hold4End(false, 1000)
}

func TestSetTargetApp(t *testing.T) {
	d, comp, rec := newTestDispatcher()
	comp.focusedApp = "firefox"
	d.SetTargetApp("firefox")

	if got := d.TargetApp(); got != "firefox" {
		t.Fatalf("TargetApp() = %q, want %q", got, "firefox")
	}

	d.Swipe4Begin()
	d.Swipe4Update(20, 0)
	d.Swipe4Update(140, 0)

	if names := rec.Names(); len(names) != 1 || names[0] != "next-tab" {
		t.Errorf("injections = %v, want [next-tab]", names)
	}
}

func TestSetTargetAppIgnoresEmpty(t *testing.T) {
	d, _, _ := newTestDispatcher()
	d.SetTargetApp("")

	if got := d.TargetApp(); got != DefaultTargetApp {
		t.Errorf("TargetApp() = %q, want %q", got, DefaultTargetApp)
	}
}

func TestDispatcherReset(t *testing.T) {
	d, _, _ := newTestDispatcher()

	d.Swipe4Begin()
	d.Pinch3Begin()
	d.Hold4Begin(100)
	d.Reset()

	if *d.Cells() != (gesture.Registry{}) {
		t.Errorf("Reset left cells active: %+v", d.Cells())
	}
}

func TestHooksObserveDecisionsAndActions(t *testing.T) {
	comp := &fakeCompositor{focusedApp: DefaultTargetApp, underCursor: true}
	hook := &fakeHook{}
	d := NewDispatcher(comp, &inject.Recorder{}, WithHook(hook))

	d.Swipe4Begin()
	d.Swipe4Update(20, 0)
	d.Swipe4Update(140, 0)

	if len(hook.decided) != 1 || hook.decided[0] != "swipe/4/horizontal" {
		t.Errorf("decided = %v, want [swipe/4/horizontal]", hook.decided)
	}
	if len(hook.actions) != 1 || hook.actions[0] != "swipe/4/inject next-tab" {
		t.Errorf("actions = %v, want [swipe/4/inject next-tab]", hook.actions)
	}
}

func TestAddHook(t *testing.T) {
	d, _, _ := newTestDispatcher()
	hook := &fakeHook{}
	d.AddHook(hook)
	d.AddHook(nil)

	d.Swipe3Begin()
	d.Swipe3Update(20, 0)

	if len(hook.decided) != 1 || hook.decided[0] != "swipe/3/horizontal" {
		t.Errorf("decided = %v, want [swipe/3/horizontal]", hook.decided)
	}
}
