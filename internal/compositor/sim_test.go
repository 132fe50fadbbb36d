package compositor

import (
	"reflect"
	"testing"

	"github.com/gestured/gestured/internal/dispatch"
	"github.com/gestured/gestured/internal/inject"
)

func TestSimEmptyState(t *testing.T) {
	s := NewSim()

	if _, ok := s.FocusedWindow(); ok {
		t.Error("empty sim reports a focused window")
	}
	if _, ok := s.WindowUnderCursor(); ok {
		t.Error("empty sim reports a window under cursor")
	}
}

func TestSimFocus(t *testing.T) {
	s := NewSim()
	s.SetFocusedApp("google-chrome")

	w, ok := s.FocusedWindow()
	if !ok {
		t.Fatal("no focused window after SetFocusedApp")
	}
	app, ok := s.AppID(w)
	if !ok || app != "google-chrome" {
		t.Errorf("AppID = (%q, %v), want (google-chrome, true)", app, ok)
	}

	s.SetFocusedApp("")
	if _, ok := s.FocusedWindow(); ok {
		t.Error("focus not cleared by empty app id")
	}
}

func TestSimHandleKeepsIdentity(t *testing.T) {
	s := NewSim()
	s.SetFocusedApp("firefox")
	w, _ := s.FocusedWindow()

	// A handle produced earlier answers for the app it was bound to,
	// not the current focus.
	s.SetFocusedApp("google-chrome")
	if app, _ := s.AppID(w); app != "firefox" {
		t.Errorf("AppID of stale handle = %q, want firefox", app)
	}
}

func TestSimUnderCursorHasNoAppID(t *testing.T) {
	s := NewSim()
	s.SetUnderCursor(true)

	w, ok := s.WindowUnderCursor()
	if !ok {
		t.Fatal("no window under cursor after SetUnderCursor(true)")
	}
	if app, ok := s.AppID(w); ok {
		t.Errorf("under-cursor window has app id %q", app)
	}
}

func TestSimCommandLog(t *testing.T) {
	s := NewSim()
	s.SetUnderCursor(true)

	w, _ := s.WindowUnderCursor()
	s.ToggleWindowWidth(w, true)
	s.ToggleWindowWidth(w, false)
	s.RequestClose(w)

	want := []string{"toggle-width grow", "toggle-width shrink", "close-request"}
	if got := s.Commands(); !reflect.DeepEqual(got, want) {
		t.Errorf("Commands() = %v, want %v", got, want)
	}

	s.ClearCommands()
	if got := s.Commands(); len(got) != 0 {
		t.Errorf("Commands() after clear = %v", got)
	}
}

func TestSimDrivesDispatcher(t *testing.T) {
	s := NewSim()
	rec := &inject.Recorder{}
	d := dispatch.NewDispatcher(s, rec)

	s.SetFocusedApp(dispatch.DefaultTargetApp)
	d.Swipe4Begin()
	d.Swipe4Update(20, 0)
	d.Swipe4Update(140, 0)
	d.Swipe4End(false, 0)

	if names := rec.Names(); !reflect.DeepEqual(names, []string{"next-tab"}) {
		t.Errorf("injections = %v, want [next-tab]", names)
	}

	s.SetFocusedApp("other-app")
	s.SetUnderCursor(true)
	d.Hold4Begin(0)
	d.Hold4End(false, 500)

	if cmds := s.Commands(); !reflect.DeepEqual(cmds, []string{"close-request"}) {
		t.Errorf("commands = %v, want [close-request]", cmds)
	}
}
