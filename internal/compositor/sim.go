// Package compositor provides an in-memory window context for the tools
// and tests that drive the dispatcher without a real compositor.
package compositor

import (
	"sync"

	"github.com/gestured/gestured/internal/dispatch"
)

// simWindow is the toplevel handle the simulator hands out. The handle
// carries its own application id, so identity survives focus changes made
// after the handle was produced.
type simWindow struct {
	app string
}

// Sim models the slice of compositor state the dispatcher consults: one
// focused window with an application id, one optional window under the
// cursor, and a log of the window commands gestures have requested. The
// zero state has no focused window and nothing under the cursor.
type Sim struct {
	mu          sync.Mutex
	focusedApp  string
	underCursor bool
	commands    []string
}

var _ dispatch.Compositor = (*Sim)(nil)

// NewSim creates an empty simulated compositor.
func NewSim() *Sim {
	return &Sim{}
}

// SetFocusedApp focuses a window of the given application. An empty id
// clears focus entirely.
func (s *Sim) SetFocusedApp(app string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusedApp = app
}

// FocusedApp returns the focused application id, empty when nothing is
// focused.
func (s *Sim) FocusedApp() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusedApp
}

// SetUnderCursor places or removes a window under the cursor.
func (s *Sim) SetUnderCursor(present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.underCursor = present
}

// HasWindowUnderCursor reports whether a window sits under the cursor.
func (s *Sim) HasWindowUnderCursor() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.underCursor
}

// Commands returns the window commands requested so far, oldest first.
func (s *Sim) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

// ClearCommands empties the command log.
func (s *Sim) ClearCommands() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = nil
}

// FocusedWindow implements dispatch.Compositor.
func (s *Sim) FocusedWindow() (dispatch.Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.focusedApp == "" {
		return nil, false
	}
	return simWindow{app: s.focusedApp}, true
}

// WindowUnderCursor implements dispatch.Compositor. The window under the
// cursor has no application id of its own; gestures aimed at it act on
// the handle, not the identity.
func (s *Sim) WindowUnderCursor() (dispatch.Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.underCursor {
		return nil, false
	}
	return simWindow{}, true
}

// AppID implements dispatch.Compositor.
func (s *Sim) AppID(w dispatch.Window) (string, bool) {
	sw, ok := w.(simWindow)
	if !ok || sw.app == "" {
		return "", false
	}
	return sw.app, true
}

// ToggleWindowWidth implements dispatch.Compositor.
func (s *Sim) ToggleWindowWidth(w dispatch.Window, grow bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if grow {
		s.commands = append(s.commands, "toggle-width grow")
	} else {
		s.commands = append(s.commands, "toggle-width shrink")
	}
}

// RequestClose implements dispatch.Compositor.
func (s *Sim) RequestClose(w dispatch.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, "close-request")
}
