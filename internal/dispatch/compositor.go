package dispatch

// Window is an opaque handle to a compositor toplevel. The dispatcher
// never inspects it; it only passes it back to the Compositor that
// produced it.
type Window any

// Compositor is the window-context capability the dispatcher consumes.
// Implementations answer "what is focused, what is under the cursor, who
// is it" and carry out the two window commands gestures can request.
type Compositor interface {
	// FocusedWindow returns the currently focused toplevel, if any.
	FocusedWindow() (Window, bool)

	// WindowUnderCursor returns the toplevel under the pointer, if any.
	WindowUnderCursor() (Window, bool)

	// AppID reports the application id of a toplevel, if known.
	AppID(w Window) (string, bool)

	// ToggleWindowWidth grows or shrinks a toplevel's width preset.
	ToggleWindowWidth(w Window, grow bool)

	// RequestClose asks a toplevel to close.
	RequestClose(w Window)
}
