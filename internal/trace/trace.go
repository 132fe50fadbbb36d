// Package trace records and replays gesture sessions as JSON Lines.
//
// A trace starts with a header line identifying the format, version, and
// session, followed by one event per line. Events carry only the fields
// their type uses: gesture begin/update/end lines mirror the dispatcher's
// reducer surface, focus and cursor lines capture the window context the
// gestures ran against. Traces recorded in the simulator replay byte-for-
// byte into the same dispatcher calls.
package trace

// Event type tags, one per line variant.
const (
	EvBegin  = "begin"
	EvUpdate = "update"
	EvEnd    = "end"
	EvFocus  = "focus"
	EvCursor = "cursor"
)

// currentVersion is the trace format version this package writes and the
// newest it reads.
const currentVersion = 1

// headerTrace identifies a trace file's first line.
const headerTrace = "gestured"

// Event is one decoded line of a gesture trace. Fields beyond Ev are
// populated per event type and zero otherwise.
type Event struct {
	// Ev is the event type tag.
	Ev string

	// Kind and Fingers select the gesture cell (begin, update, end).
	Kind    string
	Fingers int

	// Dx and Dy are swipe displacement samples (update).
	Dx float64
	Dy float64

	// Scale is a pinch scale sample (update).
	Scale float64

	// TS is the monotonic millisecond timestamp (begin, end).
	TS uint32

	// Cancelled marks an end that aborted the gesture (end).
	Cancelled bool

	// App is the focused application id, empty for no focus (focus).
	App string

	// Present marks whether a window sits under the cursor (cursor).
	Present bool
}
