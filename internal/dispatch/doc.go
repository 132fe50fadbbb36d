// Package dispatch maps committed gestures to actions.
//
// The Dispatcher owns the six gesture cells and exposes the reducer
// surface the input stack drives: begin, update, and end per (kind,
// finger count). Updates feed the cells until a direction commits; ends
// read the committed state, consult the window context, and trigger at
// most one terminal action before resetting the cell.
//
// # Actions
//
// Terminal behavior is fixed:
//
//   - four-finger horizontal swipe: while the gesture is live and the
//     target application is focused, every 150 accumulated units switch
//     the previous or next tab and re-arm
//   - three-finger pinch: on end, toggle the width of the window under
//     the cursor (shrink on pinch in, grow on pinch out)
//   - four-finger pinch: on end with the target application focused,
//     navigate back (in) or refresh (out)
//   - four-finger hold of at least 300 ms: close the focused tab when
//     the target application is focused, otherwise ask the compositor to
//     close the window under the cursor
//   - three-finger swipe and three-finger hold: tracked but reserved; no
//     action is bound
//
// Accidental input is filtered at the end boundary: cancelled gestures
// and pinches whose final scale settles back near 1.0 produce nothing.
//
// # Context
//
// Window context comes from the Compositor capability interface; the
// focused window's application id is compared against a single configured
// target application. Key injection goes through an inject.Injector.
// Missing context (no focused window, nothing under the cursor) downgrades
// the action to a no-op.
//
// All methods are synchronous and must be driven from one goroutine; the
// package takes no locks and starts no goroutines.
package dispatch
