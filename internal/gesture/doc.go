// Package gesture implements the state cells that turn streams of raw
// touchpad samples into committed gesture decisions.
//
// A multi-finger gesture arrives as a begin, a series of incremental
// updates (displacement deltas for swipes, absolute scale factors for
// pinches), and an end. None of the samples carry a label; the cell's job
// is to accumulate evidence until a threshold is crossed, commit to a
// direction exactly once, and ignore further classification attempts until
// the gesture ends.
//
// # Architecture
//
// Three cell types cover the supported gesture families:
//
//   - Swipe: accumulates x/y displacement and commits to a horizontal or
//     vertical direction once total displacement reaches the commit
//     distance
//   - Pinch: watches the scale factor and commits to in/out once it leaves
//     the neutral band around 1.0
//   - Hold: commits immediately at begin and records the begin timestamp;
//     duration is judged at end
//
// A Registry bundles the six independent cells tracked by the dispatcher:
// swipe, pinch, and hold, each for three and four fingers. Cells never
// interact; a four-finger swipe and a three-finger hold can be mid-flight
// at the same time.
//
// # Decision lifecycle
//
// Every cell moves through the same linear phases: Unknown (idle) to
// Deciding (gesture active, direction not yet known) to Decided (direction
// committed), then back to Unknown on reset. Hold skips Deciding. The
// transition into Decided happens at most once per gesture; a second
// threshold crossing is impossible because updates stop classifying once
// the decision is made.
//
// The package is purely computational: no goroutines, no locks, no I/O.
// Callers own the cells and serialize access.
package gesture
