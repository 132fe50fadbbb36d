package trace

import "errors"

// Sentinel errors for trace parsing.
var (
	// ErrNotATrace is returned when the header line is missing or does
	// not identify a gesture trace.
	ErrNotATrace = errors.New("trace: not a gesture trace")

	// ErrUnsupportedVersion is returned for traces written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("trace: unsupported version")

	// ErrMalformedEvent is returned for lines that are not valid events.
	ErrMalformedEvent = errors.New("trace: malformed event")
)
