package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Reader iterates the events of a trace stream. Blank lines are
// tolerated; anything else that fails to parse stops the iteration with
// an error naming the line.
type Reader struct {
	sc      *bufio.Scanner
	closer  io.Closer
	session string
	version int
	line    int
}

// NewReader reads a trace from r, consuming and validating the header.
func NewReader(r io.Reader) (*Reader, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	tr := &Reader{sc: sc}
	if err := tr.readHeader(); err != nil {
		return nil, err
	}
	return tr, nil
}

// Open reads a trace file at path. Close releases the file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: opening %s: %w", path, err)
	}
	tr, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	tr.closer = f
	return tr, nil
}

// Session returns the session id from the header.
func (r *Reader) Session() string {
	return r.session
}

// Version returns the format version from the header.
func (r *Reader) Version() int {
	return r.version
}

// Close releases the underlying file for readers produced by Open.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next returns the next event, or io.EOF after the last one.
func (r *Reader) Next() (Event, error) {
	for r.sc.Scan() {
		r.line++
		raw := strings.TrimSpace(r.sc.Text())
		if raw == "" {
			continue
		}
		if !gjson.Valid(raw) {
			return Event{}, fmt.Errorf("line %d: %w", r.line, ErrMalformedEvent)
		}

		g := gjson.Parse(raw)
		ev := Event{
			Ev:        g.Get("ev").String(),
			Kind:      g.Get("kind").String(),
			Fingers:   int(g.Get("fingers").Int()),
			Dx:        g.Get("dx").Float(),
			Dy:        g.Get("dy").Float(),
			Scale:     g.Get("scale").Float(),
			TS:        uint32(g.Get("ts").Uint()),
			Cancelled: g.Get("cancelled").Bool(),
			App:       g.Get("app").String(),
			Present:   g.Get("present").Bool(),
		}
		if ev.Ev == "" {
			return Event{}, fmt.Errorf("line %d: %w", r.line, ErrMalformedEvent)
		}
		return ev, nil
	}

	if err := r.sc.Err(); err != nil {
		return Event{}, fmt.Errorf("trace: reading: %w", err)
	}
	return Event{}, io.EOF
}

// readHeader consumes the first non-blank line and validates it.
func (r *Reader) readHeader() error {
	for r.sc.Scan() {
		r.line++
		raw := strings.TrimSpace(r.sc.Text())
		if raw == "" {
			continue
		}
		if !gjson.Valid(raw) {
			return ErrNotATrace
		}

		g := gjson.Parse(raw)
		if g.Get("trace").String() != headerTrace {
			return ErrNotATrace
		}
		version := int(g.Get("version").Int())
		if version > currentVersion {
			return fmt.Errorf("%w: %d (max supported: %d)", ErrUnsupportedVersion, version, currentVersion)
		}
		r.version = version
		r.session = g.Get("session").String()
		return nil
	}

	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("trace: reading header: %w", err)
	}
	return ErrNotATrace
}
