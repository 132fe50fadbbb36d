package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/gestured/gestured/internal/gesture"
)

// Writer appends trace events to a stream. Not safe for concurrent use;
// the recording loop owns it.
type Writer struct {
	bw      *bufio.Writer
	closer  io.Closer
	session string
}

// NewWriter starts a trace on w, writing the header immediately. A fresh
// session id is generated per writer.
func NewWriter(w io.Writer) (*Writer, error) {
	tw := &Writer{
		bw:      bufio.NewWriter(w),
		session: uuid.NewString(),
	}
	if err := tw.writeHeader(); err != nil {
		return nil, err
	}
	return tw, nil
}

// Create starts a trace file at path, creating parent directories as
// needed. Close flushes and closes the file.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("trace: creating directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: creating %s: %w", path, err)
	}
	tw, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	tw.closer = f
	return tw, nil
}

// Session returns the trace's session id.
func (w *Writer) Session() string {
	return w.session
}

// GestureBegin records a begin for one gesture cell.
func (w *Writer) GestureBegin(kind gesture.Kind, fingers int, ts uint32) error {
	line, err := sjson.Set("", "ev", EvBegin)
	line, err = setField(line, err, "kind", kind.String())
	line, err = setField(line, err, "fingers", fingers)
	line, err = setField(line, err, "ts", ts)
	return w.writeLine(line, err)
}

// SwipeUpdate records a swipe displacement sample.
func (w *Writer) SwipeUpdate(fingers int, dx, dy float64) error {
	line, err := sjson.Set("", "ev", EvUpdate)
	line, err = setField(line, err, "kind", gesture.KindSwipe.String())
	line, err = setField(line, err, "fingers", fingers)
	line, err = setField(line, err, "dx", dx)
	line, err = setField(line, err, "dy", dy)
	return w.writeLine(line, err)
}

// PinchUpdate records a pinch scale sample.
func (w *Writer) PinchUpdate(fingers int, scale float64) error {
	line, err := sjson.Set("", "ev", EvUpdate)
	line, err = setField(line, err, "kind", gesture.KindPinch.String())
	line, err = setField(line, err, "fingers", fingers)
	line, err = setField(line, err, "scale", scale)
	return w.writeLine(line, err)
}

// GestureEnd records an end for one gesture cell.
func (w *Writer) GestureEnd(kind gesture.Kind, fingers int, cancelled bool, ts uint32) error {
	line, err := sjson.Set("", "ev", EvEnd)
	line, err = setField(line, err, "kind", kind.String())
	line, err = setField(line, err, "fingers", fingers)
	line, err = setField(line, err, "cancelled", cancelled)
	line, err = setField(line, err, "ts", ts)
	return w.writeLine(line, err)
}

// Focus records a focused-application change. An empty app means focus
// was lost.
func (w *Writer) Focus(app string) error {
	line, err := sjson.Set("", "ev", EvFocus)
	line, err = setField(line, err, "app", app)
	return w.writeLine(line, err)
}

// Cursor records whether a window sits under the cursor.
func (w *Writer) Cursor(present bool) error {
	line, err := sjson.Set("", "ev", EvCursor)
	line, err = setField(line, err, "present", present)
	return w.writeLine(line, err)
}

// Flush pushes buffered events to the underlying stream.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("trace: flushing: %w", err)
	}
	return nil
}

// Close flushes and, for file-backed writers, closes the file.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		if w.closer != nil {
			_ = w.closer.Close()
		}
		return err
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// writeHeader emits the identifying first line.
func (w *Writer) writeHeader() error {
	line, err := sjson.Set("", "trace", headerTrace)
	line, err = setField(line, err, "version", currentVersion)
	line, err = setField(line, err, "session", w.session)
	line, err = setField(line, err, "recorded_at", time.Now().UTC().Format(time.RFC3339))
	return w.writeLine(line, err)
}

// writeLine appends one encoded line, folding in any encoding error.
func (w *Writer) writeLine(line string, err error) error {
	if err != nil {
		return fmt.Errorf("trace: encoding event: %w", err)
	}
	if _, err := w.bw.WriteString(line); err != nil {
		return fmt.Errorf("trace: writing event: %w", err)
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("trace: writing event: %w", err)
	}
	return nil
}

// setField sets one JSON field, propagating an earlier error untouched.
func setField(line string, err error, path string, value any) (string, error) {
	if err != nil {
		return line, err
	}
	return sjson.Set(line, path, value)
}
