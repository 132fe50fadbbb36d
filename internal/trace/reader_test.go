package trace

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

const testHeader = `{"trace":"gestured","version":1,"session":"abc-123"}`

func TestReaderIteratesEvents(t *testing.T) {
	input := testHeader + "\n" +
		"\n" + // blank lines are tolerated
		`{"ev":"focus","app":"google-chrome"}` + "\n" +
		`{"ev":"begin","kind":"swipe","fingers":4,"ts":0}` + "\n" +
		`{"ev":"update","kind":"swipe","fingers":4,"dx":20,"dy":-1.5}` + "\n" +
		"\n" +
		`{"ev":"end","kind":"swipe","fingers":4,"cancelled":true,"ts":99}` + "\n"

	r, err := NewReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewReader() = %v", err)
	}
	if r.Session() != "abc-123" || r.Version() != 1 {
		t.Errorf("header = (%q, %d), want (abc-123, 1)", r.Session(), r.Version())
	}

	want := []Event{
		{Ev: EvFocus, App: "google-chrome"},
		{Ev: EvBegin, Kind: "swipe", Fingers: 4},
		{Ev: EvUpdate, Kind: "swipe", Fingers: 4, Dx: 20, Dy: -1.5},
		{Ev: EvEnd, Kind: "swipe", Fingers: 4, Cancelled: true, TS: 99},
	}
	for i, w := range want {
		ev, err := r.Next()
		if err != nil {
			t.Fatalf("Next() #%d = %v", i, err)
		}
		if ev != w {
			t.Errorf("event #%d = %+v, want %+v", i, ev, w)
		}
	}

	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after last event = %v, want io.EOF", err)
	}
}

func TestReaderHeaderValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty input", "", ErrNotATrace},
		{"not json", "hello world\n", ErrNotATrace},
		{"wrong format", `{"trace":"other","version":1}` + "\n", ErrNotATrace},
		{"missing trace field", `{"version":1}` + "\n", ErrNotATrace},
		{"future version", `{"trace":"gestured","version":99}` + "\n", ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewReader() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReaderMalformedEvent(t *testing.T) {
	tests := []struct {
		name  string
		event string
	}{
		{"not json", "garbage"},
		{"missing ev", `{"kind":"swipe","fingers":4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(strings.NewReader(testHeader + "\n" + tt.event + "\n"))
			if err != nil {
				t.Fatalf("NewReader() = %v", err)
			}
			if _, err := r.Next(); !errors.Is(err, ErrMalformedEvent) {
				t.Errorf("Next() = %v, want ErrMalformedEvent", err)
			}
		})
	}
}

func TestReaderMalformedEventNamesLine(t *testing.T) {
	r, err := NewReader(strings.NewReader(testHeader + "\n" + `{"ev":"focus"}` + "\n" + "broken\n"))
	if err != nil {
		t.Fatalf("NewReader() = %v", err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() = %v", err)
	}

	_, err = r.Next()
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Next() = %v, want error naming line 3", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Error("Open() on missing file = nil error")
	}
}
