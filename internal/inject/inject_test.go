package inject

import (
	"reflect"
	"testing"
)

func TestSequenceTokens(t *testing.T) {
	tests := []struct {
		seq      Sequence
		name     string
		expected []string
	}{
		{CloseTab, "close-tab", []string{"29:1", "17:1", "17:0", "29:0"}},
		{PrevTab, "prev-tab", []string{"29:1", "42:1", "15:1", "15:0", "42:0", "29:0"}},
		{NextTab, "next-tab", []string{"29:1", "15:1", "15:0", "29:0"}},
		{Refresh, "refresh", []string{"29:1", "19:1", "19:0", "29:0"}},
		{Back, "back", []string{"158:1", "158:0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.seq.Tokens(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokens() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSequenceTokensIsCopy(t *testing.T) {
	tokens := Back.Tokens()
	tokens[0] = "mutated"

	if got := Back.Tokens()[0]; got != "158:1" {
		t.Errorf("Tokens() exposed internal state: first token = %q", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Inject(NextTab)
	r.Inject(PrevTab)

	if got := r.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	names := r.Names()
	if !reflect.DeepEqual(names, []string{"next-tab", "prev-tab"}) {
		t.Errorf("Names() = %v, want [next-tab prev-tab]", names)
	}

	seqs := r.Sequences()
	if len(seqs) != 2 || seqs[0].Name() != "next-tab" {
		t.Errorf("Sequences() = %v", seqs)
	}

	r.Reset()
	if got := r.Len(); got != 0 {
		t.Errorf("Len() after Reset = %d, want 0", got)
	}
}

func TestYdotoolMissingBinary(t *testing.T) {
	// Spawn failures are swallowed: injecting through a nonexistent
	// binary must neither panic nor report.
	y := NewYdotool("/nonexistent/path/to/ydotool")
	y.Inject(CloseTab)
	y.Inject(Back)
}
