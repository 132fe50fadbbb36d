package gesture

import "testing"

func TestClassifyPinch(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		expected Direction
		decided  bool
	}{
		{"clearly in", 0.85, DirectionIn, true},
		{"clearly out", 1.15, DirectionOut, true},
		{"neutral", 1.0, DirectionUnknown, false},
		{"in boundary is neutral", 0.9, DirectionUnknown, false},
		{"out boundary is neutral", 1.1, DirectionUnknown, false},
		{"just inside in", 0.89, DirectionIn, true},
		{"just inside out", 1.11, DirectionOut, true},
		{"extreme in", 0.1, DirectionIn, true},
		{"extreme out", 3.0, DirectionOut, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, decided := classifyPinch(tt.scale)
			if dir != tt.expected || decided != tt.decided {
				t.Errorf("classifyPinch(%v) = (%s, %v), want (%s, %v)",
					tt.scale, dir, decided, tt.expected, tt.decided)
			}
		})
	}
}

func TestPinchBegin(t *testing.T) {
	var p Pinch
	p.Begin()

	if p.Decision != DecisionDeciding {
		t.Errorf("Decision after Begin = %s, want %s", p.Decision, DecisionDeciding)
	}
	if p.Scale != 0 {
		t.Errorf("Scale after Begin = %v, want 0", p.Scale)
	}
}

func TestPinchUpdateIdleCell(t *testing.T) {
	var p Pinch

	if p.Update(0.5) {
		t.Error("Update on idle cell reported consumed")
	}
	if p.Decision != DecisionUnknown || p.Scale != 0 {
		t.Errorf("idle cell mutated: %+v", p)
	}
}

func TestPinchNeutralSamplesStayDeciding(t *testing.T) {
	var p Pinch
	p.Begin()

	for _, scale := range []float64{1.0, 0.95, 1.05, 0.9, 1.1} {
		if !p.Update(scale) {
			t.Errorf("Update(%v) while deciding reported not consumed", scale)
		}
		if p.Decision != DecisionDeciding {
			t.Errorf("Update(%v) moved decision to %s", scale, p.Decision)
		}
	}
}

func TestPinchCommitLeavesScaleZero(t *testing.T) {
	var p Pinch
	p.Begin()

	if !p.Update(0.85) {
		t.Fatal("decisive Update reported not consumed")
	}
	if p.Decision != DecisionDecided || p.Direction != DirectionIn {
		t.Fatalf("after commit: decision=%s direction=%s", p.Decision, p.Direction)
	}

	// The committing sample classifies but does not refresh Scale, so a
	// pinch that ends immediately after committing reports Scale == 0.
	if p.Scale != 0 {
		t.Errorf("Scale after commit = %v, want 0", p.Scale)
	}
}

func TestPinchDecidedRefreshesScale(t *testing.T) {
	var p Pinch
	p.Begin()
	p.Update(1.15)

	if !p.Update(1.4) {
		t.Error("post-commit Update reported not consumed")
	}
	if p.Scale != 1.4 {
		t.Errorf("Scale = %v, want 1.4", p.Scale)
	}

	// Samples back inside the commit band still refresh; the decision
	// never reopens.
	p.Update(1.0)
	if p.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", p.Scale)
	}
	if p.Direction != DirectionOut || p.Decision != DecisionDecided {
		t.Errorf("decision reopened: decision=%s direction=%s", p.Decision, p.Direction)
	}
}

func TestPinchBeginRestartsCleanly(t *testing.T) {
	var p Pinch
	p.Begin()
	p.Update(1.2)
	p.Update(1.5)

	p.Begin()
	if p != (Pinch{Decision: DecisionDeciding}) {
		t.Errorf("restart left state behind: %+v", p)
	}
}

func TestPinchReset(t *testing.T) {
	var p Pinch
	p.Begin()
	p.Update(0.8)
	p.Update(0.7)
	p.Reset()

	if p != (Pinch{}) {
		t.Errorf("Reset left state behind: %+v", p)
	}
}
