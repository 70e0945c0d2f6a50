package system

import (
	"math"
	"testing"
)

func TestBobberKickAndReturn(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2})
	b := NewBobber(clock, false)
	defer b.Close()

	step(clock, src, 1.0)
	if !b.Moving() {
		t.Fatal("Expected move started on beat")
	}

	b.Update(0.05)
	if math.Abs(b.Offset()-0.5) > 1e-9 {
		t.Errorf("Expected halfway out at 0.05, got %v", b.Offset())
	}
	b.Update(0.1)
	if math.Abs(b.Offset()-0.5) > 1e-9 {
		t.Errorf("Expected halfway back at 0.15, got %v", b.Offset())
	}
	b.Update(0.1)
	if b.Offset() != 0 || b.Moving() {
		t.Errorf("Expected rest after both legs, got %v moving=%v", b.Offset(), b.Moving())
	}
}

func TestBobberRebound(t *testing.T) {
	clock, src := playing(t, 60, []float64{1})
	b := NewBobber(clock, true)

	step(clock, src, 1.0)
	b.Update(0.225)
	want := b.Kick * b.ReboundFactor * 0.5
	if math.Abs(b.Offset()-want) > 1e-9 {
		t.Errorf("Expected rebound offset %v, got %v", want, b.Offset())
	}
	b.Update(0.1)
	if b.Moving() {
		t.Error("Expected rebound finished")
	}
}

func TestBobberIgnoresBeatWhileMoving(t *testing.T) {
	clock, src := playing(t, 300, []float64{1, 1.2})
	b := NewBobber(clock, false)

	step(clock, src, 0.9)
	b.Update(0.05)
	before := b.Offset()

	step(clock, src, 1.05)
	if clock.CurrentBeatIndex() != 1 {
		t.Fatalf("Expected second beat fired, got index %d", clock.CurrentBeatIndex())
	}
	if b.Offset() != before {
		t.Errorf("Expected second beat ignored mid-move, offset %v -> %v", before, b.Offset())
	}
}
