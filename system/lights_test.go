package system

import (
	"math"
	"testing"
)

func TestLightOscillatorToggles(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2, 3})
	l := NewLightOscillator(clock, false)
	defer l.Close()

	step(clock, src, 1.0)
	if l.Target() != l.Max {
		t.Errorf("Expected target max after first beat, got %v", l.Target())
	}

	l.Update(0.95)
	if math.Abs(l.Intensity()-l.Max) > 0.3 {
		t.Errorf("Expected intensity near max after one interval, got %v", l.Intensity())
	}

	step(clock, src, 2.0)
	if l.Target() != l.Min {
		t.Errorf("Expected target min after second beat, got %v", l.Target())
	}
}

func TestLightOscillatorHalfTime(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2, 3, 4})
	l := NewLightOscillator(clock, true)

	step(clock, src, 1.0)
	if l.Target() != l.Min {
		t.Errorf("Expected no toggle on first beat in half time, got %v", l.Target())
	}
	step(clock, src, 2.0)
	if l.Target() != l.Max {
		t.Errorf("Expected toggle on second beat, got %v", l.Target())
	}
}

func TestApproachFrameRateIndependent(t *testing.T) {
	a := approach(0, 10, 3, 0.5)

	b := 0.0
	for range 50 {
		b = approach(b, 10, 3, 0.01)
	}
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Expected same result at different frame rates, got %v and %v", a, b)
	}
	if approach(4, 10, 3, 0) != 4 {
		t.Error("Expected zero dt to leave value unchanged")
	}
}
