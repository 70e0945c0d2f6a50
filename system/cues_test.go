package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/beat-fighter/parameter"
)

func TestCueSchedulerLookAhead(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2, 3, 4, 5})
	s := NewCueScheduler(clock)
	defer s.Close()

	step(clock, src, 0.7)
	s.Update(0)

	// Horizon is 2 beat intervals: beats 1 and 2, half-beats 1.5 and 2.5
	want := map[int]bool{0: true, 1: true, parameter.CueHalfBeatKeyOffset: true, parameter.CueHalfBeatKeyOffset + 1: true}
	if len(s.Cues()) != len(want) {
		t.Fatalf("Expected %d cues, got %d", len(want), len(s.Cues()))
	}
	for _, c := range s.Cues() {
		if !want[c.Key] {
			t.Errorf("Unexpected cue key %d", c.Key)
		}
		if c.Half != (c.Key >= parameter.CueHalfBeatKeyOffset) {
			t.Errorf("Cue %d: half flag mismatch", c.Key)
		}
	}
}

func TestCueSchedulerSchedulesOnce(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2, 3})
	s := NewCueScheduler(clock)
	s.IncludeHalfBeats = false

	step(clock, src, 0.5)
	s.Update(0)
	step(clock, src, 0.6)
	s.Update(0)

	if len(s.Cues()) != 2 {
		t.Errorf("Expected 2 cues after repeated updates, got %d", len(s.Cues()))
	}
}

func TestCueTravelAndFade(t *testing.T) {
	clock, src := playing(t, 60, []float64{2})
	s := NewCueScheduler(clock)

	step(clock, src, 1.0)
	s.Update(0)
	if len(s.Cues()) != 1 {
		t.Fatalf("Expected one cue, got %d", len(s.Cues()))
	}
	c := s.Cues()[0]

	step(clock, src, 1.5)
	s.Update(0)
	if math.Abs(c.Progress()-0.5) > 1e-9 || math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("Expected half travel at 1.5, got progress=%v alpha=%v", c.Progress(), c.Alpha())
	}

	step(clock, src, 2.25)
	s.Update(0)
	if !c.Arrived() || math.Abs(c.Alpha()-0.5) > 1e-9 {
		t.Errorf("Expected arrived and half faded, got arrived=%v alpha=%v", c.Arrived(), c.Alpha())
	}

	step(clock, src, 2.5)
	s.Update(0)
	if !c.Done() || len(s.Cues()) != 0 {
		t.Errorf("Expected cue removed after fade, got done=%v live=%d", c.Done(), len(s.Cues()))
	}
}

func TestCueHalfBeatFadesFaster(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2})
	s := NewCueScheduler(clock)

	step(clock, src, 1.2)
	s.Update(0)

	var half *Cue
	for _, c := range s.Cues() {
		if c.Half {
			half = c
		}
	}
	if half == nil {
		t.Fatal("Expected a half-beat cue for 1.5")
	}
	if half.Fade != parameter.CueFadeOutTime/2 {
		t.Errorf("Expected half fade %v, got %v", parameter.CueFadeOutTime/2, half.Fade)
	}
}

func TestCueSchedulerResetsOnLoopAndSongChange(t *testing.T) {
	clock, src := playing(t, 60, []float64{1, 2, 3})
	s := NewCueScheduler(clock)

	step(clock, src, 2.5)
	s.Update(0)
	if !s.Scheduled(2) {
		t.Fatal("Expected beat 2 scheduled")
	}

	step(clock, src, 0.1)
	if s.Scheduled(2) || len(s.Cues()) != 0 {
		t.Error("Expected schedule cleared on loop")
	}
	s.Update(0)
	if !s.Scheduled(0) {
		t.Error("Expected beat 0 rescheduled after loop")
	}

	clock.StartSong(clock.Song())
	if s.Scheduled(0) || len(s.Cues()) != 0 {
		t.Error("Expected schedule cleared on song change")
	}
}
