package rhythm

import (
	"testing"

	"github.com/lixenwraith/beat-fighter/audio"
)

func TestJudgmentBoundaries(t *testing.T) {
	c, _ := startClock(t, 60, []float64{2.0, 3.0})
	c.Tick(1.9)

	tests := []struct {
		ts   float64
		want bool
	}{
		{1.82, true},
		{1.81, false},
		{2.0, true},
		{2.14, true},
		{2.15, false},
	}
	for _, tt := range tests {
		if got := c.IsOnBeat(tt.ts); got != tt.want {
			t.Errorf("IsOnBeat(%v): expected %v, got %v", tt.ts, tt.want, got)
		}
	}
}

func TestJudgmentTwoBeatLookback(t *testing.T) {
	c, _ := startClock(t, 60, []float64{2.0, 3.0, 4.0})
	c.Tick(1.9)
	c.Tick(2.9)

	if c.CurrentBeatIndex() != 1 {
		t.Fatalf("Expected current beat 1, got %d", c.CurrentBeatIndex())
	}
	if !c.IsOnBeat(2.86) {
		t.Error("Expected 2.86 on beat via current beat pre-window")
	}
	if !c.IsOnBeat(2.13) {
		t.Error("Expected 2.13 on beat via previous beat post-window")
	}
	if c.IsOnBeat(2.5) {
		t.Error("Expected 2.5 off beat")
	}

	// Beat two back is no longer consulted
	c.Tick(3.9)
	if c.IsOnBeat(2.13) {
		t.Error("Expected 2.13 off beat once beat 0 is two records back")
	}
}

func TestJudgmentInactive(t *testing.T) {
	c := NewClock(audio.NewManualSource(), DefaultOptions())
	if j := c.Judge(1.0); j.Verdict != VerdictInactive || j.Index != -1 {
		t.Errorf("Expected inactive judgment while idle, got %+v", j)
	}

	c, src := startClock(t, 60, []float64{2.0})
	if c.IsOnBeat(2.0) {
		t.Error("Expected off beat before any beat fired")
	}

	c.Tick(2.0)
	src.Pause()
	if c.IsOnBeat(2.0) {
		t.Error("Expected off beat while playback paused")
	}
}

func TestJudgeVerdicts(t *testing.T) {
	c, _ := startClock(t, 60, []float64{2.0, 3.0})
	c.Tick(2.0)

	tests := []struct {
		ts    float64
		want  Verdict
		index int
	}{
		{2.05, VerdictOnBeat, 0},
		{1.5, VerdictEarly, 0},
		{2.5, VerdictLate, 0},
	}
	for _, tt := range tests {
		j := c.Judge(tt.ts)
		if j.Verdict != tt.want || j.Index != tt.index {
			t.Errorf("Judge(%v): expected %v@%d, got %v@%d", tt.ts, tt.want, tt.index, j.Verdict, j.Index)
		}
	}

	if VerdictLate.String() != "late" || Verdict(9).String() != "unknown" {
		t.Errorf("Unexpected verdict names %q %q", VerdictLate, Verdict(9))
	}
}

func TestIsOnBeatNow(t *testing.T) {
	c, src := startClock(t, 60, []float64{1.0, 2.0})

	src.SetTime(0.9)
	c.Update()
	if !c.IsOnBeatNow() {
		t.Error("Expected on beat at 0.9")
	}

	src.SetTime(1.5)
	c.Update()
	if c.IsOnBeatNow() {
		t.Error("Expected off beat at 1.5")
	}
	if j := c.JudgeNow(); j.Verdict != VerdictLate {
		t.Errorf("Expected late at 1.5, got %v", j.Verdict)
	}
}

func TestCustomMargins(t *testing.T) {
	src := audio.NewManualSource()
	c := NewClock(src, Options{PreBeatMargin: 0.05, PostBeatMargin: 0.05})
	c.StartSong(newSong(t, "tight", 60, []float64{1.0}))
	c.Tick(1.0)

	if c.IsOnBeat(0.9) {
		t.Error("Expected 0.9 outside tight margin")
	}
	if !c.IsOnBeat(1.04) {
		t.Error("Expected 1.04 inside tight margin")
	}
	if pre, post := c.Margins(); pre != 0.05 || post != 0.05 {
		t.Errorf("Expected margins 0.05/0.05, got %v/%v", pre, post)
	}
}
