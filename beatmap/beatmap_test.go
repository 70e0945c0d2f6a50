package beatmap

import (
	"errors"
	"math"
	"testing"
)

func TestBeatmapCropWindow(t *testing.T) {
	bm := Beatmap{BPM: 120, CroppedStartTime: 2, CroppedEndTime: 30}
	if bm.StartTime() != 2 {
		t.Errorf("Expected start 2, got %v", bm.StartTime())
	}
	end, ok := bm.EndTime()
	if !ok || end != 30 {
		t.Errorf("Expected end 30, got %v (ok=%v)", end, ok)
	}

	// End before start disables the end crop
	bm = Beatmap{CroppedStartTime: 5, CroppedEndTime: 5}
	if _, ok := bm.EndTime(); ok {
		t.Error("Expected no end crop when end <= start")
	}
}

func TestBeatmapValidate(t *testing.T) {
	bm := Beatmap{BPM: 0, BeatTimes: []float64{0.5, 1.0}}
	if err := bm.Validate(); err != nil {
		t.Errorf("Expected zero BPM to pass validation, got %v", err)
	}

	bm = Beatmap{CroppedStartTime: -1}
	if err := bm.Validate(); !errors.Is(err, ErrInvalidBeatmap) {
		t.Errorf("Expected ErrInvalidBeatmap for negative start, got %v", err)
	}

	bm = Beatmap{BeatTimes: []float64{2, 1}}
	if _, err := bm.Schedule(); !errors.Is(err, ErrInvalidBeatmap) {
		t.Errorf("Expected ErrInvalidBeatmap from Schedule, got %v", err)
	}
}

func TestGridAlignsToAnchor(t *testing.T) {
	beats, err := Grid(120, 1.2, 3.0)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	expected := []float64{0.2, 0.7, 1.2, 1.7, 2.2, 2.7}
	if len(beats) != len(expected) {
		t.Fatalf("Expected %d beats, got %d: %v", len(expected), len(beats), beats)
	}
	for i := range expected {
		if math.Abs(beats[i]-expected[i]) > 1e-9 {
			t.Errorf("Beat %d: expected %v, got %v", i, expected[i], beats[i])
		}
	}

	if _, err := Build(beats); err != nil {
		t.Errorf("Expected grid output to be a valid schedule, got %v", err)
	}
}

func TestGridEdgeCases(t *testing.T) {
	if _, err := Grid(0, 0, 10); !errors.Is(err, ErrInvalidBeatmap) {
		t.Errorf("Expected ErrInvalidBeatmap for zero bpm, got %v", err)
	}

	beats, err := Grid(60, 0, 0)
	if err != nil || len(beats) != 0 {
		t.Errorf("Expected empty grid for zero length, got %v (%v)", beats, err)
	}

	// Negative anchor wraps forward into the track
	beats, _ = Grid(60, -0.25, 2)
	if len(beats) != 2 || math.Abs(beats[0]-0.75) > 1e-9 {
		t.Errorf("Expected [0.75 1.75], got %v", beats)
	}
}
