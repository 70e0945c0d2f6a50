package beatmap

import (
	"fmt"
	"math"
)

// Schedule is the validated, immutable beat sequence of one song
// Built once per song load; accessors never expose internal storage
type Schedule struct {
	beats []float64

	// Lazily derived midpoints, cached for the schedule lifetime
	halfBeats []float64
	halfReady bool
}

// Build validates beat times and returns a schedule owning a copy of them
// Empty input is valid and yields an inert schedule
func Build(beatTimes []float64) (*Schedule, error) {
	for i, t := range beatTimes {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("%w: beat %d is not finite", ErrInvalidBeatmap, i)
		}
		if t < 0 {
			return nil, fmt.Errorf("%w: beat %d is negative (%g)", ErrInvalidBeatmap, i, t)
		}
		if i > 0 && t <= beatTimes[i-1] {
			return nil, fmt.Errorf("%w: beat %d (%g) does not follow %g", ErrInvalidBeatmap, i, t, beatTimes[i-1])
		}
	}

	beats := make([]float64, len(beatTimes))
	copy(beats, beatTimes)
	return &Schedule{beats: beats}, nil
}

// Len returns the number of beats
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.beats)
}

// Empty reports whether the schedule disables beat crossing and judgment
func (s *Schedule) Empty() bool {
	return s.Len() == 0
}

// At returns beat i; caller guarantees 0 <= i < Len()
func (s *Schedule) At(i int) float64 {
	return s.beats[i]
}

// BeatTimes returns a copy of the beat times
func (s *Schedule) BeatTimes() []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s.beats))
	copy(out, s.beats)
	return out
}

// HalfBeatTimes returns a copy of the len-1 midpoints between consecutive beats
// Degenerate schedules (0 or 1 beat) yield an empty sequence
func (s *Schedule) HalfBeatTimes() []float64 {
	if s == nil {
		return nil
	}
	if !s.halfReady {
		s.halfBeats = midpoints(s.beats)
		s.halfReady = true
	}
	out := make([]float64, len(s.halfBeats))
	copy(out, s.halfBeats)
	return out
}

func midpoints(beats []float64) []float64 {
	if len(beats) < 2 {
		return []float64{}
	}
	half := make([]float64, len(beats)-1)
	for i := 0; i < len(beats)-1; i++ {
		half[i] = (beats[i] + beats[i+1]) / 2
	}
	return half
}
