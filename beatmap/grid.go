package beatmap

import (
	"fmt"
	"math"
)

// Grid places beat markers every 60/bpm seconds in [0, length)
// The grid is aligned to anchor: the first marker is the earliest grid point >= 0
func Grid(bpm, anchor, length float64) ([]float64, error) {
	if bpm <= 0 {
		return nil, fmt.Errorf("%w: grid requires bpm > 0, got %g", ErrInvalidBeatmap, bpm)
	}
	if length <= 0 {
		return []float64{}, nil
	}

	interval := 60.0 / bpm
	first := math.Mod(anchor, interval)
	if first < 0 {
		first += interval
	}

	// Multiplying from first avoids accumulating float error across long tracks
	var beats []float64
	for i := 0; ; i++ {
		t := first + float64(i)*interval
		if t >= length {
			break
		}
		beats = append(beats, t)
	}
	if beats == nil {
		beats = []float64{}
	}
	return beats, nil
}
