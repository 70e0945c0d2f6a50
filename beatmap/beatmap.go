package beatmap

import (
	"fmt"
	"math"
)

// Beatmap is the timing data of a song as authored at import time
// Times are seconds relative to the start of the audio asset
type Beatmap struct {
	BPM              float64
	CroppedStartTime float64
	CroppedEndTime   float64 // <= CroppedStartTime means play to the end of the asset
	BeatTimes        []float64
}

// Validate checks the crop window and beat sequence
// BPM is not validated: non-positive BPM is recovered by the clock with a default interval
func (b *Beatmap) Validate() error {
	if math.IsNaN(b.CroppedStartTime) || b.CroppedStartTime < 0 {
		return fmt.Errorf("%w: cropped start %g", ErrInvalidBeatmap, b.CroppedStartTime)
	}
	if math.IsNaN(b.CroppedEndTime) || b.CroppedEndTime < 0 {
		return fmt.Errorf("%w: cropped end %g", ErrInvalidBeatmap, b.CroppedEndTime)
	}
	_, err := Build(b.BeatTimes)
	return err
}

// Schedule builds the beat schedule for this beatmap
func (b *Beatmap) Schedule() (*Schedule, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return Build(b.BeatTimes)
}

// StartTime returns the playback start, 0 when unset
func (b *Beatmap) StartTime() float64 {
	if b.CroppedStartTime > 0 {
		return b.CroppedStartTime
	}
	return 0
}

// EndTime returns the crop end, ok=false when the crop window has no end
func (b *Beatmap) EndTime() (float64, bool) {
	if b.CroppedEndTime > b.StartTime() {
		return b.CroppedEndTime, true
	}
	return 0, false
}
