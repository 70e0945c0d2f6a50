package audio

import (
	"time"
)

// SilentSource advances playback time with a wall clock and outputs nothing
// Used when no audio device is available so the beat clock still runs
type SilentSource struct {
	now func() time.Time

	track  Track
	length float64 // Asset length from decoding, 0 = unknown
	loaded bool

	playing  bool
	base     float64   // Position when playback last resumed or seeked
	baseTime time.Time // Wall time matching base
}

// NewSilentSource creates a silent source reading time from now
func NewSilentSource(now func() time.Time) *SilentSource {
	if now == nil {
		now = time.Now
	}
	return &SilentSource{now: now}
}

// Load implements Source
// The asset is probed for its length so the loop point is known; an undecodable
// asset still loads and runs unbounded unless the track has an end crop
func (s *SilentSource) Load(track Track) error {
	s.Stop()
	s.length = 0
	if track.Path != "" {
		if d, err := Duration(track.Path); err == nil {
			s.length = d.Seconds()
		}
	}
	s.track = track
	s.loaded = true
	s.base = track.Start
	s.baseTime = s.now()
	return nil
}

// CurrentTime implements Source
func (s *SilentSource) CurrentTime() float64 {
	if !s.playing {
		return s.base
	}
	elapsed := s.now().Sub(s.baseTime).Seconds()
	return wrap(s.base+elapsed, s.track, s.length)
}

// IsPlaying implements Source
func (s *SilentSource) IsPlaying() bool {
	return s.loaded && s.playing
}

// Seek implements Source
func (s *SilentSource) Seek(t float64) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	s.base = max(t, 0)
	s.baseTime = s.now()
	return nil
}

// Play implements Source
func (s *SilentSource) Play() {
	if !s.loaded || s.playing {
		return
	}
	s.baseTime = s.now()
	s.playing = true
}

// Pause implements Source
func (s *SilentSource) Pause() {
	if !s.playing {
		return
	}
	s.base = s.CurrentTime()
	s.playing = false
}

// Stop implements Source
func (s *SilentSource) Stop() {
	s.playing = false
	s.loaded = false
	s.base = 0
}
