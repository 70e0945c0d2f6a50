package audio

// ManualSource is a Source whose time only moves when told to
// Used by tests and headless sessions
type ManualSource struct {
	track   Track
	loaded  bool
	playing bool
	now     float64

	// Length is the asset length used when the track has no end crop, 0 = unbounded
	Length float64

	// Loads counts successful Load calls
	Loads int
}

// NewManualSource creates a stopped manual source
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

// Load implements Source
func (m *ManualSource) Load(track Track) error {
	m.track = track
	m.loaded = true
	m.playing = false
	m.now = track.Start
	m.Loads++
	return nil
}

// CurrentTime implements Source
func (m *ManualSource) CurrentTime() float64 {
	return m.now
}

// IsPlaying implements Source
func (m *ManualSource) IsPlaying() bool {
	return m.loaded && m.playing
}

// Seek implements Source
func (m *ManualSource) Seek(t float64) error {
	if !m.loaded {
		return ErrNotLoaded
	}
	m.now = max(t, 0)
	return nil
}

// Play implements Source
func (m *ManualSource) Play() {
	if m.loaded {
		m.playing = true
	}
}

// Pause implements Source
func (m *ManualSource) Pause() {
	m.playing = false
}

// Stop implements Source
func (m *ManualSource) Stop() {
	m.playing = false
	m.loaded = false
}

// Track returns the loaded track
func (m *ManualSource) Track() Track {
	return m.track
}

// SetTime places the playback position directly, ignoring play state
func (m *ManualSource) SetTime(t float64) {
	m.now = t
}

// Advance moves time forward by dt seconds while playing, wrapping at the loop point
func (m *ManualSource) Advance(dt float64) {
	if !m.IsPlaying() || dt <= 0 {
		return
	}
	m.now = wrap(m.now+dt, m.track, m.Length)
}

// wrap folds t back into [start, end) once it passes the loop point
func wrap(t float64, track Track, length float64) float64 {
	end := track.End
	if end <= track.Start {
		end = length
	}
	if end <= track.Start {
		return t
	}
	span := end - track.Start
	for t >= end {
		t -= span
	}
	return t
}
