package audio

import "errors"

// Sentinel errors
var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNotLoaded         = errors.New("no track loaded")
	ErrNoDevice          = errors.New("audio device unavailable")
)

// Track describes what to play: an asset and the window it loops within
type Track struct {
	Path  string
	Start float64 // Loop restart point, seconds from asset start
	End   float64 // Loop point, <= Start means the end of the asset
}

// Source is the playback time source polled by the beat clock
// Times are seconds from the start of the audio asset
type Source interface {
	// Load stops current playback and prepares a track, paused at its start
	Load(track Track) error

	// CurrentTime returns the playback position
	CurrentTime() float64

	// IsPlaying reports whether the position is advancing
	IsPlaying() bool

	// Seek moves the playback position
	Seek(t float64) error

	Play()
	Pause()

	// Stop halts playback and releases the track
	Stop()
}
