package rhythm

import "errors"

var (
	// ErrNoBPM marks a song whose bpm is not positive; the default beat interval is used
	ErrNoBPM = errors.New("song has no bpm")

	// ErrNoSong is returned when starting a nil song
	ErrNoSong = errors.New("no song")
)
