package song

import "errors"

// Sentinel errors
var (
	ErrEmptyRegistry = errors.New("no songs available")
	ErrIndexRange    = errors.New("song index out of range")
	ErrNoName        = errors.New("song name is required")
	ErrNoAudio       = errors.New("song audio file not found")
)
