package parameter

import "time"

// Audio Output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines device latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioResampleQuality is passed to beep.Resample for songs at foreign rates
	AudioResampleQuality = 4

	DefaultMasterVolume  = 0.8
	DefaultEffectsVolume = 0.5

	// VolumeStep is the master volume change per key press
	VolumeStep = 0.1
)

// Song Storage
const (
	DefaultSongsDir = "SavedSongs"
	SongFileExt     = ".json"
	SongFilePerm    = 0o644
	SongDirPerm     = 0o755
)
