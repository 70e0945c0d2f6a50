package parameter

import "time"

// Game Loop Timing
const (
	// DefaultFrameRate is the target frames per second of the session loop
	DefaultFrameRate = 60

	// FrameUpdateInterval is the frame interval at DefaultFrameRate
	FrameUpdateInterval = time.Second / DefaultFrameRate

	// MaxFrameDelta clamps the simulation delta after stalls (debugger, suspend)
	MaxFrameDelta = 250 * time.Millisecond

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "beat-fighter.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Status Server
const (
	StatusShutdownTimeout = 2 * time.Second
)
