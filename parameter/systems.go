package parameter

// Combo Multiplier
const (
	ComboResetTime     = 10.0 // Seconds of inactivity after a miss before full reset
	MaxComboLevel      = 10
	ShotsPerComboLevel = 4
	MaxCritStacks      = 3
	CritCostPerStack   = 1
)

// Crosshair Cues
const (
	// CueLookAheadBeats is the scheduling horizon in beat intervals
	CueLookAheadBeats = 2.0

	// CueFadeOutTime is the fade after a cue reaches the crosshair, halved for half-beats
	CueFadeOutTime = 0.5

	// CueHalfBeatKeyOffset separates half-beat keys from beat keys in the scheduled set
	CueHalfBeatKeyOffset = 100000
)

// Beat Lights
const (
	LightMaxIntensity = 5.0
	LightMinIntensity = 0.0
	LightHoldOffset   = 0.05 // Seconds the target is held before the next downbeat
)

// Beat Bobber
const (
	BobberKick          = 1.0
	BobberReboundFactor = 0.3
	BobberMoveDuration  = 0.1 // Seconds per leg of the move
)

// SmoothingRateFor returns the exponential rate that covers ~95% of a step in duration seconds
func SmoothingRateFor(duration float64) float64 {
	if duration <= 0 {
		return 1e6
	}
	return 3.0 / duration
}
