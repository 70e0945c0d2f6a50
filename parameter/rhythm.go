package parameter

// Beat Judgment Windows
const (
	// PreBeatMargin is the leniency before a beat (seconds)
	// Also the lead used to fire beat crossings ahead of the actual beat
	PreBeatMargin = 0.18

	// PostBeatMargin is the leniency after a beat (seconds)
	PostBeatMargin = 0.14
)

// Beat Clock
const (
	// DefaultBeatInterval substitutes 60/bpm when a song has no usable BPM
	DefaultBeatInterval = 0.5

	// LoopEpsilon is the backward time step tolerated before a loop is assumed
	LoopEpsilon = 1e-4

	// BeatRecordRetention bounds the fired-beat log; judgment reads the last two
	BeatRecordRetention = 16
)

// BeatInterval converts BPM to seconds per beat, ok=false when bpm is unusable
func BeatInterval(bpm float64) (float64, bool) {
	if bpm <= 0 {
		return DefaultBeatInterval, false
	}
	return 60.0 / bpm, true
}
