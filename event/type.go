package event

// Type identifies a clock notification for logging and metrics
type Type int

const (
	// EventBeat signals a beat crossing
	// Trigger: rhythm.Clock.Tick when playback passes beat time minus pre-margin
	// Consumer: LightOscillator, Bobber, metronome | Payload: rhythm.Record
	EventBeat Type = iota

	// EventNextBeatTime reports seconds until the following beat
	// Trigger: rhythm.Clock.Tick after each crossing that has a successor
	// Consumer: none built in | Payload: float64 seconds
	EventNextBeatTime

	// EventSongChanged signals a new song was started
	// Trigger: rhythm.Clock.StartSong
	// Consumer: CueScheduler, Shooter, Session | Payload: none
	EventSongChanged

	// EventLoop signals playback wrapped back to the start of the cropped window
	// Trigger: rhythm.Clock.Tick on backward time
	// Consumer: CueScheduler, Shooter | Payload: int loop count
	EventLoop

	typeCount
)

var typeNames = [typeCount]string{
	EventBeat:         "beat",
	EventNextBeatTime: "next_beat_time",
	EventSongChanged:  "song_changed",
	EventLoop:         "loop",
}

// String returns the registered name, used as log field and metric key suffix
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}
