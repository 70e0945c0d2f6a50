package rhythm

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/beatmap"
	"github.com/lixenwraith/beat-fighter/event"
	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/song"
	"github.com/lixenwraith/beat-fighter/status"
)

// State of the clock's song lifecycle
type State int

const (
	StateIdle State = iota
	StatePlaying
)

func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "idle"
}

// Options configures a Clock
type Options struct {
	PreBeatMargin  float64
	PostBeatMargin float64

	// Status receives clock metrics, nil disables them
	Status *status.Registry
}

// DefaultOptions returns the reference judgment margins
func DefaultOptions() Options {
	return Options{
		PreBeatMargin:  parameter.PreBeatMargin,
		PostBeatMargin: parameter.PostBeatMargin,
	}
}

// Clock derives beat crossings from playback time
// Single-threaded: Update/Tick, queries and song changes must run on the frame loop
type Clock struct {
	source audio.Source
	pre    float64
	post   float64

	state        State
	song         *song.Song
	schedule     *beatmap.Schedule
	beatInterval float64

	next         int // Cursor into the schedule
	current      int // Last fired index, -1 if none
	lastObserved float64
	records      recordLog
	loops        int
	resets       uint64 // Bumped on every cursor reset; a change mid-tick ends the tick

	// OnBeat fires once per crossed beat, in index order
	OnBeat *event.Signal[Record]
	// OnNextBeatTime carries seconds from the crossing tick until the following beat
	OnNextBeatTime *event.Signal[float64]
	// OnSongChanged fires after a song has started
	OnSongChanged *event.Signal[struct{}]
	// OnLoop carries the loop count after playback wrapped to the crop start
	OnLoop *event.Signal[int]

	mBeats    *atomic.Int64
	mLoops    *atomic.Int64
	mIndex    *atomic.Int64
	mWarnings *atomic.Int64
	mInterval *status.Gauge
	mSong     *status.Label
}

// NewClock creates an idle clock polling source
func NewClock(source audio.Source, opts Options) *Clock {
	c := &Clock{
		source:         source,
		pre:            opts.PreBeatMargin,
		post:           opts.PostBeatMargin,
		current:        -1,
		beatInterval:   parameter.DefaultBeatInterval,
		OnBeat:         event.NewSignal[Record](event.EventBeat),
		OnNextBeatTime: event.NewSignal[float64](event.EventNextBeatTime),
		OnSongChanged:  event.NewSignal[struct{}](event.EventSongChanged),
		OnLoop:         event.NewSignal[int](event.EventLoop),
	}

	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	c.mBeats = reg.Counters.Get("rhythm.beats")
	c.mLoops = reg.Counters.Get("rhythm.loops")
	c.mIndex = reg.Counters.Get("rhythm.index")
	c.mWarnings = reg.Counters.Get("rhythm.warnings")
	c.mInterval = reg.Gauges.Get("rhythm.interval")
	c.mSong = reg.Labels.Get("rhythm.song")

	c.mIndex.Store(-1)
	c.mInterval.Set(c.beatInterval)
	return c
}

// StartSong stops current playback and starts s from its crop start
// A load failure leaves the clock idle
func (c *Clock) StartSong(s *song.Song) error {
	if s == nil {
		return ErrNoSong
	}

	c.Stop()

	track := audio.Track{Path: s.AudioPath, Start: s.StartTime()}
	if end, ok := s.EndTime(); ok {
		track.End = end
	}
	if err := c.source.Load(track); err != nil {
		return fmt.Errorf("start %s: %w", s.Name, err)
	}
	if err := c.source.Seek(track.Start); err != nil {
		c.source.Stop()
		return fmt.Errorf("start %s: %w", s.Name, err)
	}
	c.source.Play()

	c.song = s
	c.schedule = s.Schedule()
	c.resetCursor()
	c.lastObserved = track.Start
	c.loops = 0

	interval, ok := parameter.BeatInterval(s.BPM())
	if !ok {
		c.mWarnings.Add(1)
		log.Warn("Using default beat interval", "song", s.Name, "bpm", s.BPM(), "interval", interval, "err", ErrNoBPM)
	}
	c.beatInterval = interval
	c.mInterval.Set(interval)

	if c.schedule.Empty() {
		log.Warn("Song has no beats, judgment disabled", "song", s.Name, "err", beatmap.ErrMissingBeatmap)
	}

	c.state = StatePlaying
	c.mSong.Store(s.Name)
	log.Info("Song started", "song", s.Name, "bpm", s.BPM(), "beats", c.schedule.Len(), "start", track.Start)

	c.OnSongChanged.Emit(struct{}{})
	return nil
}

// Stop halts playback and returns the clock to idle
func (c *Clock) Stop() {
	if c.state == StateIdle && c.song == nil {
		return
	}
	c.source.Stop()
	c.state = StateIdle
	c.song = nil
	c.schedule = nil
	c.resetCursor()
	c.mSong.Store("")
}

// Update polls the time source once; call exactly once per frame
func (c *Clock) Update() {
	if c.state != StatePlaying || !c.source.IsPlaying() {
		return
	}
	c.Tick(c.source.CurrentTime())
}

// Tick advances the cursor to now, firing every beat whose pre-margin has been reached
// Repeated calls with the same time fire nothing
func (c *Clock) Tick(now float64) {
	if c.state != StatePlaying {
		return
	}

	if now < c.lastObserved-parameter.LoopEpsilon {
		c.resetCursor()
		c.loops++
		c.mLoops.Add(1)
		log.Debug("Playback looped", "song", c.song.Name, "loop", c.loops, "from", c.lastObserved, "to", now)
		gen := c.resets
		c.OnLoop.Emit(c.loops)
		if c.resets != gen {
			return
		}
	}

	// Handlers may start another song or stop the clock; the tick ends there
	gen := c.resets
	n := c.schedule.Len()
	for c.next < n && now >= c.schedule.At(c.next)-c.pre {
		rec := Record{Time: c.schedule.At(c.next), Index: c.next}
		c.current = c.next
		c.mIndex.Store(int64(c.current))
		c.mBeats.Add(1)

		c.OnBeat.Emit(rec)
		if c.resets != gen {
			return
		}
		if c.next+1 < n {
			c.OnNextBeatTime.Emit(c.schedule.At(c.next+1) - now)
			if c.resets != gen {
				return
			}
		}

		c.records.append(rec)
		c.next++
	}

	c.lastObserved = now
}

func (c *Clock) resetCursor() {
	c.resets++
	c.next = 0
	c.current = -1
	c.records.reset()
	c.mIndex.Store(-1)
}

// State returns the lifecycle state
func (c *Clock) State() State {
	return c.state
}

// Song returns the playing song, nil when idle
func (c *Clock) Song() *song.Song {
	return c.song
}

// BeatInterval returns seconds per beat for the current song
func (c *Clock) BeatInterval() float64 {
	return c.beatInterval
}

// BeatTimes returns a copy of the current song's beat times
func (c *Clock) BeatTimes() []float64 {
	return c.schedule.BeatTimes()
}

// HalfBeatTimes returns a copy of the current song's half-beat times
func (c *Clock) HalfBeatTimes() []float64 {
	return c.schedule.HalfBeatTimes()
}

// CurrentSongTime returns the playback position in asset seconds
// The crop start is applied by seeking, so this already includes it
func (c *Clock) CurrentSongTime() float64 {
	if c.state != StatePlaying {
		return 0
	}
	return c.source.CurrentTime()
}

// CurrentBeatIndex returns the last fired beat index, -1 if none since the last reset
func (c *Clock) CurrentBeatIndex() int {
	return c.current
}

// NextBeatIndex returns the cursor: the index of the next beat to fire
func (c *Clock) NextBeatIndex() int {
	return c.next
}

// Loops returns how many times the current song has wrapped
func (c *Clock) Loops() int {
	return c.loops
}

// Records returns the retained beat records, oldest first
func (c *Clock) Records() []Record {
	return c.records.slice()
}

// Margins returns the pre and post beat judgment margins
func (c *Clock) Margins() (pre, post float64) {
	return c.pre, c.post
}
