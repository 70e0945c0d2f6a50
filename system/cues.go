package system

import (
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/rhythm"
)

// Cue is a crosshair arrow travelling toward one beat or half-beat
// Position is derived from playback time so cues cannot drift from the music
type Cue struct {
	Key      int // Beat index, or CueHalfBeatKeyOffset + half-beat index
	Half     bool
	BeatTime float64
	Spawn    float64 // Playback time the cue was scheduled at
	Fade     float64 // Fade-out length after arrival

	progress float64
	alpha    float64
	done     bool
}

// Progress returns the travel fraction, 1 at the crosshair
func (c *Cue) Progress() float64 {
	return c.progress
}

// Alpha returns opacity: ramps in during travel, fades out after arrival
func (c *Cue) Alpha() float64 {
	return c.alpha
}

// Arrived reports whether the cue has reached the crosshair
func (c *Cue) Arrived() bool {
	return c.progress >= 1
}

// Done reports whether the cue has fully faded
func (c *Cue) Done() bool {
	return c.done
}

func (c *Cue) advance(now float64) {
	if now < c.BeatTime {
		span := c.BeatTime - c.Spawn
		t := 1.0
		if span > 0 {
			t = clamp01((now - c.Spawn) / span)
		}
		c.progress = t
		c.alpha = t
		return
	}

	c.progress = 1
	t := 1.0
	if c.Fade > 0 {
		t = clamp01((now - c.BeatTime) / c.Fade)
	}
	c.alpha = 1 - t
	if t >= 1 {
		c.done = true
	}
}

// CueScheduler spawns crosshair cues for upcoming beats and half-beats
// Each key is scheduled once per playthrough; song change and loop discard everything
type CueScheduler struct {
	clock *rhythm.Clock

	IncludeHalfBeats bool
	LookAheadBeats   float64
	FadeOutTime      float64

	beats     []float64
	halfBeats []float64
	scheduled map[int]struct{}
	cues      []*Cue

	subs []func()
}

// NewCueScheduler creates a scheduler bound to clock
func NewCueScheduler(clock *rhythm.Clock) *CueScheduler {
	s := &CueScheduler{
		clock:            clock,
		IncludeHalfBeats: true,
		LookAheadBeats:   parameter.CueLookAheadBeats,
		FadeOutTime:      parameter.CueFadeOutTime,
		scheduled:        make(map[int]struct{}),
	}
	s.refresh()

	songID := clock.OnSongChanged.Subscribe(func(struct{}) { s.refresh() })
	loopID := clock.OnLoop.Subscribe(func(int) {
		log.Debug("Resetting cue schedule on loop")
		s.reset()
	})
	s.subs = append(s.subs,
		func() { clock.OnSongChanged.Unsubscribe(songID) },
		func() { clock.OnLoop.Unsubscribe(loopID) },
	)
	return s
}

// Name returns system name
func (s *CueScheduler) Name() string {
	return "cues"
}

// Update advances live cues and schedules new ones inside the look-ahead
func (s *CueScheduler) Update(dt float64) {
	if s.clock.State() != rhythm.StatePlaying {
		return
	}
	now := s.clock.CurrentSongTime()

	live := s.cues[:0]
	for _, c := range s.cues {
		c.advance(now)
		if !c.done {
			live = append(live, c)
		}
	}
	clear(s.cues[len(live):])
	s.cues = live

	horizon := s.clock.BeatInterval() * s.LookAheadBeats
	s.schedule(s.beats, now, horizon, false)
	if s.IncludeHalfBeats {
		s.schedule(s.halfBeats, now, horizon, true)
	}
}

func (s *CueScheduler) schedule(times []float64, now, horizon float64, half bool) {
	for i, t := range times {
		if t <= now {
			continue
		}
		if t > now+horizon {
			break
		}
		key := i
		fade := s.FadeOutTime
		if half {
			key += parameter.CueHalfBeatKeyOffset
			fade /= 2
		}
		if _, ok := s.scheduled[key]; ok {
			continue
		}
		s.scheduled[key] = struct{}{}
		c := &Cue{Key: key, Half: half, BeatTime: t, Spawn: now, Fade: fade}
		c.advance(now)
		s.cues = append(s.cues, c)
	}
}

func (s *CueScheduler) refresh() {
	s.beats = s.clock.BeatTimes()
	s.halfBeats = s.clock.HalfBeatTimes()
	s.reset()
}

func (s *CueScheduler) reset() {
	clear(s.scheduled)
	clear(s.cues)
	s.cues = s.cues[:0]
}

// Cues returns the live cues; the slice is reused across updates
func (s *CueScheduler) Cues() []*Cue {
	return s.cues
}

// Scheduled reports whether key has been scheduled this playthrough
func (s *CueScheduler) Scheduled(key int) bool {
	_, ok := s.scheduled[key]
	return ok
}

// Close detaches from the clock
func (s *CueScheduler) Close() {
	for _, unsub := range s.subs {
		unsub()
	}
	s.subs = nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
