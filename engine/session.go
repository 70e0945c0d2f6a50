package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/config"
	"github.com/lixenwraith/beat-fighter/rhythm"
	"github.com/lixenwraith/beat-fighter/song"
	"github.com/lixenwraith/beat-fighter/status"
	"github.com/lixenwraith/beat-fighter/system"
)

// System is a beat consumer updated once per frame after the clock
type System interface {
	Name() string
	Update(dt float64)
}

// SoundPlayer plays short feedback sounds
type SoundPlayer interface {
	Play(audio.SoundType)
}

// Session owns the beat clock and every consumer wired to it
// All methods must be called from the frame loop goroutine
type Session struct {
	Clock   *rhythm.Clock
	Songs   *song.Registry
	Combo   *system.Combo
	Shooter *system.Shooter
	Cues    *system.CueScheduler
	Lights  *system.LightOscillator
	Bobber  *system.Bobber

	systems []System
	closers []func()

	sounds   SoundPlayer
	lastShot system.Shot
	shots    int
}

// NewSession builds the clock over src and subscribes the consumers in update order
func NewSession(cfg config.Config, src audio.Source, songs *song.Registry, reg *status.Registry) *Session {
	if reg == nil {
		reg = status.NewRegistry()
	}

	clock := rhythm.NewClock(src, rhythm.Options{
		PreBeatMargin:  cfg.PreBeatMargin,
		PostBeatMargin: cfg.PostBeatMargin,
		Status:         reg,
	})

	combo := system.NewCombo(cfg.Combo, reg)
	cues := system.NewCueScheduler(clock)
	cues.IncludeHalfBeats = cfg.Cues.HalfBeats
	cues.LookAheadBeats = cfg.Cues.LookAheadBeats
	cues.FadeOutTime = cfg.Cues.FadeOutTime

	s := &Session{
		Clock:   clock,
		Songs:   songs,
		Combo:   combo,
		Shooter: system.NewShooter(clock, combo, reg),
		Cues:    cues,
		Lights:  system.NewLightOscillator(clock, false),
		Bobber:  system.NewBobber(clock, true),
	}
	s.systems = []System{s.Combo, s.Cues, s.Lights, s.Bobber}
	s.closers = []func(){s.Shooter.Close, s.Cues.Close, s.Lights.Close, s.Bobber.Close}

	clock.OnSongChanged.Subscribe(func(struct{}) {
		songs.SetCurrent(clock.Song())
	})
	return s
}

// Start plays the song at index, clamped into the library
// Songs whose audio fails to load are skipped in order
func (s *Session) Start(index int) error {
	first, err := s.Songs.Start(index)
	if err != nil {
		return err
	}
	return s.play(first, s.Songs.Next)
}

// NextSong switches to the following song, wrapping at the end
func (s *Session) NextSong() error {
	next, err := s.Songs.Next(s.Songs.Current())
	if err != nil {
		return err
	}
	return s.play(next, s.Songs.Next)
}

// PreviousSong switches to the preceding song, wrapping at the start
func (s *Session) PreviousSong() error {
	prev, err := s.Songs.Previous(s.Songs.Current())
	if err != nil {
		return err
	}
	return s.play(prev, s.Songs.Previous)
}

// play starts candidate, stepping with advance past songs that fail to load
func (s *Session) play(candidate *song.Song, advance func(*song.Song) (*song.Song, error)) error {
	var errs []error
	for range s.Songs.Len() {
		err := s.Clock.StartSong(candidate)
		if err == nil {
			return nil
		}
		log.Error("Song failed to start", "song", candidate.Name, "err", err)
		errs = append(errs, err)

		if candidate, err = advance(candidate); err != nil {
			errs = append(errs, err)
			break
		}
	}
	return fmt.Errorf("no playable song: %w", errors.Join(errs...))
}

// SetSounds routes shot feedback to p, ticking on every beat when metronome is set
// Call once before Start
func (s *Session) SetSounds(p SoundPlayer, metronome bool) {
	s.sounds = p
	if p == nil || !metronome {
		return
	}
	id := s.Clock.OnBeat.Subscribe(func(rhythm.Record) { p.Play(audio.SoundTick) })
	log.Debug("Metronome attached", "signal", s.Clock.OnBeat.Type())
	s.closers = append(s.closers, func() { s.Clock.OnBeat.Unsubscribe(id) })
}

// Shoot fires at the current playback time
func (s *Session) Shoot() system.Shot {
	s.lastShot = s.Shooter.Shoot()
	s.shots++
	if s.sounds != nil {
		if st, ok := shotSound(s.lastShot); ok {
			s.sounds.Play(st)
		}
	}
	return s.lastShot
}

// shotSound picks feedback for a shot; inactive shots are silent
func shotSound(shot system.Shot) (audio.SoundType, bool) {
	switch {
	case shot.Judgment.Verdict == rhythm.VerdictInactive:
		return 0, false
	case shot.OnBeat && shot.Crit > 0:
		return audio.SoundCrit, true
	case shot.OnBeat:
		return audio.SoundHit, true
	default:
		return audio.SoundMiss, true
	}
}

// UseCrit buys a crit stack for the next shot
func (s *Session) UseCrit() bool {
	return s.Combo.UseCrit()
}

// LastShot returns the most recent shot, ok=false before the first
func (s *Session) LastShot() (system.Shot, bool) {
	return s.lastShot, s.shots > 0
}

// Update polls the clock once, then advances every consumer by dt seconds
func (s *Session) Update(dt float64) {
	s.Clock.Update()
	for _, sys := range s.systems {
		sys.Update(dt)
	}
}

// Close stops playback and detaches consumers
func (s *Session) Close() {
	for _, c := range s.closers {
		c()
	}
	s.closers = nil
	s.Clock.Stop()
}
