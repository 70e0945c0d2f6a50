package system

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/rhythm"
	"github.com/lixenwraith/beat-fighter/status"
)

// Shot is the outcome of one trigger pull
type Shot struct {
	Time      float64
	Judgment  rhythm.Judgment
	OnBeat    bool
	Duplicate bool // Judged on beat but that beat was already scored
	Crit      int  // Crit stacks consumed
	Damage    float64
}

// Shooter judges shots against the beat clock and feeds the combo
// A beat index scores at most one on-beat shot
type Shooter struct {
	clock *rhythm.Clock
	combo *Combo

	BaseDamage float64

	lastShotBeat int
	subs         []func()

	mOnBeat *atomic.Int64
	mMissed *atomic.Int64
}

// NewShooter creates a shooter bound to clock; reg may be nil
func NewShooter(clock *rhythm.Clock, combo *Combo, reg *status.Registry) *Shooter {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Shooter{
		clock:        clock,
		combo:        combo,
		BaseDamage:   1,
		lastShotBeat: -1,
		mOnBeat:      reg.Counters.Get("shots.on_beat"),
		mMissed:      reg.Counters.Get("shots.missed"),
	}

	// Beat indices restart on song change and loop
	songID := clock.OnSongChanged.Subscribe(func(struct{}) { s.lastShotBeat = -1 })
	loopID := clock.OnLoop.Subscribe(func(int) { s.lastShotBeat = -1 })
	s.subs = append(s.subs,
		func() { clock.OnSongChanged.Unsubscribe(songID) },
		func() { clock.OnLoop.Unsubscribe(loopID) },
	)
	return s
}

// Name returns system name
func (s *Shooter) Name() string {
	return "shooter"
}

// Shoot judges a shot at the current playback time
func (s *Shooter) Shoot() Shot {
	return s.ShootAt(s.clock.CurrentSongTime())
}

// ShootAt judges a shot fired at ts
func (s *Shooter) ShootAt(ts float64) Shot {
	crit := s.combo.ConsumeCrit()
	beat := s.clock.CurrentBeatIndex()
	j := s.clock.Judge(ts)

	shot := Shot{
		Time:     ts,
		Judgment: j,
		OnBeat:   j.OnBeat(),
		Crit:     crit,
		Damage:   s.BaseDamage * math.Pow(2, float64(crit)),
	}
	if shot.OnBeat && beat == s.lastShotBeat {
		shot.OnBeat = false
		shot.Duplicate = true
	}

	if shot.OnBeat {
		s.combo.RegisterHit()
		s.lastShotBeat = beat
		s.mOnBeat.Add(1)
	} else {
		s.combo.RegisterMiss()
		s.mMissed.Add(1)
	}

	log.Debug("Shot", "time", ts, "verdict", j.Verdict, "index", j.Index, "offset", j.Offset, "duplicate", shot.Duplicate, "crit", crit)
	return shot
}

// Close detaches from the clock
func (s *Shooter) Close() {
	for _, unsub := range s.subs {
		unsub()
	}
	s.subs = nil
}
