package system

import (
	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/rhythm"
)

type leg struct {
	from, to float64
	duration float64
}

// Bobber kicks an offset out and back on each beat
// A beat arriving mid-move is ignored
type Bobber struct {
	Kick          float64
	Rebound       bool
	ReboundFactor float64
	MoveDuration  float64

	offset  float64
	legs    []leg
	elapsed float64

	sub func()
}

// NewBobber creates a bobber at rest
func NewBobber(clock *rhythm.Clock, rebound bool) *Bobber {
	b := &Bobber{
		Kick:          parameter.BobberKick,
		Rebound:       rebound,
		ReboundFactor: parameter.BobberReboundFactor,
		MoveDuration:  parameter.BobberMoveDuration,
	}
	id := clock.OnBeat.Subscribe(b.onBeat)
	b.sub = func() { clock.OnBeat.Unsubscribe(id) }
	return b
}

// Name returns system name
func (b *Bobber) Name() string {
	return "bobber"
}

func (b *Bobber) onBeat(rhythm.Record) {
	if b.Moving() {
		return
	}
	d := b.MoveDuration
	b.legs = append(b.legs[:0],
		leg{from: b.offset, to: b.Kick, duration: d},
		leg{from: b.Kick, to: 0, duration: d},
	)
	if b.Rebound {
		r := b.Kick * b.ReboundFactor
		b.legs = append(b.legs,
			leg{from: 0, to: r, duration: d / 2},
			leg{from: r, to: 0, duration: d / 2},
		)
	}
	b.elapsed = 0
}

// Update advances the move by dt, carrying leftover time into the next leg
func (b *Bobber) Update(dt float64) {
	b.elapsed += dt
	for len(b.legs) > 0 {
		l := b.legs[0]
		if b.elapsed < l.duration {
			b.offset = l.from + (l.to-l.from)*(b.elapsed/l.duration)
			return
		}
		b.elapsed -= l.duration
		b.offset = l.to
		b.legs = b.legs[1:]
	}
	b.elapsed = 0
}

// Offset returns the current displacement from rest
func (b *Bobber) Offset() float64 {
	return b.offset
}

// Moving reports whether a kick is in progress
func (b *Bobber) Moving() bool {
	return len(b.legs) > 0
}

// Close detaches from the clock
func (b *Bobber) Close() {
	if b.sub != nil {
		b.sub()
		b.sub = nil
	}
}
