package system

import (
	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/rhythm"
)

// LightOscillator flips a light between min and max intensity on the beat
type LightOscillator struct {
	clock *rhythm.Clock

	Max      float64
	Min      float64
	Hold     float64 // Subtracted from the beat interval so the light settles before the next beat
	HalfTime bool    // Toggle every other beat

	intensity float64
	target    float64
	rate      float64
	beats     int
	high      bool

	sub func()
}

// NewLightOscillator creates an oscillator resting at min intensity
func NewLightOscillator(clock *rhythm.Clock, halfTime bool) *LightOscillator {
	l := &LightOscillator{
		clock:     clock,
		Max:       parameter.LightMaxIntensity,
		Min:       parameter.LightMinIntensity,
		Hold:      parameter.LightHoldOffset,
		HalfTime:  halfTime,
		intensity: parameter.LightMinIntensity,
		target:    parameter.LightMinIntensity,
	}
	id := clock.OnBeat.Subscribe(l.onBeat)
	l.sub = func() { clock.OnBeat.Unsubscribe(id) }
	return l
}

// Name returns system name
func (l *LightOscillator) Name() string {
	return "lights"
}

func (l *LightOscillator) onBeat(rhythm.Record) {
	l.beats++
	if l.HalfTime && l.beats%2 != 0 {
		return
	}

	l.high = !l.high
	l.target = l.Min
	if l.high {
		l.target = l.Max
	}

	duration := l.clock.BeatInterval()
	if l.HalfTime {
		duration *= 2
	}
	l.rate = parameter.SmoothingRateFor(duration - l.Hold)
}

// Update moves intensity toward the target
func (l *LightOscillator) Update(dt float64) {
	if l.rate == 0 {
		return
	}
	l.intensity = approach(l.intensity, l.target, l.rate, dt)
}

// Intensity returns the current light level
func (l *LightOscillator) Intensity() float64 {
	return l.intensity
}

// Target returns the level being approached
func (l *LightOscillator) Target() float64 {
	return l.target
}

// Close detaches from the clock
func (l *LightOscillator) Close() {
	if l.sub != nil {
		l.sub()
		l.sub = nil
	}
}
