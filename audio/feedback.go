package audio

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SoundType identifies a synthesized feedback sound
type SoundType int

const (
	SoundHit SoundType = iota
	SoundMiss
	SoundCrit
	SoundTick

	soundTypeCount
)

var soundNames = [...]string{"hit", "miss", "crit", "tick"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// partial is one enveloped oscillator inside a sound
type partial struct {
	wave     WaveType
	freq     float64
	offset   time.Duration // Start relative to the sound
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

var recipes = [soundTypeCount][]partial{
	// A5 bell with a shorter A6 overtone
	SoundHit: {
		{wave: WaveSine, freq: 880, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 220 * time.Millisecond, gain: 0.7},
		{wave: WaveSine, freq: 1760, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 100 * time.Millisecond, gain: 0.3},
	},
	// Low saw buzz
	SoundMiss: {
		{wave: WaveSaw, freq: 100, duration: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 20 * time.Millisecond, gain: 0.6},
	},
	// Two-note coin, B5 then E6
	SoundCrit: {
		{wave: WaveSquare, freq: 987.77, duration: 80 * time.Millisecond, attack: 2 * time.Millisecond, release: 20 * time.Millisecond, gain: 0.4},
		{wave: WaveSquare, freq: 1318.51, offset: 80 * time.Millisecond, duration: 280 * time.Millisecond, attack: 2 * time.Millisecond, release: 240 * time.Millisecond, gain: 0.4},
	},
	// Short noise click
	SoundTick: {
		{wave: WaveNoise, duration: 15 * time.Millisecond, attack: time.Millisecond, release: 12 * time.Millisecond, gain: 0.3},
	},
}

type partialState struct {
	partial
	start, attack, release, total int
	phase                         float64
}

// voice renders the partials of one sound as a finite stereo stream
type voice struct {
	rate     beep.SampleRate
	parts    []partialState
	position int
	length   int
}

func newVoice(parts []partial, rate beep.SampleRate) *voice {
	v := &voice{rate: rate, parts: make([]partialState, len(parts))}
	for i, p := range parts {
		ps := partialState{
			partial: p,
			start:   rate.N(p.offset),
			attack:  rate.N(p.attack),
			release: rate.N(p.release),
			total:   rate.N(p.duration),
		}
		v.parts[i] = ps
		v.length = max(v.length, ps.start+ps.total)
	}
	return v
}

// Len returns the sound length in samples
func (v *voice) Len() int {
	return v.length
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.position >= v.length {
			return i, i > 0
		}
		var val float64
		for j := range v.parts {
			val += v.parts[j].sample(v.position, v.rate)
		}
		samples[i][0] = val
		samples[i][1] = val
		v.position++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// sample returns the partial's value at absolute sample pos, 0 outside its span
func (p *partialState) sample(pos int, rate beep.SampleRate) float64 {
	local := pos - p.start
	if local < 0 || local >= p.total {
		return 0
	}

	var val float64
	switch p.wave {
	case WaveSine:
		val = math.Sin(2 * math.Pi * p.phase)
	case WaveSquare:
		val = 1
		if p.phase >= 0.5 {
			val = -1
		}
	case WaveSaw:
		val = 2 * (p.phase - 0.5)
	case WaveNoise:
		val = rand.Float64()*2 - 1
	}
	p.phase += p.freq / float64(rate)
	p.phase -= math.Floor(p.phase)

	env := 1.0
	if local < p.attack && p.attack > 0 {
		env = float64(local) / float64(p.attack)
	}
	if releaseStart := p.total - p.release; local >= releaseStart && p.release > 0 {
		env = min(env, float64(p.total-local)/float64(p.release))
	}
	return val * env * p.gain
}

// Feedback plays short synthesized sounds over the song
// Without a device it only counts plays
type Feedback struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	output bool

	played [soundTypeCount]atomic.Int64
}

// NewFeedback creates a feedback player; output requires an initialized speaker
func NewFeedback(rate beep.SampleRate, volume float64, output bool) *Feedback {
	return &Feedback{rate: rate, volume: volume, output: output}
}

// Play starts st immediately, mixed with whatever the speaker is playing
func (f *Feedback) Play(st SoundType) {
	if st < 0 || st >= soundTypeCount {
		return
	}
	f.played[st].Add(1)

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.output || f.volume <= 0 {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: newVoice(recipes[st], f.rate),
		Base:     2,
		Volume:   math.Log2(f.volume),
	})
}

// SetVolume changes the volume of sounds started afterwards
func (f *Feedback) SetVolume(volume float64) {
	f.mu.Lock()
	f.volume = min(max(volume, 0), 1)
	f.mu.Unlock()
}

// Played returns how many times st was requested
func (f *Feedback) Played(st SoundType) int64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return f.played[st].Load()
}
