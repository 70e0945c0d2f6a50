package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/beat-fighter/parameter"
)

// Player is a Source backed by the system audio device
// One track plays at a time, looping inside its crop window
type Player struct {
	mu sync.Mutex

	cfg         Config
	deviceRate  beep.SampleRate
	initialized bool

	stream beep.StreamSeekCloser
	format beep.Format
	window *window
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// NewPlayer creates a player; the device is opened by Initialize
func NewPlayer(cfg Config) *Player {
	cfg = cfg.Normalize()
	return &Player{
		cfg:        cfg,
		deviceRate: beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize opens the output device
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.deviceRate, p.deviceRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close releases the track and the output device
func (p *Player) Close() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// Load implements Source
func (p *Player) Load(track Track) error {
	p.Stop()

	stream, format, err := Decode(track.Path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		stream.Close()
		return ErrNoDevice
	}

	w := newWindow(stream, format.SampleRate.N(seconds(track.Start)), format.SampleRate.N(seconds(track.End)), true)
	if err := w.Seek(w.start); err != nil {
		stream.Close()
		return err
	}

	var out beep.Streamer = w
	if format.SampleRate != p.deviceRate {
		out = beep.Resample(parameter.AudioResampleQuality, format.SampleRate, p.deviceRate, w)
	}

	ctrl := &beep.Ctrl{Streamer: out, Paused: true}
	volume := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
		Volume:   math.Log2(max(p.cfg.MasterVolume, 1e-6)),
		Silent:   !p.cfg.Enabled || p.cfg.MasterVolume <= 0,
	}

	p.stream, p.format, p.window, p.ctrl, p.volume = stream, format, w, ctrl, volume
	speaker.Play(volume)

	log.Debug("Track loaded", "path", track.Path, "rate", int(format.SampleRate), "length", format.SampleRate.D(stream.Len()))
	return nil
}

// CurrentTime implements Source
func (p *Player) CurrentTime() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.window == nil {
		return 0
	}
	speaker.Lock()
	pos := p.window.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

// IsPlaying implements Source
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Seek implements Source
func (p *Player) Seek(t float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.window == nil {
		return ErrNotLoaded
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.window.Seek(p.format.SampleRate.N(seconds(t)))
}

// Play implements Source
func (p *Player) Play() {
	p.setPaused(false)
}

// Pause implements Source
func (p *Player) Pause() {
	p.setPaused(true)
}

// Stop implements Source
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stream == nil {
		return
	}
	speaker.Clear()
	if err := p.stream.Close(); err != nil {
		log.Warn("Closing track failed", "err", err)
	}
	p.stream, p.window, p.ctrl, p.volume = nil, nil, nil, nil
}

// SetVolume changes master volume, 0 mutes
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg.MasterVolume = min(max(v, 0), 1)
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = math.Log2(max(p.cfg.MasterVolume, 1e-6))
	p.volume.Silent = !p.cfg.Enabled || p.cfg.MasterVolume <= 0
	speaker.Unlock()
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func seconds(t float64) time.Duration {
	return time.Duration(t * float64(time.Second))
}
