package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

// AudioService owns the playback source for the session
// Falls back to a silent wall-clock source when no audio backend is available
type AudioService struct {
	cfg      Config
	player   *Player
	source   Source
	feedback *Feedback
	disabled atomic.Bool

	volMu  sync.Mutex
	master float64
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{cfg: DefaultConfig()}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: Config - output settings (default: DefaultConfig)
// args[1]: func() time.Time - wall clock for the silent fallback (default: time.Now)
// Device failure sets the disabled flag, no error returned
func (s *AudioService) Init(args ...any) error {
	var now func() time.Time
	if len(args) > 0 {
		if cfg, ok := args[0].(Config); ok {
			s.cfg = cfg.Normalize()
		}
	}
	if len(args) > 1 {
		if fn, ok := args[1].(func() time.Time); ok {
			now = fn
		}
	}

	s.master = s.cfg.MasterVolume

	if !s.cfg.Enabled {
		s.disabled.Store(true)
		s.source = NewSilentSource(now)
		s.feedback = NewFeedback(beep.SampleRate(s.cfg.SampleRate), s.cfg.EffectsVolume*s.master, false)
		log.Info("Audio output disabled by configuration")
		return nil
	}

	player := NewPlayer(s.cfg)
	if err := player.Initialize(); err != nil {
		s.disabled.Store(true)
		s.source = NewSilentSource(now)
		s.feedback = NewFeedback(beep.SampleRate(s.cfg.SampleRate), s.cfg.EffectsVolume*s.master, false)
		log.Warn("Audio device unavailable, running silent", "err", err)
		return nil
	}
	s.player = player
	s.source = player
	s.feedback = NewFeedback(player.deviceRate, s.cfg.EffectsVolume*s.master, true)
	return nil
}

// Start implements Service
func (s *AudioService) Start() error {
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.player != nil {
		s.player.Close()
		return nil
	}
	if s.source != nil {
		s.source.Stop()
	}
	return nil
}

// IsDisabled returns true if audio output is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Source returns the active playback source, nil before Init
func (s *AudioService) Source() Source {
	return s.source
}

// Player returns the device player, nil if disabled
func (s *AudioService) Player() *Player {
	if s.disabled.Load() {
		return nil
	}
	return s.player
}

// Feedback returns the effect sound player, counting only when disabled
func (s *AudioService) Feedback() *Feedback {
	return s.feedback
}

// Volume returns the master volume in [0, 1]
func (s *AudioService) Volume() float64 {
	s.volMu.Lock()
	defer s.volMu.Unlock()
	return s.master
}

// SetVolume sets the master volume, clamped to [0, 1]
// Feedback sounds follow at their configured share of the master
// Safe to call from the input goroutine
func (s *AudioService) SetVolume(v float64) float64 {
	s.volMu.Lock()
	defer s.volMu.Unlock()

	s.master = min(max(v, 0), 1)
	if s.player != nil {
		s.player.SetVolume(s.master)
	}
	if s.feedback != nil {
		s.feedback.SetVolume(s.cfg.EffectsVolume * s.master)
	}
	log.Debug("Volume changed", "master", s.master)
	return s.master
}
