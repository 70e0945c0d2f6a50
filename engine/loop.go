package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/parameter"
)

// Command is a player action forwarded from the input goroutine
type Command int

const (
	CommandShoot Command = iota
	CommandCrit
	CommandNextSong
	CommandPreviousSong
	CommandQuit
)

var commandNames = [...]string{"shoot", "crit", "next_song", "previous_song", "quit"}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Loop drives a Session at a fixed frame rate
// Commands arrive over a channel so the session stays single-threaded
type Loop struct {
	session  *Session
	time     TimeProvider
	interval time.Duration
	commands chan Command

	// OnFrame runs after each update, typically to render
	OnFrame func()

	last   time.Time
	frames int64
}

// NewLoop creates a loop ticking frameRate times per second
func NewLoop(session *Session, tp TimeProvider, frameRate int) *Loop {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	interval := parameter.FrameUpdateInterval
	if frameRate > 0 {
		interval = time.Second / time.Duration(frameRate)
	}
	return &Loop{
		session:  session,
		time:     tp,
		interval: interval,
		commands: make(chan Command, parameter.InputQueueSize),
	}
}

// Send queues a command without blocking; full queues drop it
func (l *Loop) Send(cmd Command) bool {
	select {
	case l.commands <- cmd:
		return true
	default:
		return false
	}
}

// Run ticks until ctx is done or a quit command arrives
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.last = l.time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-l.commands:
			if !l.Handle(cmd) {
				return nil
			}
		case <-ticker.C:
			l.Frame()
		}
	}
}

// Frame runs one update using wall time elapsed since the previous frame
// Long stalls are clamped so smoothing does not jump
func (l *Loop) Frame() {
	now := l.time.Now()
	if l.last.IsZero() {
		l.last = now
	}
	dt := min(now.Sub(l.last), parameter.MaxFrameDelta)
	l.last = now

	l.session.Update(dt.Seconds())
	l.frames++

	if l.OnFrame != nil {
		l.OnFrame()
	}
}

// Handle applies one command, returning false on quit
func (l *Loop) Handle(cmd Command) bool {
	switch cmd {
	case CommandShoot:
		l.session.Shoot()
	case CommandCrit:
		if !l.session.UseCrit() {
			log.Debug("Crit unavailable", "level", l.session.Combo.Level(), "stacks", l.session.Combo.CritStacks())
		}
	case CommandNextSong:
		if err := l.session.NextSong(); err != nil {
			log.Error("Next song failed", "err", err)
		}
	case CommandPreviousSong:
		if err := l.session.PreviousSong(); err != nil {
			log.Error("Previous song failed", "err", err)
		}
	case CommandQuit:
		return false
	}
	return true
}

// Frames returns how many frames have run
func (l *Loop) Frames() int64 {
	return l.frames
}
