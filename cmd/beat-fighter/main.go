package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/config"
	"github.com/lixenwraith/beat-fighter/engine"
	"github.com/lixenwraith/beat-fighter/render"
	"github.com/lixenwraith/beat-fighter/service"
	"github.com/lixenwraith/beat-fighter/song"
	"github.com/lixenwraith/beat-fighter/status"
	"github.com/lixenwraith/beat-fighter/statusweb"
)

var (
	configPath = flag.String("config", "beat-fighter.yaml", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/beat-fighter.log")
	songsFlag  = flag.String("songs", "", "Songs directory (overrides config)")
	statusFlag = flag.String("status", "", "Status server listen address, e.g. 127.0.0.1:8089")
	startFlag  = flag.Int("start", -1, "Index of the first song to play")
	muteFlag   = flag.Bool("mute", false, "Run without audio output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, flagSet("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(*debugFlag, cfg.LogLevel); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Error("Exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "beat-fighter: %v\n", err)
		os.Exit(1)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func applyFlags(cfg *config.Config) {
	if *songsFlag != "" {
		cfg.SongsDir = *songsFlag
	}
	if *statusFlag != "" {
		cfg.StatusAddr = *statusFlag
	}
	if *startFlag >= 0 {
		cfg.StartSongIndex = *startFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func run(cfg config.Config) error {
	statusSvc := status.NewService()
	audioSvc := audio.NewService()
	songSvc := song.NewService(cfg.SongsDir)
	webSvc := statusweb.NewService(statusSvc, songSvc)

	hub := service.NewHub()
	for _, reg := range []struct {
		svc  service.Service
		args []any
	}{
		{statusSvc, nil},
		{audioSvc, []any{cfg.Audio, time.Now}},
		{songSvc, nil},
		{webSvc, []any{cfg.StatusAddr}},
	} {
		if err := hub.Register(reg.svc, reg.args...); err != nil {
			return err
		}
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()
	statusSvc.Registry().Flags.Get("audio.silent").Store(audioSvc.IsDisabled())
	statusSvc.Registry().Gauges.Get("audio.volume").Set(audioSvc.Volume())
	log.Info("Services started", "order", hub.Order(), "songs", songSvc.Registry().Len(), "silent", audioSvc.IsDisabled())

	session := engine.NewSession(cfg, audioSvc.Source(), songSvc.Registry(), statusSvc.Registry())
	defer session.Close()
	session.SetSounds(audioSvc.Feedback(), cfg.Audio.Metronome)
	if err := session.Start(cfg.StartSongIndex); err != nil {
		log.Warn("No song playing", "err", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal before the stack trace prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mBEAT-FIGHTER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	hud := render.NewHUD(screen)
	loop := engine.NewLoop(session, engine.NewMonotonicTimeProvider(), cfg.FrameRate)
	loop.OnFrame = func() { hud.RenderFrame(session) }

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Input polling uses a raw goroutine; PollEvent returns nil after Fini
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				hud.Resize()
				continue
			}
			if step, ok := volumeStep(ev); ok {
				vol := audioSvc.SetVolume(audioSvc.Volume() + step)
				statusSvc.Registry().Gauges.Get("audio.volume").Set(vol)
				continue
			}
			if cmd, ok := commandFor(ev); ok && !loop.Send(cmd) {
				log.Warn("Input queue full, command dropped", "command", cmd)
			}
		}
	}()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Session ended", "frames", loop.Frames(), "loops", session.Clock.Loops())
	return nil
}
