package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/engine"
	"github.com/lixenwraith/beat-fighter/parameter"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want engine.Command
		ok   bool
	}{
		{"space shoots", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.CommandShoot, true},
		{"c crits", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), engine.CommandCrit, true},
		{"n next song", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), engine.CommandNextSong, true},
		{"p previous song", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), engine.CommandPreviousSong, true},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), engine.CommandQuit, true},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.CommandQuit, true},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.CommandQuit, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
		{"resize", tcell.NewEventResize(80, 24), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected command %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVolumeStep(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want float64
		ok   bool
	}{
		{"plus raises", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), parameter.VolumeStep, true},
		{"equals raises", tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), parameter.VolumeStep, true},
		{"minus lowers", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), -parameter.VolumeStep, true},
		{"space is not volume", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), 0, false},
		{"resize", tcell.NewEventResize(80, 24), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := volumeStep(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("Expected step %v, got %v", tt.want, got)
			}
		})
	}
}
