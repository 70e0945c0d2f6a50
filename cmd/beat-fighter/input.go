package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/engine"
	"github.com/lixenwraith/beat-fighter/parameter"
)

// commandFor maps a terminal event to a loop command, ok=false for unbound input
func commandFor(ev tcell.Event) (engine.Command, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return 0, false
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.CommandQuit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch key.Rune() {
	case ' ':
		return engine.CommandShoot, true
	case 'c', 'C':
		return engine.CommandCrit, true
	case 'n', 'N':
		return engine.CommandNextSong, true
	case 'p', 'P':
		return engine.CommandPreviousSong, true
	case 'q', 'Q':
		return engine.CommandQuit, true
	}
	return 0, false
}

// volumeStep maps volume keys to a master volume delta
// Volume is handled on the input goroutine, outside the frame loop
func volumeStep(ev tcell.Event) (float64, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok || key.Key() != tcell.KeyRune {
		return 0, false
	}
	switch key.Rune() {
	case '+', '=':
		return parameter.VolumeStep, true
	case '-', '_':
		return -parameter.VolumeStep, true
	}
	return 0, false
}
