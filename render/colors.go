package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/rhythm"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbDim        = tcell.NewRGBColor(110, 110, 130) // Muted gray for labels and help
	RgbCrosshair  = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbCueBeat = tcell.NewRGBColor(140, 190, 255) // Bright blue
	RgbCueHalf = tcell.NewRGBColor(60, 100, 200)  // Dark blue

	RgbLightLow  = tcell.NewRGBColor(60, 40, 0)    // Very dark orange
	RgbLightHigh = tcell.NewRGBColor(255, 220, 80) // Warm yellow

	RgbComboFill  = tcell.NewRGBColor(0, 200, 0)   // Normal green
	RgbComboEmpty = tcell.NewRGBColor(0, 40, 0)    // Very dark green
	RgbCrit       = tcell.NewRGBColor(255, 80, 80) // Normal red
	RgbWeapon     = tcell.NewRGBColor(180, 180, 180)

	RgbVerdictOnBeat   = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbVerdictEarly    = tcell.NewRGBColor(100, 150, 255) // Normal blue
	RgbVerdictLate     = tcell.NewRGBColor(255, 120, 120) // Bright red
	RgbVerdictInactive = tcell.NewRGBColor(110, 110, 130)
)

// VerdictColor maps a judgment verdict to its HUD color
func VerdictColor(v rhythm.Verdict) tcell.Color {
	switch v {
	case rhythm.VerdictOnBeat:
		return RgbVerdictOnBeat
	case rhythm.VerdictEarly:
		return RgbVerdictEarly
	case rhythm.VerdictLate:
		return RgbVerdictLate
	default:
		return RgbVerdictInactive
	}
}

// Blend linearly interpolates from a to b, t clamped to [0,1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab := a.RGB()
	br, bg, bb := b.RGB()
	mix := func(x, y int32) int32 {
		return x + int32(float64(y-x)*t)
	}
	return tcell.NewRGBColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
