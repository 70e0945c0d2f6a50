package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/rhythm"
	"github.com/lixenwraith/beat-fighter/system"
)

var baseStyle = tcell.StyleDefault.Background(RgbBackground)

// StatusRenderer draws the song title row, the combo meter and the last verdict
type StatusRenderer struct{}

func (r *StatusRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	s := ctx.Session
	clock := s.Clock
	title := baseStyle.Foreground(RgbStatusBar).Bold(true)
	label := baseStyle.Foreground(RgbDim)

	if cur := clock.Song(); cur != nil && clock.State() == rhythm.StatePlaying {
		x := drawText(screen, 1, 0, cur.Name, title)
		x = drawText(screen, x+2, 0, fmt.Sprintf("%.1f bpm", cur.BPM()), label)
		x = drawText(screen, x+2, 0, fmt.Sprintf("%d/%d", s.Songs.IndexOf(cur)+1, s.Songs.Len()), label)
		drawText(screen, x+2, 0, fmt.Sprintf("t=%.2f beat=%d loop=%d",
			clock.CurrentSongTime(), clock.CurrentBeatIndex(), clock.Loops()), label)
	} else {
		drawText(screen, 1, 0, clock.State().String(), label)
	}

	combo := s.Combo
	x := drawText(screen, 1, 1, fmt.Sprintf("x%d ", combo.Level()), title)
	drawBar(screen, x, 1, parameter.ComboBarWidth, combo.Progress(),
		baseStyle.Foreground(RgbComboFill), baseStyle.Foreground(RgbComboEmpty))
	x += parameter.ComboBarWidth + 1
	x = drawText(screen, x, 1, fmt.Sprintf("streak %d ", combo.Streak()), label)
	crit := baseStyle.Foreground(RgbCrit)
	x = drawText(screen, x, 1, strings.Repeat("◆", combo.CritStacks()), crit)
	if combo.ResetPending() {
		drawText(screen, x+1, 1, "!", crit)
	}

	shot, ok := s.LastShot()
	if !ok {
		return
	}
	text := shot.Judgment.Verdict.String()
	if shot.Judgment.Index >= 0 {
		text = fmt.Sprintf("%s %+.0fms", text, shot.Judgment.Offset*1000)
	}
	if shot.Duplicate {
		text += " (repeat)"
	}
	if shot.Crit > 0 {
		text += fmt.Sprintf(" crit x%d", shot.Crit)
	}
	style := baseStyle.Foreground(VerdictColor(shot.Judgment.Verdict))
	drawText(screen, ctx.CenterX-len(text)/2, ctx.CenterY+2, text, style)
}

// CueRenderer draws arrows converging on the crosshair from both sides
// Half-beat cues are drawn first with a lighter glyph so beat cues win shared cells
type CueRenderer struct{}

func (r *CueRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	cues := ctx.Session.Cues.Cues()
	for _, half := range []bool{true, false} {
		for _, cue := range cues {
			if cue.Half == half && !cue.Done() {
				drawCue(ctx, screen, cue)
			}
		}
	}
}

func drawCue(ctx RenderContext, screen tcell.Screen, cue *system.Cue) {
	dist := int(math.Round((1 - cue.Progress()) * parameter.CueTravelCells))
	if dist == 0 {
		// Arrived cues flash on the crosshair ring
		dist = 1
	}

	color := RgbCueBeat
	left, right := '>', '<'
	if cue.Half {
		color = RgbCueHalf
		left, right = '›', '‹'
	}
	style := baseStyle.Foreground(Blend(RgbBackground, color, cue.Alpha()))
	screen.SetContent(ctx.CenterX-dist-1, ctx.CenterY, left, nil, style)
	screen.SetContent(ctx.CenterX+dist+1, ctx.CenterY, right, nil, style)
}

// CrosshairRenderer draws the reticle, lit while inside the on-beat window
type CrosshairRenderer struct{}

func (r *CrosshairRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	color := RgbCrosshair
	if ctx.Session.Clock.IsOnBeatNow() {
		color = RgbVerdictOnBeat
	}
	style := baseStyle.Foreground(color)
	screen.SetContent(ctx.CenterX-1, ctx.CenterY, '[', nil, style)
	screen.SetContent(ctx.CenterX, ctx.CenterY, '+', nil, style.Bold(true))
	screen.SetContent(ctx.CenterX+1, ctx.CenterY, ']', nil, style)
}

// LightRenderer draws the beat light meter under the title rows
type LightRenderer struct{}

func (r *LightRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	lights := ctx.Session.Lights
	span := parameter.LightMaxIntensity - parameter.LightMinIntensity
	level := (lights.Intensity() - parameter.LightMinIntensity) / span

	color := Blend(RgbLightLow, RgbLightHigh, level)
	x := ctx.CenterX - parameter.LightBarWidth/2
	drawBar(screen, x, 3, parameter.LightBarWidth, level,
		baseStyle.Foreground(color), baseStyle.Foreground(RgbLightLow))
}

// WeaponRenderer draws the weapon glyph shifted by the bobber offset
type WeaponRenderer struct{}

var weaponGlyph = []string{
	"  ||  ",
	" /##\\ ",
	"/####\\",
}

func (r *WeaponRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	lift := int(math.Round(ctx.Session.Bobber.Offset() * parameter.BobberCells))
	top := ctx.Height - parameter.WeaponRow - lift
	style := baseStyle.Foreground(RgbWeapon)
	x := ctx.CenterX - len(weaponGlyph[0])/2
	for i, line := range weaponGlyph {
		y := top + i
		if y < 0 || y >= ctx.Height-1 {
			continue
		}
		drawText(screen, x, y, line, style)
	}
}

// HelpRenderer draws the key help footer
type HelpRenderer struct {
	Visible bool
}

func (r *HelpRenderer) IsVisible() bool {
	return r.Visible
}

func (r *HelpRenderer) Render(ctx RenderContext, screen tcell.Screen) {
	drawText(screen, 1, ctx.Height-1, "space shoot  c crit  n/p song  +/- vol  q quit", baseStyle.Foreground(RgbDim))
}
