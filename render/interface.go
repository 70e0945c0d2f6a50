package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/engine"
)

// RenderContext carries per-frame layout and the session being drawn
type RenderContext struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
	Session *engine.Session
}

// SystemRenderer draws one layer of the HUD
type SystemRenderer interface {
	Render(ctx RenderContext, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
