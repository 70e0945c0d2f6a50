package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/beat-fighter/engine"
	"github.com/lixenwraith/beat-fighter/parameter"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator clears the screen, runs renderers by priority and shows the frame
type RenderOrchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an empty orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewHUD creates an orchestrator with every HUD layer registered
func NewHUD(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&LightRenderer{}, PriorityLights)
	o.Register(&CueRenderer{}, PriorityCues)
	o.Register(&CrosshairRenderer{}, PriorityCrosshair)
	o.Register(&WeaponRenderer{}, PriorityWeapon)
	o.Register(&StatusRenderer{}, PriorityUI)
	o.Register(&HelpRenderer{Visible: true}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Len returns the number of registered renderers
func (o *RenderOrchestrator) Len() int {
	return len(o.renderers)
}

// Resize syncs the screen after a terminal resize
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame draws session and shows the result
// Must be called from the goroutine that updates session
func (o *RenderOrchestrator) RenderFrame(session *engine.Session) {
	w, h := o.screen.Size()
	bg := tcell.StyleDefault.Background(RgbBackground)
	o.screen.SetStyle(bg)
	o.screen.Clear()

	if w < parameter.MinHUDWidth || h < parameter.MinHUDHeight {
		drawText(o.screen, 0, 0, "terminal too small", bg.Foreground(RgbStatusBar))
		o.screen.Show()
		return
	}

	ctx := RenderContext{
		Width:   w,
		Height:  h,
		CenterX: w / 2,
		CenterY: h / 2,
		Session: session,
	}
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}
	o.screen.Show()
}
