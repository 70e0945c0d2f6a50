package parameter

// HUD Layout
const (
	// CueTravelCells is the horizontal distance a cue arrow covers before reaching the crosshair
	CueTravelCells = 24

	// LightBarWidth is the cell width of the beat light meter at full intensity
	LightBarWidth = 20

	// ComboBarWidth is the cell width of the combo progress bar
	ComboBarWidth = 16

	// WeaponRow is the weapon glyph row counted up from the bottom of the screen
	WeaponRow = 4

	// BobberCells converts one unit of bob offset into rows
	BobberCells = 2

	// MinHUDWidth and MinHUDHeight are the smallest screen the HUD draws into
	MinHUDWidth  = 40
	MinHUDHeight = 12
)
