package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// drawBar fills width cells, the first fraction of them with full and the rest with empty
func drawBar(screen tcell.Screen, x, y, width int, fraction float64, full, empty tcell.Style) {
	filled := int(math.Round(clamp01(fraction) * float64(width)))
	for i := range width {
		if i < filled {
			screen.SetContent(x+i, y, '█', nil, full)
		} else {
			screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
