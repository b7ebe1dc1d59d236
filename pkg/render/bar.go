// pkg/render/bar.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var barBackground = color.RGBA{0, 0, 0, 150}

// Bar draws a horizontal progress bar with frac in [0,1] filled in fg.
// Used for target health, defense charge and energy indicators.
func Bar(dst *ebiten.Image, x, y, width, height float32, frac float64, fg color.Color) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(dst, x, y, width, height, barBackground, false)
	if frac > 0 {
		vector.DrawFilledRect(dst, x, y, width*float32(frac), height, fg, false)
	}
}
