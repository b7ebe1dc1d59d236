// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-missile-defense/internal/config"
)

// WaveIndicator shows the current wave number in roman numerals at a
// fixed screen position.
type WaveIndicator struct {
	X, Y float64
	face *text.GoTextFace
}

// NewWaveIndicator creates an indicator centered horizontally on x.
func NewWaveIndicator(x, y float64, face *text.GoTextFace) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, face: face}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the wave number; boss waves show in the boss color.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, boss bool) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	var textColor color.Color = config.UIColorBlue
	if boss {
		textColor = config.BossWaveColor
	}

	w, _ := text.Measure(label, i.face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(i.X-w/2, i.Y)
	opts.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, label, i.face, opts)
}
