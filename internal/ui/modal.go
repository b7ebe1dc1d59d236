// internal/ui/modal.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
)

// ResultModal is the end-of-game overlay: dimmed playfield, the outcome
// title and the final numbers.
type ResultModal struct {
	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// NewResultModal creates the modal with its two faces.
func NewResultModal(titleFace, bodyFace *text.GoTextFace) *ResultModal {
	return &ResultModal{titleFace: titleFace, bodyFace: bodyFace}
}

// Draw renders the overlay for the given end-of-game payload.
func (m *ResultModal) Draw(screen *ebiten.Image, data event.GameEndData, won, newHighScore bool) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.ModalDimColor, false)

	title := "DEFEAT"
	var titleColor color.Color = config.HealthCritColor
	if won {
		title = "VICTORY"
		titleColor = config.HealthGoodColor
	}

	centerX := float64(config.ScreenWidth) / 2
	y := float64(config.ScreenHeight)/2 - 80

	m.drawCentered(screen, title, m.titleFace, centerX, y, titleColor)
	y += m.titleFace.Size * 2

	lines := []string{
		fmt.Sprintf("Final score: %d", data.FinalScore),
		fmt.Sprintf("Wave reached: %d", data.WaveReached),
	}
	if newHighScore {
		lines = append(lines, "New high score!")
	}
	lines = append(lines, "Press R to play again, Q for menu")

	for _, line := range lines {
		m.drawCentered(screen, line, m.bodyFace, centerX, y, config.TextLightColor)
		y += m.bodyFace.Size * 1.6
	}
}

func (m *ResultModal) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(cx-w/2, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, opts)
}
