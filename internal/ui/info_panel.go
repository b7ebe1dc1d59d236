// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
)

// InfoPanelData is the per-frame snapshot the panel renders.
type InfoPanelData struct {
	Score           int
	Lives           int
	Multiplier      float64
	HighScore       int
	SelectedDefense string
}

// InfoPanel draws the score/lives readout in the top-left corner and the
// armed defense type below it.
type InfoPanel struct {
	X, Y float64
	face *text.GoTextFace
}

// NewInfoPanel creates a panel anchored at (x, y).
func NewInfoPanel(x, y float64, face *text.GoTextFace) *InfoPanel {
	return &InfoPanel{X: x, Y: y, face: face}
}

// Draw renders the panel.
func (p *InfoPanel) Draw(screen *ebiten.Image, data InfoPanelData) {
	lines := []struct {
		Text  string
		Color color.Color
	}{
		{fmt.Sprintf("Score: %d", data.Score), config.TextLightColor},
		{fmt.Sprintf("Lives: %d / %d", data.Lives, config.MaxLives), p.livesColor(data.Lives)},
		{fmt.Sprintf("Multiplier: x%.1f", data.Multiplier), config.TextLightColor},
		{fmt.Sprintf("Best: %d", data.HighScore), config.TextDimColor},
		{fmt.Sprintf("Armed: %s  [1-5]", defs.DefenseDef(data.SelectedDefense).Name), config.TextDimColor},
	}

	lineHeight := p.face.Size * 1.5
	for i, line := range lines {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(p.X, p.Y+float64(i)*lineHeight)
		opts.ColorScale.ScaleWithColor(line.Color)
		text.Draw(screen, line.Text, p.face, opts)
	}
}

func (p *InfoPanel) livesColor(lives int) color.Color {
	switch {
	case lives <= 1:
		return config.HealthCritColor
	case lives < config.MaxLives:
		return config.HealthWarnColor
	}
	return config.HealthGoodColor
}
