// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
)

// MenuState is the title screen.
type MenuState struct {
	sm     *StateMachine
	scores *app.HighScoreManager

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

func NewMenuState(sm *StateMachine, scores *app.HighScoreManager) *MenuState {
	return &MenuState{
		sm:        sm,
		scores:    scores,
		titleFace: render.NewFontFace(48),
		bodyFace:  render.NewFontFace(20),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, 0, m.scores))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerX := float64(config.ScreenWidth) / 2
	m.drawCentered(screen, "MISSILE DEFENSE", m.titleFace, centerX, config.ScreenHeight/2-120)

	lines := []string{
		"Press Space to start",
		"1-5 selects a battery type, click to place",
	}
	if m.scores != nil && m.scores.Best().Score > 0 {
		best := m.scores.Best()
		lines = append(lines, fmt.Sprintf("Best: %d (wave %d)", best.Score, best.Wave))
	}

	y := float64(config.ScreenHeight)/2 - 20
	for _, line := range lines {
		m.drawCentered(screen, line, m.bodyFace, centerX, y)
		y += m.bodyFace.Size * 1.8
	}
}

func (m *MenuState) drawCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64) {
	w, _ := text.Measure(s, face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(cx-w/2, y)
	opts.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, s, face, opts)
}

func (m *MenuState) Exit() {}
