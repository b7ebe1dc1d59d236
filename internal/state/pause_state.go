// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
)

// PauseState freezes a running session and draws it dimmed underneath.
// Resuming returns to the exact GameState it came from; the simulation
// loop discards the paused wall time.
type PauseState struct {
	sm    *StateMachine
	under *GameState
	face  *text.GoTextFace
}

func NewPauseState(sm *StateMachine, under *GameState) *PauseState {
	return &PauseState{
		sm:    sm,
		under: under,
		face:  render.NewFontFace(32),
	}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.sm.SetState(p.under)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	p.under.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseStateColor, false)

	label := "PAUSED"
	w, _ := text.Measure(label, p.face, 0)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(config.ScreenWidth)/2-w/2, float64(config.ScreenHeight)/2-p.face.Size)
	opts.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, label, p.face, opts)
}

func (p *PauseState) Exit() {}
