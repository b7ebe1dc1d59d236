// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/gameloop"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"
)

// GameState runs one session: input, the fixed-timestep loop and the
// HUD. Escape pauses, and the result modal takes over once the session
// ends.
type GameState struct {
	sm     *StateMachine
	game   *app.Game
	loop   *gameloop.Loop
	scores *app.HighScoreManager
	seed   int64

	waveIndicator *ui.WaveIndicator
	infoPanel     *ui.InfoPanel
	modal         *ui.ResultModal

	began bool
}

// NewGameState builds a session around the given seed. Zero seeds a
// time-based session.
func NewGameState(sm *StateMachine, seed int64, scores *app.HighScoreManager) *GameState {
	g := &GameState{
		sm:     sm,
		game:   app.NewGame(seed, scores),
		scores: scores,
		seed:   seed,
	}
	g.loop = gameloop.New(g.game.Update, g.game.Render)

	hudFace := render.NewFontFace(16)
	g.waveIndicator = ui.NewWaveIndicator(config.ScreenWidth/2, 20, render.NewFontFace(28))
	g.infoPanel = ui.NewInfoPanel(16, 16, hudFace)
	g.modal = ui.NewResultModal(render.NewFontFace(42), render.NewFontFace(18))
	return g
}

func (g *GameState) Enter() {
	if !g.began {
		g.began = true
		g.game.Begin()
	}
	g.loop.Start()
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.Conditions().IsGameOver() {
		g.loop.Stop()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sm.SetState(NewGameState(g.sm, 0, g.scores))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			g.sm.SetState(NewMenuState(g.sm, g.scores))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.HandleInput()
	g.loop.Frame(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.loop.Render(screen)

	waves := g.game.Waves()
	current := waves.GetCurrentWave()
	boss := false
	if current >= 1 && current <= len(waves.Configs()) {
		boss = waves.Configs()[current-1].HasEvent(defs.EventBossWave)
	}
	g.waveIndicator.Draw(screen, current, boss)

	conditions := g.game.Conditions()
	best := 0
	if g.scores != nil {
		best = g.scores.Best().Score
	}
	g.infoPanel.Draw(screen, ui.InfoPanelData{
		Score:           conditions.GetScore(),
		Lives:           conditions.GetLives(),
		Multiplier:      conditions.Multiplier(),
		HighScore:       best,
		SelectedDefense: g.game.SelectedDefense(),
	})

	if data, won, newBest := g.game.EndData(); data != nil {
		g.modal.Draw(screen, *data, won, newBest)
	}
}

func (g *GameState) Exit() {
	g.loop.Stop()
}
