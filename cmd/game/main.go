// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "simulation RNG seed; 0 uses the clock")
	balance := flag.String("balance", "", "optional YAML balance override file")
	skipMenu := flag.Bool("skip-menu", false, "start straight into a session")
	flag.Parse()

	if *balance != "" {
		if err := defs.LoadBalance(*balance); err != nil {
			log.Fatalf("balance file: %v", err)
		}
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: "missile-defense"})
	if err != nil {
		// Persistence is optional; the session runs without it.
		log.Printf("save storage unavailable: %v", err)
		gdataManager = nil
	}
	scores := app.NewHighScoreManager(gdataManager)

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, *seed, scores))
	} else {
		sm.SetState(state.NewMenuState(sm, scores))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Missile Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
