// internal/app/game_test.go
package app

import (
	"testing"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
)

func TestBeginPlacesTargetsAndStartsWaveOne(t *testing.T) {
	g := NewGame(1, nil)
	g.Begin()
	g.Update(config.TickRate)

	targets := g.Entities().GetEntitiesByLayer(entity.LayerTargets)
	if len(targets) != len(targetLayout) {
		t.Fatalf("placed %d targets, want %d", len(targets), len(targetLayout))
	}
	if g.Waves().GetCurrentWave() != 1 {
		t.Fatalf("wave = %d, want 1 after begin", g.Waves().GetCurrentWave())
	}
	if g.Conditions().Phase() != GameActive {
		t.Fatalf("session must be active after begin")
	}
}

func TestPlaceDefenseRespectsBoundsAndCooldown(t *testing.T) {
	g := NewGame(1, nil)
	g.Begin()
	g.Update(config.TickRate)

	if g.PlaceDefense(10, 10) {
		t.Fatalf("placement outside the playfield margin must fail")
	}
	if !g.PlaceDefense(600, 400) {
		t.Fatalf("in-bounds placement must succeed")
	}
	if g.PlaceDefense(700, 400) {
		t.Fatalf("a second placement inside the click cooldown must fail")
	}

	// Advance past the cooldown.
	for i := 0; i < 30; i++ {
		g.Update(config.TickRate)
	}
	if !g.PlaceDefense(700, 400) {
		t.Fatalf("placement must work again after the cooldown")
	}

	g.Update(config.TickRate)
	defences := g.Entities().GetEntitiesByLayer(entity.LayerDefences)
	if len(defences) != 2 {
		t.Fatalf("defences layer has %d entities, want 2", len(defences))
	}
}

func TestPlaceDefenseRejectsOverlap(t *testing.T) {
	g := NewGame(1, nil)
	g.Begin()
	g.Update(config.TickRate)

	if !g.PlaceDefense(600, 400) {
		t.Fatalf("first placement must succeed")
	}
	for i := 0; i < 30; i++ {
		g.Update(config.TickRate)
	}

	if g.PlaceDefense(600, 400) {
		t.Fatalf("placement on top of an existing battery must fail")
	}
	// Targets block too: (200, 700) lands on the first city.
	if g.PlaceDefense(200, 700) {
		t.Fatalf("placement on a protected target must fail")
	}
	if !g.PlaceDefense(900, 400) {
		t.Fatalf("placement on clear ground must still work")
	}
}

func TestRemoveDefenseAt(t *testing.T) {
	g := NewGame(1, nil)
	g.Begin()
	g.Update(config.TickRate)

	g.PlaceDefense(600, 400)
	g.Update(config.TickRate)

	if !g.RemoveDefenseAt(600, 400) {
		t.Fatalf("click on the battery body must remove it")
	}
	g.Update(config.TickRate)
	if n := len(g.Entities().GetEntitiesByLayer(entity.LayerDefences)); n != 0 {
		t.Fatalf("defences layer has %d entities after removal, want 0", n)
	}
	if g.RemoveDefenseAt(600, 400) {
		t.Fatalf("empty ground must report nothing removed")
	}
}

func TestGameOverStopsSimulationAndPlacement(t *testing.T) {
	g := NewGame(1, nil)
	g.Begin()
	g.Update(config.TickRate)

	// Force a defeat through the event bus.
	for i := 0; i < config.MaxLives; i++ {
		g.Dispatcher().Dispatch(event.Event{Type: event.TargetHit, Data: event.TargetHitData{
			Damage: 100, DestroyedTarget: true,
		}})
	}

	if !g.Conditions().IsGameOver() {
		t.Fatalf("expected game over")
	}
	if g.PlaceDefense(600, 400) {
		t.Fatalf("placement after game over must fail")
	}

	data, won, _ := g.EndData()
	if data == nil || won {
		t.Fatalf("defeat payload must be captured for the modal")
	}
	if data.Reason != ReasonLivesExhausted {
		t.Fatalf("reason = %q, want %q", data.Reason, ReasonLivesExhausted)
	}
}

func TestVictoryRecordsHighScore(t *testing.T) {
	scores := NewHighScoreManager(nil)
	g := NewGame(1, scores)
	g.Begin()
	g.Update(config.TickRate)

	g.Dispatcher().Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 500}})
	g.Dispatcher().Dispatch(event.Event{Type: event.AllWavesCompleted})

	data, won, newBest := g.EndData()
	if data == nil || !won || !newBest {
		t.Fatalf("victory must be captured as a new best: data=%v won=%v best=%v", data, won, newBest)
	}
	if scores.Best().Score != data.FinalScore {
		t.Fatalf("best = %d, want the final score %d", scores.Best().Score, data.FinalScore)
	}
}
