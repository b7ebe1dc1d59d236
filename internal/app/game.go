// internal/app/game.go
package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/units"
	"go-missile-defense/internal/utils"
	"go-missile-defense/internal/wave"
)

// defenseHotkeys maps the number-row keys to placeable defense types.
var defenseHotkeys = []struct {
	Key   ebiten.Key
	DefID string
}{
	{ebiten.Key1, "DEFENSE_TURRET"},
	{ebiten.Key2, "DEFENSE_RAILGUN"},
	{ebiten.Key3, "DEFENSE_INTERCEPTOR"},
	{ebiten.Key4, "DEFENSE_FLAK"},
	{ebiten.Key5, "DEFENSE_PULSE"},
}

// targetLayout is the fixed set of protected assets for a session,
// placed along the ground line.
var targetLayout = []struct {
	DefID string
	X     float64
}{
	{"TARGET_CITY", 180},
	{"TARGET_RELAY", 420},
	{"TARGET_BUNKER", 600},
	{"TARGET_RELAY", 800},
	{"TARGET_CITY", 980},
}

// groundY is the top of the ground strip targets stand on.
const groundY = config.ScreenHeight - 80

// Game is the composition root for one session: the entity manager, wave
// manager and condition tracker share one dispatcher and one seeded RNG.
type Game struct {
	em         *entity.Manager
	waves      *wave.Manager
	conditions *GameConditions
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	scores     *HighScoreManager

	selectedDefense string
	gameTime        float64
	lastPlacement   float64

	// endData holds the Victory/Defeat payload for the result modal.
	endData      *event.GameEndData
	endWasWin    bool
	newHighScore bool
}

// NewGame builds a session from a seed. The high score manager may be
// nil; scores then simply are not persisted.
func NewGame(seed int64, scores *HighScoreManager) *Game {
	dispatcher := event.NewDispatcher()
	g := &Game{
		em:              entity.NewManager(config.SpatialCellSize),
		dispatcher:      dispatcher,
		rng:             utils.NewPRNGService(seed),
		conditions:      NewGameConditions(dispatcher),
		scores:          scores,
		selectedDefense: defenseHotkeys[0].DefID,
		// Backdated so the very first placement is never cooldown-gated.
		lastPlacement: -1,
	}
	g.waves = wave.NewManager(g.em, dispatcher, g.rng)

	dispatcher.Subscribe(event.Victory, g)
	dispatcher.Subscribe(event.Defeat, g)
	return g
}

// Dispatcher exposes the session event bus.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

// Entities exposes the entity manager.
func (g *Game) Entities() *entity.Manager { return g.em }

// Waves exposes the wave manager.
func (g *Game) Waves() *wave.Manager { return g.waves }

// Conditions exposes the score/lives tracker.
func (g *Game) Conditions() *GameConditions { return g.conditions }

// SelectedDefense returns the defense type armed for placement.
func (g *Game) SelectedDefense() string { return g.selectedDefense }

// EndData returns the end-of-game payload once the session is over, and
// whether it was a win and a new high score.
func (g *Game) EndData() (*event.GameEndData, bool, bool) {
	return g.endData, g.endWasWin, g.newHighScore
}

// Begin places the targets and starts the first wave.
func (g *Game) Begin() {
	for _, t := range targetLayout {
		target := units.NewTarget(g.em.NewID(), t.X, 0, t.DefID, g.dispatcher)
		// Stand the building on the ground line.
		target.SetPosition(t.X, groundY-target.Height)
		g.em.AddEntity(target.Entity)
	}
	g.conditions.StartGame(len(targetLayout))
	g.waves.StartWave()
	log.Printf("session started: %d targets, %d waves", len(targetLayout), len(g.waves.Configs()))
}

// Update advances the simulation by one fixed tick.
func (g *Game) Update(dt float64) {
	if g.conditions.IsGameOver() {
		return
	}
	g.gameTime += dt
	g.em.Update(dt)
	g.em.CheckCollisions()
	g.waves.Update(dt)
	g.conditions.Update(dt)
}

// HandleInput processes defense selection and placement. Runs once per
// host frame, outside the fixed-tick loop, because ebiten's just-pressed
// queries are frame-scoped.
func (g *Game) HandleInput() {
	for _, hk := range defenseHotkeys {
		if inpututil.IsKeyJustPressed(hk.Key) {
			g.selectedDefense = hk.DefID
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.PlaceDefense(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.RemoveDefenseAt(float64(x), float64(y))
	}
}

// PlaceDefense puts the armed defense type at (x, y), subject to the
// placement cooldown, playfield bounds and a clear footprint. Reports
// success.
func (g *Game) PlaceDefense(x, y float64) bool {
	if g.conditions.IsGameOver() {
		return false
	}
	cooldown := float64(config.ClickCooldown) / 1000.0
	if g.gameTime-g.lastPlacement < cooldown {
		return false
	}
	if x < config.PlayfieldMargin || x > config.ScreenWidth-config.PlayfieldMargin ||
		y < config.PlayfieldMargin || y > groundY {
		return false
	}
	if g.footprintBlocked(x, y) {
		return false
	}

	d := units.NewDefense(g.em.NewID(), x, y, g.selectedDefense, g.em, g.dispatcher)
	g.em.AddEntity(d.Entity)
	g.lastPlacement = g.gameTime
	return true
}

// footprintBlocked reports whether the armed defense, centered on (x, y),
// would overlap an existing battery or a protected target.
func (g *Game) footprintBlocked(x, y float64) bool {
	half := defs.DefenseDef(g.selectedDefense).Visuals.Radius
	overlaps := func(e *entity.Entity) bool {
		return x+half > e.Bounds.Left && x-half < e.Bounds.Right &&
			y+half > e.Bounds.Top && y-half < e.Bounds.Bottom
	}
	for _, e := range g.em.GetEntitiesByLayer(entity.LayerDefences) {
		if e.MarkedForDestruction {
			continue
		}
		// Projectiles share the layer but pass through freely.
		if _, ok := e.Behavior().(*units.Defense); !ok {
			continue
		}
		if overlaps(e) {
			return true
		}
	}
	for _, e := range g.em.GetEntitiesByLayer(entity.LayerTargets) {
		if !e.MarkedForDestruction && overlaps(e) {
			return true
		}
	}
	return false
}

// RemoveDefenseAt tears down the battery whose body contains (x, y).
// Reports whether one was removed. Batteries only; targets stay.
func (g *Game) RemoveDefenseAt(x, y float64) bool {
	if g.conditions.IsGameOver() {
		return false
	}
	for _, e := range g.em.GetEntitiesByLayer(entity.LayerDefences) {
		if e.MarkedForDestruction {
			continue
		}
		d, ok := e.Behavior().(*units.Defense)
		if !ok {
			continue
		}
		if x >= e.Bounds.Left && x <= e.Bounds.Right &&
			y >= e.Bounds.Top && y <= e.Bounds.Bottom {
			d.Destroy()
			return true
		}
	}
	return false
}

// OnEvent implements event.Listener for the end-of-game events.
func (g *Game) OnEvent(e event.Event) {
	data, ok := e.Data.(event.GameEndData)
	if !ok {
		return
	}
	g.endData = &data
	g.endWasWin = e.Type == event.Victory

	if g.scores != nil {
		improved, err := g.scores.Record(data.FinalScore, data.WaveReached)
		if err != nil {
			log.Printf("high score save failed: %v", err)
		}
		g.newHighScore = improved
	}
}

// Render draws the ground strip and all entities in layer order.
func (g *Game) Render(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, groundY, config.ScreenWidth, config.ScreenHeight-groundY, config.GroundColor, false)
	g.em.Render(screen)
}
