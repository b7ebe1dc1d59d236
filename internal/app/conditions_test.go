// internal/app/conditions_test.go
package app

import (
	"testing"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newConditions(t *testing.T, targets int) (*GameConditions, *event.Dispatcher, *recorder) {
	t.Helper()
	d := event.NewDispatcher()
	r := &recorder{}
	for _, typ := range []event.EventType{event.ScoreChanged, event.LivesChanged, event.Victory, event.Defeat} {
		d.Subscribe(typ, r)
	}
	g := NewGameConditions(d)
	g.StartGame(targets)
	return g, d, r
}

func destroyTarget(d *event.Dispatcher) {
	d.Dispatch(event.Event{Type: event.TargetHit, Data: event.TargetHitData{
		TargetDefID: "TARGET_CITY", Damage: 100, DestroyedTarget: true,
	}})
}

func TestInterceptionAwardsScore(t *testing.T) {
	g, d, r := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{
		MissileDefID: "MISSILE_STANDARD", ScoreValue: 50,
	}})

	if g.GetScore() != 50 {
		t.Fatalf("score = %d, want 50", g.GetScore())
	}
	if g.Interceptions() != 1 {
		t.Fatalf("interceptions = %d, want 1", g.Interceptions())
	}
	if len(r.ofType(event.ScoreChanged)) != 1 {
		t.Fatalf("ScoreChanged must announce the new score")
	}
}

func TestWaveCompletionBonusAndMultiplier(t *testing.T) {
	g, d, _ := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.WaveCompleted, Data: 1})

	if g.GetScore() != config.WaveCompletionBonus {
		t.Fatalf("score = %d, want the wave bonus %d", g.GetScore(), config.WaveCompletionBonus)
	}
	wantMult := 1.0 + config.WaveMultiplierStep
	if g.Multiplier() != wantMult {
		t.Fatalf("multiplier = %v, want %v", g.Multiplier(), wantMult)
	}

	// Later awards run through the raised multiplier.
	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 100}})
	want := config.WaveCompletionBonus + int(100*wantMult)
	if g.GetScore() != want {
		t.Fatalf("score = %d, want %d after multiplied interception", g.GetScore(), want)
	}
}

func TestMultiplierIsCapped(t *testing.T) {
	g, d, _ := newConditions(t, 3)

	for i := 0; i < 100; i++ {
		d.Dispatch(event.Event{Type: event.WaveCompleted, Data: i + 1})
	}
	if g.Multiplier() != config.MultiplierMax {
		t.Fatalf("multiplier = %v, want cap %v", g.Multiplier(), config.MultiplierMax)
	}
}

func TestEveryTargetHitCostsALife(t *testing.T) {
	g, d, r := newConditions(t, 5)

	destroyTarget(d)

	if g.GetLives() != config.MaxLives-1 {
		t.Fatalf("lives = %d, want %d", g.GetLives(), config.MaxLives-1)
	}
	if len(r.ofType(event.LivesChanged)) != 1 {
		t.Fatalf("LivesChanged must announce the new count")
	}

	// A glancing hit that leaves the target standing costs a life too.
	d.Dispatch(event.Event{Type: event.TargetHit, Data: event.TargetHitData{Damage: 10}})
	if g.GetLives() != config.MaxLives-2 {
		t.Fatalf("lives = %d, want %d after a non-destroying hit", g.GetLives(), config.MaxLives-2)
	}
	if len(r.ofType(event.LivesChanged)) != 2 {
		t.Fatalf("every hit must announce the new count")
	}
}

func TestGlancingHitsExhaustLives(t *testing.T) {
	g, d, r := newConditions(t, 5)

	for i := 0; i < config.MaxLives; i++ {
		d.Dispatch(event.Event{Type: event.TargetHit, Data: event.TargetHitData{Damage: 10}})
	}

	if g.Phase() != GameLost {
		t.Fatalf("phase = %v, want lost after %d hits", g.Phase(), config.MaxLives)
	}
	defeats := r.ofType(event.Defeat)
	if len(defeats) != 1 {
		t.Fatalf("Defeat fired %d times, want 1", len(defeats))
	}
	if data := defeats[0].Data.(event.GameEndData); data.Reason != ReasonLivesExhausted {
		t.Fatalf("reason = %q, want %q", data.Reason, ReasonLivesExhausted)
	}
}

func TestDefeatOnExhaustedLives(t *testing.T) {
	g, d, r := newConditions(t, 5)

	for i := 0; i < config.MaxLives; i++ {
		destroyTarget(d)
	}

	if g.Phase() != GameLost {
		t.Fatalf("phase = %v, want lost", g.Phase())
	}
	defeats := r.ofType(event.Defeat)
	if len(defeats) != 1 {
		t.Fatalf("Defeat fired %d times, want 1", len(defeats))
	}
	if data := defeats[0].Data.(event.GameEndData); data.Reason != ReasonLivesExhausted {
		t.Fatalf("reason = %q, want %q", data.Reason, ReasonLivesExhausted)
	}

	// Terminal state ignores further play events.
	destroyTarget(d)
	if len(r.ofType(event.Defeat)) != 1 {
		t.Fatalf("defeat must fire only once")
	}
}

func TestDefeatWhenEveryTargetFalls(t *testing.T) {
	g, d, r := newConditions(t, 2)

	destroyTarget(d)
	destroyTarget(d)

	if g.Phase() != GameLost {
		t.Fatalf("losing every target must end the game")
	}
	defeats := r.ofType(event.Defeat)
	if len(defeats) != 1 {
		t.Fatalf("Defeat fired %d times, want 1", len(defeats))
	}
	if data := defeats[0].Data.(event.GameEndData); data.Reason != ReasonTargetsDestroyed {
		t.Fatalf("reason = %q, want %q", data.Reason, ReasonTargetsDestroyed)
	}
}

func TestPerfectVictoryBonus(t *testing.T) {
	g, d, r := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 1000}})
	d.Dispatch(event.Event{Type: event.AllWavesCompleted})

	if g.Phase() != GameWon {
		t.Fatalf("phase = %v, want won", g.Phase())
	}
	want := 1000 + int(1000*config.PerfectVictoryBonus)
	if g.GetScore() != want {
		t.Fatalf("score = %d, want %d with the perfect bonus", g.GetScore(), want)
	}

	wins := r.ofType(event.Victory)
	if len(wins) != 1 {
		t.Fatalf("Victory fired %d times, want 1", len(wins))
	}
	data := wins[0].Data.(event.GameEndData)
	if data.Reason != ReasonPerfectVictory || data.FinalScore != want {
		t.Fatalf("wrong victory payload: %+v", data)
	}
}

func TestPerfectVictoryOnlyNeedsTargetsStanding(t *testing.T) {
	g, d, r := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 1000}})
	// A glancing hit spends a life but leaves every target standing.
	d.Dispatch(event.Event{Type: event.TargetHit, Data: event.TargetHitData{Damage: 10}})
	d.Dispatch(event.Event{Type: event.AllWavesCompleted})

	if g.GetLives() != config.MaxLives-1 {
		t.Fatalf("lives = %d, want %d", g.GetLives(), config.MaxLives-1)
	}
	if data := r.ofType(event.Victory)[0].Data.(event.GameEndData); data.Reason != ReasonPerfectVictory {
		t.Fatalf("reason = %q, want %q when all targets survive", data.Reason, ReasonPerfectVictory)
	}
}

func TestPyrrhicVictoryBonus(t *testing.T) {
	g, d, r := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 1000}})
	destroyTarget(d) // survives, but not unscathed
	d.Dispatch(event.Event{Type: event.AllWavesCompleted})

	if g.Phase() != GameWon {
		t.Fatalf("surviving with losses is still a victory")
	}
	want := 1000 + int(1000*config.PartialVictoryBonus)
	if g.GetScore() != want {
		t.Fatalf("score = %d, want %d with the partial bonus", g.GetScore(), want)
	}
	if data := r.ofType(event.Victory)[0].Data.(event.GameEndData); data.Reason != ReasonVictory {
		t.Fatalf("reason = %q, want %q", data.Reason, ReasonVictory)
	}
}

func TestPassiveScoreAccrual(t *testing.T) {
	g, _, _ := newConditions(t, 3)

	// Ten seconds at the base multiplier.
	for i := 0; i < 10; i++ {
		g.Update(1.0)
	}
	want := int(config.ScorePerSecond * 10)
	if g.GetScore() != want {
		t.Fatalf("score = %d, want %d from passive accrual", g.GetScore(), want)
	}
}

func TestNoAccrualBeforeStartOrAfterEnd(t *testing.T) {
	d := event.NewDispatcher()
	g := NewGameConditions(d)

	g.Update(10)
	if g.GetScore() != 0 {
		t.Fatalf("idle sessions must not accrue score")
	}

	g.StartGame(1)
	destroyTarget(d)
	g.Update(10)
	if g.Phase() != GameLost {
		t.Fatalf("expected defeat")
	}
	if g.GetScore() != 0 {
		t.Fatalf("finished sessions must not accrue score")
	}
}

func TestWaveReachedTracksHighestStart(t *testing.T) {
	g, d, _ := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.WaveStarted, Data: 1})
	d.Dispatch(event.Event{Type: event.WaveStarted, Data: 2})

	if g.WaveReached() != 2 {
		t.Fatalf("wave reached = %d, want 2", g.WaveReached())
	}
}

func TestResetReturnsToIdleDefaults(t *testing.T) {
	g, d, _ := newConditions(t, 3)

	d.Dispatch(event.Event{Type: event.MissileIntercepted, Data: event.InterceptionData{ScoreValue: 100}})
	destroyTarget(d)
	g.Reset()

	if g.Phase() != GameIdle || g.GetScore() != 0 || g.GetLives() != config.MaxLives || g.Multiplier() != 1.0 {
		t.Fatalf("reset left state behind: %+v", g)
	}
}
