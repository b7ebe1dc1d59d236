// internal/wave/manager_test.go
package wave

import (
	"testing"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/units"
	"go-missile-defense/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestManager(t *testing.T, withTarget bool) (*Manager, *entity.Manager, *recorder) {
	t.Helper()
	em := entity.NewManager(config.SpatialCellSize)
	d := event.NewDispatcher()
	r := &recorder{}
	for _, typ := range []event.EventType{event.WaveStarted, event.WaveCompleted, event.AllWavesCompleted} {
		d.Subscribe(typ, r)
	}
	wm := NewManager(em, d, utils.NewPRNGService(42))

	if withTarget {
		target := units.NewTarget(em.NewID(), 400, 600, "TARGET_CITY", d)
		em.AddEntity(target.Entity)
		em.Update(0)
	}
	return wm, em, r
}

func TestGenerateConfigsMonotonicity(t *testing.T) {
	configs := GenerateConfigs(config.WaveCount)
	if len(configs) != config.WaveCount {
		t.Fatalf("generated %d configs, want %d", len(configs), config.WaveCount)
	}

	for i := 1; i < len(configs); i++ {
		prev, cur := configs[i-1], configs[i]
		if cur.MissileCount < prev.MissileCount {
			t.Fatalf("wave %d missile count dropped: %d -> %d", cur.Number, prev.MissileCount, cur.MissileCount)
		}
		if cur.SpawnInterval > prev.SpawnInterval {
			t.Fatalf("wave %d spawn interval grew: %v -> %v", cur.Number, prev.SpawnInterval, cur.SpawnInterval)
		}
		if cur.DifficultyMultiplier < prev.DifficultyMultiplier {
			t.Fatalf("wave %d difficulty dropped", cur.Number)
		}
		if len(cur.MissileTypes) < len(prev.MissileTypes) {
			t.Fatalf("wave %d lost missile types", cur.Number)
		}
	}

	for _, cfg := range configs {
		if cfg.SpawnInterval < config.MinSpawnInterval {
			t.Fatalf("wave %d interval %v below floor", cfg.Number, cfg.SpawnInterval)
		}
	}
}

func TestGenerateConfigsUnlockSchedule(t *testing.T) {
	configs := GenerateConfigs(config.WaveCount)

	has := func(cfg Config, id string) bool {
		for _, mt := range cfg.MissileTypes {
			if mt == id {
				return true
			}
		}
		return false
	}

	if len(configs[0].MissileTypes) != 1 || !has(configs[0], "MISSILE_STANDARD") {
		t.Fatalf("wave 1 must offer only the standard missile")
	}
	if has(configs[1], "MISSILE_SWIFT") || !has(configs[2], "MISSILE_SWIFT") {
		t.Fatalf("swift must unlock exactly at wave 3")
	}
	if has(configs[4], "MISSILE_HUNTER") || !has(configs[5], "MISSILE_HUNTER") {
		t.Fatalf("hunter must unlock exactly at wave 6")
	}
	if has(configs[8], "MISSILE_CHAOS") || !has(configs[9], "MISSILE_CHAOS") {
		t.Fatalf("chaos must unlock exactly at wave 10")
	}
}

func TestGenerateConfigsBossWaves(t *testing.T) {
	configs := GenerateConfigs(config.WaveCount)
	for _, cfg := range configs {
		boss := cfg.Number%config.BossWaveEvery == 0
		if cfg.HasEvent(defs.EventBossWave) != boss {
			t.Fatalf("wave %d boss flag wrong", cfg.Number)
		}
	}
}

func TestStartWaveDispatchesAndActivates(t *testing.T) {
	wm, _, r := newTestManager(t, true)

	wm.StartWave()

	if wm.Phase() != PhaseActive || wm.GetCurrentWave() != 1 {
		t.Fatalf("phase=%v wave=%d after start", wm.Phase(), wm.GetCurrentWave())
	}
	if r.count(event.WaveStarted) != 1 {
		t.Fatalf("WaveStarted fired %d times", r.count(event.WaveStarted))
	}
}

func TestSpawningHonorsIntervalAndCount(t *testing.T) {
	wm, em, _ := newTestManager(t, true)
	wm.StartWave()
	cfg := wm.Configs()[0]

	// A partial interval spawns nothing.
	wm.Update(cfg.SpawnInterval / 2)
	if wm.SpawnedCount() != 0 {
		t.Fatalf("spawned before the interval elapsed")
	}

	for i := 0; i < cfg.MissileCount*3; i++ {
		wm.Update(cfg.SpawnInterval)
		em.Update(0)
	}
	if wm.SpawnedCount() != cfg.MissileCount {
		t.Fatalf("spawned %d, want exactly %d", wm.SpawnedCount(), cfg.MissileCount)
	}
	if got := len(em.GetEntitiesByLayer(entity.LayerMissiles)); got != cfg.MissileCount {
		t.Fatalf("missiles layer has %d entities, want %d", got, cfg.MissileCount)
	}
}

func TestNoTargetsSkipsSpawning(t *testing.T) {
	wm, em, _ := newTestManager(t, false)
	wm.StartWave()
	cfg := wm.Configs()[0]

	wm.Update(cfg.SpawnInterval)
	wm.Update(cfg.SpawnInterval)

	if wm.SpawnedCount() != 0 {
		t.Fatalf("spawning must be skipped with no living targets")
	}
	em.Update(0)
	if len(em.GetEntitiesByLayer(entity.LayerMissiles)) != 0 {
		t.Fatalf("no missiles may exist without targets")
	}
}

// drainWave spawns everything, then clears the sky so the wave completes.
func drainWave(t *testing.T, wm *Manager, em *entity.Manager) {
	t.Helper()
	cfg := wm.Configs()[wm.GetCurrentWave()-1]
	for i := 0; i < cfg.MissileCount*4 && wm.SpawnedCount() < cfg.MissileCount; i++ {
		wm.Update(cfg.SpawnInterval)
		em.Update(0)
	}
	if wm.SpawnedCount() < cfg.MissileCount {
		t.Fatalf("wave %d never finished spawning", cfg.Number)
	}
	for _, e := range em.GetEntitiesByLayer(entity.LayerMissiles) {
		e.Destroy()
	}
	em.Update(0)
}

func TestWaveCompletionAndTransition(t *testing.T) {
	wm, em, r := newTestManager(t, true)
	wm.StartWave()

	drainWave(t, wm, em)

	wm.Update(0)
	if wm.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want Completed once spawns are done and sky is clear", wm.Phase())
	}
	if r.count(event.WaveCompleted) != 1 {
		t.Fatalf("WaveCompleted fired %d times", r.count(event.WaveCompleted))
	}

	wm.Update(0)
	if wm.Phase() != PhaseTransitioning {
		t.Fatalf("phase = %v, want Transitioning", wm.Phase())
	}

	// The next wave auto-starts only after the full transition delay.
	wm.Update(config.WaveTransitionTime / 2)
	if wm.Phase() != PhaseTransitioning {
		t.Fatalf("transition ended early")
	}
	wm.Update(config.WaveTransitionTime)
	if wm.Phase() != PhaseActive || wm.GetCurrentWave() != 2 {
		t.Fatalf("phase=%v wave=%d, want wave 2 active", wm.Phase(), wm.GetCurrentWave())
	}
}

func TestAllWavesCompletedFiresOnce(t *testing.T) {
	wm, em, r := newTestManager(t, true)
	wm.SkipToWave(config.WaveCount)

	drainWave(t, wm, em)

	wm.Update(0)                             // Active -> Completed
	wm.Update(0)                             // Completed -> Transitioning
	wm.Update(config.WaveTransitionTime + 1) // Transitioning -> AllCompleted

	if !wm.AreAllWavesCompleted() {
		t.Fatalf("phase = %v, want AllCompleted after the last wave", wm.Phase())
	}
	if r.count(event.AllWavesCompleted) != 1 {
		t.Fatalf("AllWavesCompleted fired %d times", r.count(event.AllWavesCompleted))
	}

	wm.Update(1)
	if r.count(event.AllWavesCompleted) != 1 {
		t.Fatalf("terminal phase must not refire the completion event")
	}
}

func TestSkipToWaveClamps(t *testing.T) {
	wm, _, _ := newTestManager(t, true)

	wm.SkipToWave(999)
	if wm.GetCurrentWave() != config.WaveCount {
		t.Fatalf("skip past the end must clamp to the last wave")
	}

	wm.SkipToWave(-3)
	if wm.GetCurrentWave() != 1 {
		t.Fatalf("skip below one must clamp to the first wave")
	}
}

func TestPauseFreezesSpawning(t *testing.T) {
	wm, _, _ := newTestManager(t, true)
	wm.StartWave()
	cfg := wm.Configs()[0]

	wm.PauseWave()
	wm.Update(cfg.SpawnInterval * 3)
	if wm.SpawnedCount() != 0 {
		t.Fatalf("paused manager must not spawn")
	}

	wm.ResumeWave()
	wm.Update(cfg.SpawnInterval)
	if wm.SpawnedCount() == 0 {
		t.Fatalf("resume must restore spawning")
	}
}
