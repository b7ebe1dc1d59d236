// internal/wave/manager.go
package wave

import (
	"log"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/units"
	"go-missile-defense/internal/utils"
)

// Phase is the wave state machine.
//
//	Idle → Active → Completed → Transitioning → Active | AllCompleted
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseCompleted
	PhaseTransitioning
	PhaseAllCompleted
)

// bossMissileID is spawned as the opener of every boss wave.
const bossMissileID = "MISSILE_JUGGERNAUT"

// Config is the generated parameter set for one wave.
type Config struct {
	Number               int
	MissileCount         int
	SpawnInterval        float64
	MissileTypes         []string
	DifficultyMultiplier float64
	SpecialEvents        []defs.SpecialEvent
}

// HasEvent reports whether the wave carries the given special event tag.
func (c Config) HasEvent(e defs.SpecialEvent) bool {
	for _, tag := range c.SpecialEvents {
		if tag == e {
			return true
		}
	}
	return false
}

// GenerateConfigs builds all wave configs up front with monotonic
// formulas: counts and difficulty never shrink, the spawn interval never
// grows, and the allowed type set only ever gains members (unlocks at
// waves 3, 6 and 10).
func GenerateConfigs(count int) []Config {
	configs := make([]Config, 0, count)
	for number := 1; number <= count; number++ {
		interval := config.BaseSpawnInterval - float64(number-1)*config.SpawnIntervalDecrement
		if interval < config.MinSpawnInterval {
			interval = config.MinSpawnInterval
		}

		missileTypes := []string{"MISSILE_STANDARD"}
		if number >= 3 {
			missileTypes = append(missileTypes, "MISSILE_SWIFT")
		}
		if number >= 6 {
			missileTypes = append(missileTypes, "MISSILE_HUNTER")
		}
		if number >= 10 {
			missileTypes = append(missileTypes, "MISSILE_CHAOS")
		}

		var events []defs.SpecialEvent
		if number%config.BossWaveEvery == 0 {
			events = append(events, defs.EventBossWave)
		}
		if number%4 == 0 && number%config.BossWaveEvery != 0 {
			events = append(events, defs.EventSpeedBurst)
		}
		if number >= 9 && number%3 == 0 {
			events = append(events, defs.EventMultiSpawn)
		}

		configs = append(configs, Config{
			Number:               number,
			MissileCount:         config.BaseMissileCount + (number-1)*config.MissileCountPerWave,
			SpawnInterval:        interval,
			MissileTypes:         missileTypes,
			DifficultyMultiplier: 1 + float64(number-1)*config.DifficultyPerWave,
			SpecialEvents:        events,
		})
	}
	return configs
}

// Manager generates wave configs, schedules missile spawns and walks the
// wave state machine. Spawned missiles go straight into the entity
// manager's missiles layer.
type Manager struct {
	em         *entity.Manager
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	configs []Config
	phase   Phase
	paused  bool

	currentWave     int // 1-based; 0 before the first wave
	spawnTimer      float64
	spawnedCount    int
	transitionTimer float64

	allCompletedFired bool
}

// NewManager creates a manager with configs for the full campaign.
func NewManager(em *entity.Manager, dispatcher *event.Dispatcher, rng *utils.PRNGService) *Manager {
	return &Manager{
		em:         em,
		dispatcher: dispatcher,
		rng:        rng,
		configs:    GenerateConfigs(config.WaveCount),
		phase:      PhaseIdle,
	}
}

// Configs exposes the generated wave table.
func (m *Manager) Configs() []Config { return m.configs }

// Phase returns the current state machine phase.
func (m *Manager) Phase() Phase { return m.phase }

// GetCurrentWave returns the 1-based number of the wave in progress, or
// of the last completed wave during transitions.
func (m *Manager) GetCurrentWave() int { return m.currentWave }

// SpawnedCount returns missiles spawned so far in the current wave.
func (m *Manager) SpawnedCount() int { return m.spawnedCount }

// AreAllWavesCompleted reports the terminal phase.
func (m *Manager) AreAllWavesCompleted() bool { return m.phase == PhaseAllCompleted }

// IsPaused reports whether wave progression is suspended.
func (m *Manager) IsPaused() bool { return m.paused }

// PauseWave suspends spawning and wave transitions.
func (m *Manager) PauseWave() { m.paused = true }

// ResumeWave resumes a paused manager.
func (m *Manager) ResumeWave() { m.paused = false }

// StartWave begins the next wave: resets the per-wave spawn counters and
// fires the wave-start event. Calling it past the last wave is a no-op.
func (m *Manager) StartWave() {
	if m.currentWave >= len(m.configs) {
		return
	}
	m.currentWave++
	m.spawnedCount = 0
	m.spawnTimer = 0
	m.transitionTimer = 0
	m.phase = PhaseActive
	m.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: m.currentWave})
}

// SkipToWave jumps directly to the given 1-based wave number, abandoning
// the current one. Out-of-range numbers are clamped.
func (m *Manager) SkipToWave(number int) {
	if number < 1 {
		number = 1
	}
	if number > len(m.configs) {
		number = len(m.configs)
	}
	m.currentWave = number - 1
	m.allCompletedFired = false
	m.StartWave()
}

// Update advances the wave state machine by one tick.
func (m *Manager) Update(dt float64) {
	if m.paused {
		return
	}

	switch m.phase {
	case PhaseActive:
		m.updateActive(dt)

	case PhaseCompleted:
		// One observable tick in Completed, then the transition timer.
		m.transitionTimer = config.WaveTransitionTime
		m.phase = PhaseTransitioning

	case PhaseTransitioning:
		m.transitionTimer -= dt
		if m.transitionTimer > 0 {
			return
		}
		if m.currentWave >= len(m.configs) {
			m.phase = PhaseAllCompleted
			if !m.allCompletedFired {
				m.allCompletedFired = true
				m.dispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted})
			}
			return
		}
		m.StartWave()

	case PhaseIdle, PhaseAllCompleted:
		// Nothing to schedule.
	}
}

func (m *Manager) updateActive(dt float64) {
	cfg := m.configs[m.currentWave-1]

	if m.spawnedCount < cfg.MissileCount {
		m.spawnTimer += dt
		if m.spawnTimer >= cfg.SpawnInterval {
			m.spawnTimer = 0
			m.spawnMissile(cfg)
			// multi_spawn waves occasionally launch a second missile in
			// the same slot.
			if cfg.HasEvent(defs.EventMultiSpawn) &&
				m.spawnedCount < cfg.MissileCount &&
				m.rng.Chance(config.MultiSpawnChance) {
				m.spawnMissile(cfg)
			}
		}
		return
	}

	// Everything spawned: the wave completes once the sky is clear.
	if len(m.em.GetEntitiesByLayer(entity.LayerMissiles)) == 0 {
		m.phase = PhaseCompleted
		m.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: m.currentWave})
	}
}

// spawnMissile launches one missile of a type drawn from the wave's
// allowed set at a random living target. With no living targets the
// spawn is skipped with a warning; that is a resource-absence condition,
// not an error.
func (m *Manager) spawnMissile(cfg Config) {
	target := m.pickTarget()
	if target == nil {
		log.Printf("wave %d: no targets available, skipping spawn", cfg.Number)
		return
	}

	defID := m.rng.Pick(cfg.MissileTypes)
	difficulty := cfg.DifficultyMultiplier
	speedFactor := 1.0

	if cfg.HasEvent(defs.EventBossWave) && m.spawnedCount == 0 {
		defID = bossMissileID
		difficulty += config.BossDifficultyBonus
	}
	if cfg.HasEvent(defs.EventSpeedBurst) && m.rng.Chance(config.SpeedBurstChance) {
		speedFactor = config.SpeedBurstFactor
	}

	missile := units.NewMissile(units.MissileSpawn{
		ID:                   m.em.NewID(),
		X:                    m.rng.Range(config.PlayfieldMargin, config.ScreenWidth-config.PlayfieldMargin),
		Y:                    -20,
		TargetX:              target.Bounds.CenterX,
		TargetY:              target.Bounds.CenterY,
		DefID:                defID,
		DifficultyMultiplier: difficulty,
		SpeedFactor:          speedFactor,
	}, m.rng, m.dispatcher)

	m.em.AddEntity(missile.Entity)
	m.spawnedCount++
}

// pickTarget returns a random non-destroyed target, or nil when none
// remain.
func (m *Manager) pickTarget() *entity.Entity {
	var alive []*entity.Entity
	for _, e := range m.em.GetEntitiesByLayer(entity.LayerTargets) {
		if t, ok := e.Behavior().(*units.Target); ok && !t.IsDestroyed() {
			alive = append(alive, e)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	return alive[m.rng.Intn(len(alive))]
}
