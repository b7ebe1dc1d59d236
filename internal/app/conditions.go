// internal/app/conditions.go
package app

import (
	"log"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
)

// GamePhase is the overall session state.
type GamePhase int

const (
	GameIdle GamePhase = iota
	GameActive
	GameWon
	GameLost
)

// Defeat and victory reason tags carried in GameEndData.
const (
	ReasonLivesExhausted   = "lives_exhausted"
	ReasonTargetsDestroyed = "targets_destroyed"
	ReasonVictory          = "victory"
	ReasonPerfectVictory   = "perfect"
)

// GameConditions tracks score, lives and the win/lose state. It consumes
// combat events from the dispatcher and emits ScoreChanged, LivesChanged,
// Victory and Defeat. The end events fire at most once per session.
type GameConditions struct {
	dispatcher *event.Dispatcher

	phase      GamePhase
	score      int
	lives      int
	multiplier float64

	// scoreAccrual collects the fractional passive score between ticks.
	scoreAccrual float64

	waveReached      int
	targetsDestroyed int
	targetsTotal     int
	interceptions    int
	ended            bool
}

// NewGameConditions wires a fresh tracker into the dispatcher.
func NewGameConditions(dispatcher *event.Dispatcher) *GameConditions {
	g := &GameConditions{
		dispatcher: dispatcher,
		lives:      config.MaxLives,
		multiplier: 1.0,
	}
	for _, t := range []event.EventType{
		event.MissileIntercepted,
		event.WaveStarted,
		event.WaveCompleted,
		event.AllWavesCompleted,
		event.TargetHit,
	} {
		dispatcher.Subscribe(t, g)
	}
	return g
}

// Phase returns the session phase.
func (g *GameConditions) Phase() GamePhase { return g.phase }

// GetScore returns the current score.
func (g *GameConditions) GetScore() int { return g.score }

// GetLives returns the remaining lives.
func (g *GameConditions) GetLives() int { return g.lives }

// Multiplier returns the current score multiplier.
func (g *GameConditions) Multiplier() float64 { return g.multiplier }

// WaveReached returns the highest wave started this session.
func (g *GameConditions) WaveReached() int { return g.waveReached }

// Interceptions returns the session interception count.
func (g *GameConditions) Interceptions() int { return g.interceptions }

// IsGameOver reports a terminal phase.
func (g *GameConditions) IsGameOver() bool {
	return g.phase == GameWon || g.phase == GameLost
}

// StartGame moves Idle → Active. targetsTotal is the number of protected
// targets placed for this session, used for the perfect-victory check.
func (g *GameConditions) StartGame(targetsTotal int) {
	if g.phase != GameIdle {
		return
	}
	g.phase = GameActive
	g.targetsTotal = targetsTotal
}

// Reset returns the tracker to a fresh Idle session.
func (g *GameConditions) Reset() {
	g.phase = GameIdle
	g.score = 0
	g.scoreAccrual = 0
	g.lives = config.MaxLives
	g.multiplier = 1.0
	g.waveReached = 0
	g.targetsDestroyed = 0
	g.targetsTotal = 0
	g.interceptions = 0
	g.ended = false
}

// Update accrues passive survival score while the session is active.
func (g *GameConditions) Update(dt float64) {
	if g.phase != GameActive {
		return
	}
	g.scoreAccrual += config.ScorePerSecond * g.multiplier * dt
	if g.scoreAccrual >= 1 {
		whole := int(g.scoreAccrual)
		g.scoreAccrual -= float64(whole)
		g.SetScore(g.score + whole)
	}
}

// AddScore adds points after applying the multiplier.
func (g *GameConditions) AddScore(points int) {
	if points <= 0 {
		return
	}
	g.SetScore(g.score + int(float64(points)*g.multiplier))
}

// SetScore clamps at zero and announces the change.
func (g *GameConditions) SetScore(score int) {
	if score < 0 {
		score = 0
	}
	if score == g.score {
		return
	}
	g.score = score
	g.dispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: g.score})
}

// SetLives clamps to [0, MaxLives], announces the change, and triggers
// defeat when the pool empties.
func (g *GameConditions) SetLives(lives int) {
	if lives < 0 {
		lives = 0
	}
	if lives > config.MaxLives {
		lives = config.MaxLives
	}
	if lives == g.lives {
		return
	}
	g.lives = lives
	g.dispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: g.lives})

	if g.lives == 0 && g.phase == GameActive {
		g.declareDefeat(ReasonLivesExhausted)
	}
}

// raiseMultiplier steps the multiplier up to its cap.
func (g *GameConditions) raiseMultiplier() {
	g.multiplier += config.WaveMultiplierStep
	if g.multiplier > config.MultiplierMax {
		g.multiplier = config.MultiplierMax
	}
}

// OnEvent implements event.Listener.
func (g *GameConditions) OnEvent(e event.Event) {
	if g.phase != GameActive {
		return
	}

	switch e.Type {
	case event.WaveStarted:
		if n, ok := e.Data.(int); ok && n > g.waveReached {
			g.waveReached = n
		}

	case event.MissileIntercepted:
		g.interceptions++
		if data, ok := e.Data.(event.InterceptionData); ok {
			g.AddScore(data.ScoreValue)
		}

	case event.WaveCompleted:
		g.AddScore(config.WaveCompletionBonus)
		g.raiseMultiplier()

	case event.TargetHit:
		data, ok := e.Data.(event.TargetHitData)
		if !ok {
			return
		}
		if data.DestroyedTarget {
			g.targetsDestroyed++
		}
		// Every hit on a protected target costs one life, destroying or not.
		g.SetLives(g.lives - 1)
		if g.phase == GameActive && g.targetsTotal > 0 && g.targetsDestroyed >= g.targetsTotal {
			g.declareDefeat(ReasonTargetsDestroyed)
		}

	case event.AllWavesCompleted:
		g.declareVictory()
	}
}

// declareVictory ends the session in GameWon. A run with every target
// still standing earns the perfect bonus; surviving with losses earns
// the smaller one. Defeat already declared wins the race.
func (g *GameConditions) declareVictory() {
	if g.ended {
		return
	}
	g.ended = true
	g.phase = GameWon

	reason := ReasonVictory
	bonus := config.PartialVictoryBonus
	if g.targetsDestroyed == 0 {
		reason = ReasonPerfectVictory
		bonus = config.PerfectVictoryBonus
	}
	g.SetScore(g.score + int(float64(g.score)*bonus))

	log.Printf("victory (%s): score=%d wave=%d", reason, g.score, g.waveReached)
	g.dispatcher.Dispatch(event.Event{
		Type: event.Victory,
		Data: event.GameEndData{
			Reason:      reason,
			FinalScore:  g.score,
			WaveReached: g.waveReached,
		},
	})
}

func (g *GameConditions) declareDefeat(reason string) {
	if g.ended {
		return
	}
	g.ended = true
	g.phase = GameLost

	log.Printf("defeat (%s): score=%d wave=%d", reason, g.score, g.waveReached)
	g.dispatcher.Dispatch(event.Event{
		Type: event.Defeat,
		Data: event.GameEndData{
			Reason:      reason,
			FinalScore:  g.score,
			WaveReached: g.waveReached,
		},
	})
}
