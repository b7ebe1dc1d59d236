// internal/gameloop/loop.go
package gameloop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-missile-defense/internal/config"
)

// Loop decouples simulation from presentation with a fixed-timestep
// accumulator: Frame drains whole ticks of config.TickRate seconds from
// the elapsed wall time, Render runs once per host frame. Catch-up is
// capped per frame so a long stall never triggers a death spiral.
type Loop struct {
	tickRate         float64
	maxTicksPerFrame int

	accumulator float64
	running     bool
	totalTicks  uint64

	update func(dt float64)
	render func(screen *ebiten.Image)
}

// New creates a stopped loop around the given update and render
// callbacks. Either callback may be nil.
func New(update func(dt float64), render func(screen *ebiten.Image)) *Loop {
	return &Loop{
		tickRate:         config.TickRate,
		maxTicksPerFrame: config.MaxAccumulatorTicks,
		update:           update,
		render:           render,
	}
}

// TickRate returns the fixed simulation step in seconds.
func (l *Loop) TickRate() float64 { return l.tickRate }

// IsRunning reports whether Frame currently advances the simulation.
func (l *Loop) IsRunning() bool { return l.running }

// TotalTicks returns the number of simulation ticks run since Start.
func (l *Loop) TotalTicks() uint64 { return l.totalTicks }

// Start begins consuming time. Starting an already-running loop is a
// no-op; the accumulator is cleared so paused time is not replayed.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.accumulator = 0
}

// Stop freezes the simulation. Idempotent.
func (l *Loop) Stop() {
	l.running = false
}

// Frame feeds elapsed wall-clock seconds into the accumulator and runs
// as many fixed ticks as fit, returning how many ran. A stopped loop
// consumes nothing.
func (l *Loop) Frame(elapsed float64) int {
	if !l.running || elapsed < 0 {
		return 0
	}

	l.accumulator += elapsed

	ticks := 0
	for l.accumulator >= l.tickRate {
		if ticks >= l.maxTicksPerFrame {
			// Hitting the per-frame cap means the simulation cannot keep
			// up; drop the remaining debt instead of spiraling.
			l.accumulator = 0
			break
		}
		l.accumulator -= l.tickRate
		if l.update != nil {
			l.update(l.tickRate)
		}
		l.totalTicks++
		ticks++
	}
	return ticks
}

// Alpha is the leftover accumulator as a fraction of one tick, usable
// for render interpolation.
func (l *Loop) Alpha() float64 {
	return l.accumulator / l.tickRate
}

// Render draws exactly one presentation frame.
func (l *Loop) Render(screen *ebiten.Image) {
	if l.render != nil {
		l.render(screen)
	}
}
