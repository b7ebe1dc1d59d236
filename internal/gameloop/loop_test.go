// internal/gameloop/loop_test.go
package gameloop

import (
	"testing"

	"go-missile-defense/internal/config"
)

func newCountingLoop() (*Loop, *int) {
	ticks := 0
	l := New(func(dt float64) {
		if dt != config.TickRate {
			panic("update must always receive the fixed step")
		}
		ticks++
	}, nil)
	return l, &ticks
}

func TestStoppedLoopConsumesNothing(t *testing.T) {
	l, ticks := newCountingLoop()

	if ran := l.Frame(1.0); ran != 0 || *ticks != 0 {
		t.Fatalf("a stopped loop must not tick")
	}
}

func TestFrameDrainsWholeTicks(t *testing.T) {
	l, ticks := newCountingLoop()
	l.Start()

	// The hair of extra time keeps the assertion safe from float
	// rounding in the 3x multiply.
	ran := l.Frame(config.TickRate*3 + 1e-9)
	if ran != 3 || *ticks != 3 {
		t.Fatalf("ran %d ticks (callback %d), want 3", ran, *ticks)
	}
}

func TestSubTickTimeAccumulates(t *testing.T) {
	l, ticks := newCountingLoop()
	l.Start()

	// Four quarter-ticks must add up to exactly one simulation step.
	total := 0
	for i := 0; i < 4; i++ {
		total += l.Frame(config.TickRate / 4)
	}
	if total != 1 || *ticks != 1 {
		t.Fatalf("accumulated sub-tick time produced %d ticks, want 1", total)
	}
}

func TestCatchUpTicksAreCapped(t *testing.T) {
	l, _ := newCountingLoop()
	l.Start()

	// A huge stall may only produce the capped burst of ticks.
	if ran := l.Frame(10.0); ran != config.MaxAccumulatorTicks {
		t.Fatalf("stall produced %d ticks, want the cap %d", ran, config.MaxAccumulatorTicks)
	}
	// And the debt is gone: the next normal frame is a normal frame.
	if ran := l.Frame(config.TickRate); ran != 1 {
		t.Fatalf("post-stall frame ran %d ticks, want 1", ran)
	}
}

func TestNegativeElapsedIsIgnored(t *testing.T) {
	l, ticks := newCountingLoop()
	l.Start()

	if ran := l.Frame(-1); ran != 0 || *ticks != 0 {
		t.Fatalf("negative elapsed time must be discarded")
	}
}

func TestStartStopIdempotent(t *testing.T) {
	l, _ := newCountingLoop()

	l.Start()
	l.Frame(config.TickRate / 2) // half a tick of debt
	l.Start()                    // no-op while running: debt must survive

	if got := l.Frame(config.TickRate / 2); got != 1 {
		t.Fatalf("second Start while running must not clear the accumulator")
	}

	l.Stop()
	l.Stop()
	if l.IsRunning() {
		t.Fatalf("loop still running after Stop")
	}

	// Restarting clears stale debt so paused time is not replayed.
	l.Frame(1)
	l.Start()
	if got := l.Frame(0); got != 0 {
		t.Fatalf("restart must begin with an empty accumulator, ran %d", got)
	}
}

func TestAlphaIsLeftoverFraction(t *testing.T) {
	l, _ := newCountingLoop()
	l.Start()

	l.Frame(config.TickRate * 1.5)
	alpha := l.Alpha()
	if alpha < 0.49 || alpha > 0.51 {
		t.Fatalf("alpha = %v, want ~0.5", alpha)
	}
}

func TestTotalTicksAdvances(t *testing.T) {
	l, _ := newCountingLoop()
	l.Start()

	l.Frame(config.TickRate * 2)
	l.Frame(config.TickRate)
	if l.TotalTicks() != 3 {
		t.Fatalf("total ticks = %d, want 3", l.TotalTicks())
	}
}
