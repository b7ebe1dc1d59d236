// internal/units/missile.go
package units

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// seekRate controls how fast a SEEKING missile converges on the
// direct-to-target vector, in blend fraction per second.
const seekRate = 2.0

// slowCorrectionChance is the per-tick probability of a SLOW missile
// nudging its course back toward the target.
const slowCorrectionChance = 0.05

// TrailPoint is one past center position of a missile, consumed only by
// rendering.
type TrailPoint struct {
	X, Y float64
}

// MissileSpawn carries everything needed to launch one missile.
type MissileSpawn struct {
	ID                   types.EntityID
	X, Y                 float64
	TargetX, TargetY     float64
	DefID                string
	DifficultyMultiplier float64
	// SpeedFactor is a special-event modifier on top of the difficulty
	// multiplier. Zero means no modifier.
	SpeedFactor float64
}

// Missile is an incoming threat flying from its spawn point toward a
// fixed target point.
type Missile struct {
	*entity.Entity

	def        defs.MissileDefinition
	speed      float64 // nominal speed after wave scaling
	damage     int
	scoreValue int

	targetX, targetY float64
	dirX, dirY       float64

	trail    []TrailPoint
	maxTrail int

	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

// NewMissile launches a missile. The trajectory is computed once from
// spawn to target; the launch velocity runs 20% over nominal speed.
func NewMissile(spawn MissileSpawn, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Missile {
	def := defs.MissileDef(spawn.DefID)

	mult := spawn.DifficultyMultiplier
	if mult < 1 {
		mult = 1
	}
	speedFactor := spawn.SpeedFactor
	if speedFactor <= 0 {
		speedFactor = 1
	}

	size := def.Visuals.Radius * 2
	e := entity.New(spawn.ID, spawn.X, spawn.Y, size, size, entity.LayerMissiles)

	m := &Missile{
		Entity:     e,
		def:        def,
		speed:      def.Speed * mult * speedFactor,
		damage:     int(float64(def.Damage) * mult),
		scoreValue: def.ScoreValue,
		targetX:    spawn.TargetX,
		targetY:    spawn.TargetY,
		maxTrail:   config.MissileTrailLength,
		rng:        rng,
		dispatcher: dispatcher,
	}

	dx := spawn.TargetX - e.Bounds.CenterX
	dy := spawn.TargetY - e.Bounds.CenterY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		m.dirX = dx / dist
		m.dirY = dy / dist
	} else {
		m.dirY = 1
	}
	e.SetVelocity(
		m.dirX*m.speed*config.MissileLaunchBoost,
		m.dirY*m.speed*config.MissileLaunchBoost,
	)

	e.SetBehavior(m)
	return m
}

// DefID returns the missile's definition key.
func (m *Missile) DefID() string { return m.def.ID }

// Damage is the damage applied to a target on impact.
func (m *Missile) Damage() int { return m.damage }

// ScoreValue is the interception award for this missile type.
func (m *Missile) ScoreValue() int { return m.scoreValue }

// ThreatWeight is the type-specific targeting priority multiplier.
func (m *Missile) ThreatWeight() float64 { return m.def.ThreatWeight }

// CurrentSpeed is the magnitude of the present velocity vector.
func (m *Missile) CurrentSpeed() float64 {
	return math.Sqrt(m.VX*m.VX + m.VY*m.VY)
}

// TrailPositions exposes the trail buffer for rendering.
func (m *Missile) TrailPositions() []TrailPoint { return m.trail }

// HasReachedTarget reports whether the missile center is within the
// impact threshold of its target point.
func (m *Missile) HasReachedTarget() bool {
	dx := m.targetX - m.Bounds.CenterX
	dy := m.targetY - m.Bounds.CenterY
	return math.Sqrt(dx*dx+dy*dy) <= config.MissileImpactRadius
}

// OnUpdate steers per the movement mode, records the trail and retires
// the missile on impact, lifetime expiry or leaving the playfield.
func (m *Missile) OnUpdate(dt float64) {
	m.updateMovement(dt)

	m.trail = append(m.trail, TrailPoint{X: m.Bounds.CenterX, Y: m.Bounds.CenterY})
	if len(m.trail) > m.maxTrail {
		m.trail = m.trail[1:]
	}

	if m.HasReachedTarget() {
		if m.dispatcher != nil {
			m.dispatcher.Dispatch(event.Event{Type: event.MissileImpacted, Data: m.ID})
		}
		m.Destroy()
		return
	}
	if m.Age > config.MissileMaxLifetime {
		m.Destroy()
		return
	}
	if m.outOfPlayfield() {
		m.Destroy()
	}
}

func (m *Missile) outOfPlayfield() bool {
	const margin = config.PlayfieldMargin
	return m.Bounds.Right < -margin ||
		m.Bounds.Left > config.ScreenWidth+margin ||
		m.Bounds.Bottom < -margin ||
		m.Bounds.Top > config.ScreenHeight+margin
}

func (m *Missile) updateMovement(dt float64) {
	switch m.def.MovementType {
	case defs.MovementDirect:
		// Heading fixed at launch; magnitude may accelerate.
		if m.def.Acceleration != 1.0 {
			factor := math.Pow(m.def.Acceleration, dt)
			m.VX *= factor
			m.VY *= factor
		}

	case defs.MovementSeeking:
		dx := m.targetX - m.Bounds.CenterX
		dy := m.targetY - m.Bounds.CenterY
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > 0 {
			wantVX := dx / dist * m.speed
			wantVY := dy / dist * m.speed
			blend := seekRate * dt
			if blend > 1 {
				blend = 1
			}
			m.VX += (wantVX - m.VX) * blend
			m.VY += (wantVY - m.VY) * blend
		}

	case defs.MovementErratic:
		// Bounded jitter, then renormalized so the missile keeps its
		// nominal pace instead of random-walking to a halt.
		jitter := m.speed * 2.0 * dt
		m.VX += m.rng.Range(-jitter, jitter)
		m.VY += m.rng.Range(-jitter, jitter)
		mag := math.Sqrt(m.VX*m.VX + m.VY*m.VY)
		if mag > 0 {
			m.VX = m.VX / mag * m.speed
			m.VY = m.VY / mag * m.speed
		}

	case defs.MovementSlow:
		if m.rng.Chance(slowCorrectionChance) {
			dx := m.targetX - m.Bounds.CenterX
			dy := m.targetY - m.Bounds.CenterY
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > 0 {
				// Small correction: 20% of the way back on course.
				m.VX += (dx/dist*m.speed - m.VX) * 0.2
				m.VY += (dy/dist*m.speed - m.VY) * 0.2
			}
		}
	}
}

// OnCollision intercepts: only defences-layer contact destroys the
// missile. Targets handle their own damage in their collision hook, and
// missile-missile contact is ignored.
func (m *Missile) OnCollision(other *entity.Entity) {
	if other.Layer != entity.LayerDefences {
		return
	}
	if m.dispatcher != nil {
		m.dispatcher.Dispatch(event.Event{
			Type: event.MissileIntercepted,
			Data: event.InterceptionData{
				MissileDefID: m.def.ID,
				ScoreValue:   m.scoreValue,
			},
		})
	}
	m.Destroy()
}

func (m *Missile) OnDestroy() {}

// OnRender draws the trail, then the body.
func (m *Missile) OnRender(screen *ebiten.Image) {
	for i := 1; i < len(m.trail); i++ {
		a, b := m.trail[i-1], m.trail[i]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			1.5, config.TrailColor, true)
	}
	vector.DrawFilledCircle(screen,
		float32(m.Bounds.CenterX), float32(m.Bounds.CenterY),
		float32(m.def.Visuals.Radius), m.def.Visuals.Color, true)
}
