// internal/units/projectile.go
package units

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/types"
)

// projectileRadius is the rendered and collision half-size of a shot.
const projectileRadius = 3.0

// ProjectileSpawn carries everything needed to fire one projectile.
type ProjectileSpawn struct {
	ID               types.EntityID
	X, Y             float64
	TargetX, TargetY float64
	Source           *Defense
}

// DefenseProjectile flies in a straight line to a fixed aim point and
// detonates there, on lifetime expiry, or on the first missile it meets.
type DefenseProjectile struct {
	*entity.Entity

	source           *Defense
	targetX, targetY float64
}

// NewDefenseProjectile fires a projectile from (x, y) toward the fixed
// aim point at the standard projectile speed.
func NewDefenseProjectile(spawn ProjectileSpawn) *DefenseProjectile {
	size := projectileRadius * 2
	e := entity.New(spawn.ID, spawn.X-projectileRadius, spawn.Y-projectileRadius, size, size, entity.LayerDefences)

	p := &DefenseProjectile{
		Entity:  e,
		source:  spawn.Source,
		targetX: spawn.TargetX,
		targetY: spawn.TargetY,
	}

	dx := spawn.TargetX - e.Bounds.CenterX
	dy := spawn.TargetY - e.Bounds.CenterY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		e.SetVelocity(dx/dist*config.ProjectileSpeed, dy/dist*config.ProjectileSpeed)
	}

	e.SetBehavior(p)
	return p
}

// OnUpdate self-destructs on proximity to the aim point or on timeout.
func (p *DefenseProjectile) OnUpdate(dt float64) {
	dx := p.targetX - p.Bounds.CenterX
	dy := p.targetY - p.Bounds.CenterY
	if math.Sqrt(dx*dx+dy*dy) <= config.ProjectileHitRadius {
		p.Destroy()
		return
	}
	if p.Age > config.ProjectileMaxLifetime {
		p.Destroy()
	}
}

// OnCollision handles interception: missiles-layer contact credits the
// source defense and spends the projectile. Contacts with any other
// layer are ignored.
func (p *DefenseProjectile) OnCollision(other *entity.Entity) {
	if other.Layer != entity.LayerMissiles {
		return
	}
	if p.source != nil {
		p.source.Hits++
		// Interception always brings the missile down (the missile's own
		// collision hook destroys it), so a hit is a kill.
		p.source.Kills++
	}
	p.Destroy()
}

func (p *DefenseProjectile) OnDestroy() {}

// OnRender draws the shot as a small bright dot.
func (p *DefenseProjectile) OnRender(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen,
		float32(p.Bounds.CenterX), float32(p.Bounds.CenterY),
		projectileRadius, config.ChargeBarColor, true)
}
