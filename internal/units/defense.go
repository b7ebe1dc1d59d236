// internal/units/defense.go
package units

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/pkg/render"
)

// FireState is the per-defense firing state machine.
type FireState int

const (
	FireIdle FireState = iota
	FireCharging
)

// speedThreatFactor converts missile speed into threat-score points.
const speedThreatFactor = 0.5

// multipleTargetCount is how many missiles a MULTIPLE-mode defense
// engages per volley.
const multipleTargetCount = 3

// Candidate is one in-range missile with its precomputed selection keys.
type Candidate struct {
	Missile     *Missile
	Distance    float64
	ThreatScore float64
}

// Defense is a player-placed interceptor battery.
type Defense struct {
	*entity.Entity

	def        defs.DefenseDefinition
	em         *entity.Manager
	dispatcher *event.Dispatcher

	state           FireState
	chargeTime      float64
	currentCooldown float64
	energy          float64

	// Hit/kill bookkeeping credited by projectiles this defense fired.
	Hits  int
	Kills int
}

// NewDefense places a defense of the given type centered on (x, y).
func NewDefense(id types.EntityID, x, y float64, defID string, em *entity.Manager, dispatcher *event.Dispatcher) *Defense {
	def := defs.DefenseDef(defID)
	size := def.Visuals.Radius * 2
	e := entity.New(id, x-size/2, y-size/2, size, size, entity.LayerDefences)
	// Only projectiles intercept; a missile brushing the battery itself
	// must fly on unharmed.
	e.Collidable = false

	d := &Defense{
		Entity:     e,
		def:        def,
		em:         em,
		dispatcher: dispatcher,
		state:      FireIdle,
	}
	if def.Energy != nil {
		d.energy = def.Energy.Max
	}
	e.SetBehavior(d)
	return d
}

// DefID returns the defense's definition key.
func (d *Defense) DefID() string { return d.def.ID }

// Range returns the engagement radius.
func (d *Defense) Range() float64 { return d.def.Range }

// Energy returns the current energy pool (zero for non-energy types).
func (d *Defense) Energy() float64 { return d.energy }

// State returns the firing state, for HUD and tests.
func (d *Defense) State() FireState { return d.state }

// ChargeProgress is 0..1 charge completion while charging.
func (d *Defense) ChargeProgress() float64 {
	if d.def.ChargeTime <= 0 {
		return 1
	}
	p := d.chargeTime / d.def.ChargeTime
	if p > 1 {
		p = 1
	}
	return p
}

// CanStartCharging gates the Idle→Charging transition.
func (d *Defense) CanStartCharging() bool {
	if !d.Active || d.currentCooldown > 0 || d.state != FireIdle {
		return false
	}
	if d.def.Energy != nil && d.energy < d.def.Energy.MinToFire {
		return false
	}
	return true
}

// CanFire gates the actual shot: charge complete, off cooldown, and
// enough energy for the energy-gated type.
func (d *Defense) CanFire() bool {
	if !d.Active || d.currentCooldown > 0 {
		return false
	}
	if d.chargeTime < d.def.ChargeTime {
		return false
	}
	if d.def.Energy != nil && d.energy < d.def.Energy.MinToFire {
		return false
	}
	return true
}

// OnUpdate runs cooldown and energy bookkeeping, then the firing state
// machine against the missiles currently in range.
func (d *Defense) OnUpdate(dt float64) {
	if d.currentCooldown > 0 {
		d.currentCooldown -= dt
		if d.currentCooldown < 0 {
			d.currentCooldown = 0
		}
	}
	if d.def.Energy != nil && d.energy < d.def.Energy.Max {
		d.energy += d.def.Energy.RegenRate * dt
		if d.energy > d.def.Energy.Max {
			d.energy = d.def.Energy.Max
		}
	}

	candidates := d.FindTargetsInRange(d.em.GetEntitiesByLayer(entity.LayerMissiles))

	switch d.state {
	case FireIdle:
		if len(candidates) > 0 && d.CanStartCharging() {
			d.state = FireCharging
			d.chargeTime = 0
		}
	case FireCharging:
		if len(candidates) == 0 {
			// Target gone mid-charge: stand down without firing.
			d.state = FireIdle
			d.chargeTime = 0
			return
		}
		d.chargeTime += dt
		if d.CanFire() {
			d.fire(d.SelectTargets(candidates))
		}
	}
}

// FindTargetsInRange filters the missiles layer down to live candidates
// within range, scoring each for the selection step.
func (d *Defense) FindTargetsInRange(missiles []*entity.Entity) []Candidate {
	var candidates []Candidate
	for _, e := range missiles {
		if !e.Active || e.MarkedForDestruction {
			continue
		}
		m, ok := e.Behavior().(*Missile)
		if !ok {
			continue
		}
		dist := d.DistanceTo(e)
		if dist > d.def.Range {
			continue
		}
		candidates = append(candidates, Candidate{
			Missile:     m,
			Distance:    dist,
			ThreatScore: ThreatScore(m),
		})
	}
	return candidates
}

// ThreatScore ranks a missile for engagement: base damage plus a speed
// contribution, weighted by the type's threat multiplier.
func ThreatScore(m *Missile) float64 {
	return (float64(m.Damage()) + m.CurrentSpeed()*speedThreatFactor) * m.ThreatWeight()
}

// SelectTargets applies the targeting mode. Equal-distance ties break
// toward the lower entity ID, which keeps selection deterministic.
// Returns nil on empty input.
func (d *Defense) SelectTargets(candidates []Candidate) []*Missile {
	if len(candidates) == 0 {
		return nil
	}

	switch d.def.TargetingMode {
	case defs.TargetNearest:
		best := 0
		for i := 1; i < len(candidates); i++ {
			if byDistanceLess(candidates[i], candidates[best]) {
				best = i
			}
		}
		return []*Missile{candidates[best].Missile}

	case defs.TargetStrongest:
		best := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].ThreatScore > candidates[best].ThreatScore {
				best = i
			}
		}
		return []*Missile{candidates[best].Missile}

	case defs.TargetFastest:
		best := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].Missile.CurrentSpeed() > candidates[best].Missile.CurrentSpeed() {
				best = i
			}
		}
		return []*Missile{candidates[best].Missile}

	case defs.TargetMultiple:
		sorted := make([]Candidate, len(candidates))
		copy(sorted, candidates)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Distance != sorted[j].Distance {
				return sorted[i].Distance < sorted[j].Distance
			}
			return sorted[i].Missile.ID < sorted[j].Missile.ID
		})
		n := multipleTargetCount
		if n > len(sorted) {
			n = len(sorted)
		}
		targets := make([]*Missile, 0, n)
		for _, c := range sorted[:n] {
			targets = append(targets, c.Missile)
		}
		return targets

	case defs.TargetAll:
		targets := make([]*Missile, 0, len(candidates))
		for _, c := range candidates {
			targets = append(targets, c.Missile)
		}
		return targets
	}

	// Unknown mode behaves like NEAREST rather than failing.
	best := 0
	for i := 1; i < len(candidates); i++ {
		if byDistanceLess(candidates[i], candidates[best]) {
			best = i
		}
	}
	return []*Missile{candidates[best].Missile}
}

func byDistanceLess(a, b Candidate) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Missile.ID < b.Missile.ID
}

// fire launches one projectile per selected target at its current
// position, then returns to Idle on full cooldown.
func (d *Defense) fire(targets []*Missile) {
	if len(targets) == 0 {
		return
	}
	for _, m := range targets {
		p := NewDefenseProjectile(ProjectileSpawn{
			ID:      d.em.NewID(),
			X:       d.Bounds.CenterX,
			Y:       d.Bounds.CenterY,
			TargetX: m.Bounds.CenterX,
			TargetY: m.Bounds.CenterY,
			Source:  d,
		})
		d.em.AddEntity(p.Entity)
	}

	if d.def.Energy != nil {
		d.energy -= d.def.Energy.CostPerShot
		if d.energy < 0 {
			d.energy = 0
		}
	}
	d.state = FireIdle
	d.chargeTime = 0
	d.currentCooldown = d.def.CooldownTime
}

// OnCollision is never reached while the battery is non-collidable.
func (d *Defense) OnCollision(other *entity.Entity) {}

func (d *Defense) OnDestroy() {}

// OnRender draws the body, range ring and charge/energy bars.
func (d *Defense) OnRender(screen *ebiten.Image) {
	cx := float32(d.Bounds.CenterX)
	cy := float32(d.Bounds.CenterY)

	vector.StrokeCircle(screen, cx, cy, float32(d.def.Range), 1, config.RangeRingColor, true)
	vector.DrawFilledCircle(screen, cx, cy, float32(d.def.Visuals.Radius), d.def.Visuals.Color, true)

	barW := float32(d.def.Visuals.Radius * 2)
	barX := cx - barW/2
	if d.state == FireCharging {
		render.Bar(screen, barX, cy+float32(d.def.Visuals.Radius)+3, barW, 3, d.ChargeProgress(), config.ChargeBarColor)
	}
	if d.def.Energy != nil {
		render.Bar(screen, barX, cy+float32(d.def.Visuals.Radius)+8, barW, 3, d.energy/d.def.Energy.Max, config.EnergyBarColor)
	}
}
