// internal/units/target.go
package units

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/types"
	"go-missile-defense/pkg/render"
)

// Target is a static protected asset missiles try to reach.
type Target struct {
	*entity.Entity

	def           defs.TargetDefinition
	currentHealth int
	isDestroyed   bool

	// damageFlash is the seconds remaining of the hit flash visual.
	damageFlash float64
	// destructionFired guards the one-shot destruction side effects.
	destructionFired bool

	dispatcher *event.Dispatcher
}

// NewTarget places a target of the given type with its top-left at (x, y).
func NewTarget(id types.EntityID, x, y float64, defID string, dispatcher *event.Dispatcher) *Target {
	def := defs.TargetDef(defID)
	e := entity.New(id, x, y, def.Width, def.Height, entity.LayerTargets)

	t := &Target{
		Entity:        e,
		def:           def,
		currentHealth: def.MaxHealth,
		dispatcher:    dispatcher,
	}
	e.SetBehavior(t)
	return t
}

// DefID returns the target's definition key.
func (t *Target) DefID() string { return t.def.ID }

// CurrentHealth returns the current hit points.
func (t *Target) CurrentHealth() int { return t.currentHealth }

// MaxHealth returns the type's maximum hit points.
func (t *Target) MaxHealth() int { return t.def.MaxHealth }

// IsDestroyed reports whether health has reached zero.
func (t *Target) IsDestroyed() bool { return t.isDestroyed }

// TakeDamage applies damage, clamped at zero, and reports whether this
// call destroyed the target. Destroyed targets no-op.
func (t *Target) TakeDamage(amount int) bool {
	if t.isDestroyed || amount <= 0 {
		return false
	}
	t.currentHealth -= amount
	if t.currentHealth < 0 {
		t.currentHealth = 0
	}
	t.damageFlash = config.DamageFlashDuration

	if t.currentHealth == 0 {
		t.isDestroyed = true
		t.fireDestruction()
		return true
	}
	return false
}

// Heal restores health up to the maximum. Destroyed targets no-op.
func (t *Target) Heal(amount int) {
	if t.isDestroyed || amount <= 0 {
		return
	}
	t.currentHealth += amount
	if t.currentHealth > t.def.MaxHealth {
		t.currentHealth = t.def.MaxHealth
	}
}

func (t *Target) healthFraction() float64 {
	if t.def.MaxHealth == 0 {
		return 0
	}
	return float64(t.currentHealth) / float64(t.def.MaxHealth)
}

// IsHealthy reports health above 70% of maximum.
func (t *Target) IsHealthy() bool {
	return !t.isDestroyed && t.healthFraction() > config.HealthyThreshold
}

// IsDamaged reports health in the (30%, 70%] band.
func (t *Target) IsDamaged() bool {
	f := t.healthFraction()
	return !t.isDestroyed && f > config.CriticalThreshold && f <= config.HealthyThreshold
}

// IsCritical reports health at or below 30% but not yet zero.
func (t *Target) IsCritical() bool {
	f := t.healthFraction()
	return !t.isDestroyed && f > 0 && f <= config.CriticalThreshold
}

// fireDestruction runs the destruction side effects exactly once.
func (t *Target) fireDestruction() {
	if t.destructionFired {
		return
	}
	t.destructionFired = true
	if t.dispatcher != nil {
		t.dispatcher.Dispatch(event.Event{Type: event.TargetDestroyed, Data: t.ID})
	}
}

// OnUpdate only runs the flash timer; targets never move.
func (t *Target) OnUpdate(dt float64) {
	if t.damageFlash > 0 {
		t.damageFlash -= dt
		if t.damageFlash < 0 {
			t.damageFlash = 0
		}
	}
}

// OnCollision applies missile damage (with the fixed fallback when the
// missile carries none) and always destroys the colliding missile.
func (t *Target) OnCollision(other *entity.Entity) {
	if other.Layer != entity.LayerMissiles {
		return
	}

	damage := config.FallbackMissileDamage
	missileDefID := ""
	if m, ok := other.Behavior().(*Missile); ok {
		if m.Damage() > 0 {
			damage = m.Damage()
		}
		missileDefID = m.DefID()
	}

	destroyedNow := t.TakeDamage(damage)
	if t.dispatcher != nil {
		t.dispatcher.Dispatch(event.Event{
			Type: event.TargetHit,
			Data: event.TargetHitData{
				TargetDefID:     t.def.ID,
				MissileDefID:    missileDefID,
				Damage:          damage,
				DestroyedTarget: destroyedNow,
			},
		})
	}

	other.Destroy()
}

func (t *Target) OnDestroy() {}

// OnRender draws the building, health bar and damage flash. A destroyed
// target stays on screen as darkened rubble.
func (t *Target) OnRender(screen *ebiten.Image) {
	x := float32(t.Bounds.Left)
	y := float32(t.Bounds.Top)
	w := float32(t.Width)
	h := float32(t.Height)

	body := t.def.Visuals.Color
	if t.isDestroyed {
		body = color.RGBA{body.R / 3, body.G / 3, body.B / 3, body.A}
	}
	vector.DrawFilledRect(screen, x, y, w, h, body, false)

	if t.damageFlash > 0 {
		vector.DrawFilledRect(screen, x, y, w, h, config.FlashColor, false)
	}

	if !t.isDestroyed {
		frac := t.healthFraction()
		barColor := config.HealthGoodColor
		if t.IsCritical() {
			barColor = config.HealthCritColor
		} else if t.IsDamaged() {
			barColor = config.HealthWarnColor
		}
		render.Bar(screen, x, y-7, w, 4, frac, barColor)
	}
}
