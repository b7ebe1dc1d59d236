// internal/entity/entity.go
package entity

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"go-missile-defense/internal/types"
)

// Layer groups entities for rendering order and collision semantics.
type Layer string

const (
	LayerTargets  Layer = "targets"
	LayerMissiles Layer = "missiles"
	LayerDefences Layer = "defences"

	// DefaultLayer is used when an entity is added without a layer.
	DefaultLayer = LayerMissiles
)

// DrawOrder is the fixed layer rendering order (missiles on top).
var DrawOrder = []Layer{LayerTargets, LayerDefences, LayerMissiles}

// Bounds is the axis-aligned bounding box derived from position and size.
// It is recomputed on every position mutation, so it is always consistent
// with (X, Y, Width, Height) by the time collisions are checked.
type Bounds struct {
	Left, Top, Right, Bottom float64
	CenterX, CenterY         float64
}

// Behavior is the per-type capability attached to an entity at
// construction. It replaces subclassing: the base Entity owns movement,
// lifecycle and collision shape; the behavior owns everything
// type-specific.
type Behavior interface {
	OnUpdate(dt float64)
	OnRender(screen *ebiten.Image)
	OnCollision(other *Entity)
	OnDestroy()
}

// Entity is the base moving, collidable simulation object.
type Entity struct {
	ID     types.EntityID
	X, Y   float64
	Width  float64
	Height float64
	VX, VY float64
	Bounds Bounds

	Active               bool
	Visible              bool
	Collidable           bool
	MarkedForDestruction bool

	// Age is seconds since creation, advanced every simulation tick.
	Age float64

	Layer Layer

	behavior  Behavior
	destroyed bool
}

// New creates an active, visible, collidable entity. The ID should come
// from Manager.NewID so uniqueness is owned in one place.
func New(id types.EntityID, x, y, width, height float64, layer Layer) *Entity {
	e := &Entity{
		ID:         id,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Active:     true,
		Visible:    true,
		Collidable: true,
		Layer:      layer,
	}
	e.recomputeBounds()
	return e
}

// SetBehavior installs the type-specific behavior hooks.
func (e *Entity) SetBehavior(b Behavior) {
	e.behavior = b
}

// Behavior returns the installed behavior, which concrete variants use to
// recover their own type from a raw *Entity.
func (e *Entity) Behavior() Behavior {
	return e.behavior
}

// SetPosition moves the entity and keeps the bounds consistent.
func (e *Entity) SetPosition(x, y float64) {
	e.X = x
	e.Y = y
	e.recomputeBounds()
}

// SetVelocity replaces the velocity vector.
func (e *Entity) SetVelocity(vx, vy float64) {
	e.VX = vx
	e.VY = vy
}

func (e *Entity) recomputeBounds() {
	e.Bounds.Left = e.X
	e.Bounds.Top = e.Y
	e.Bounds.Right = e.X + e.Width
	e.Bounds.Bottom = e.Y + e.Height
	e.Bounds.CenterX = e.X + e.Width/2
	e.Bounds.CenterY = e.Y + e.Height/2
}

// Update integrates velocity, advances age, recomputes bounds and then
// hands control to the behavior hook. Inactive entities do nothing.
func (e *Entity) Update(dt float64) {
	if !e.Active {
		return
	}

	e.X += e.VX * dt
	e.Y += e.VY * dt
	e.Age += dt
	e.recomputeBounds()

	if e.behavior != nil {
		e.behavior.OnUpdate(dt)
	}
}

// Render draws the entity through its behavior hook when visible.
func (e *Entity) Render(screen *ebiten.Image) {
	if !e.Visible || e.behavior == nil {
		return
	}
	e.behavior.OnRender(screen)
}

// IsCollidingWith reports exact AABB overlap. It is symmetric, false for
// self-comparison and false when either side is non-collidable.
func (e *Entity) IsCollidingWith(other *Entity) bool {
	if other == nil || e == other {
		return false
	}
	if !e.Collidable || !other.Collidable {
		return false
	}
	return e.Bounds.Left < other.Bounds.Right &&
		e.Bounds.Right > other.Bounds.Left &&
		e.Bounds.Top < other.Bounds.Bottom &&
		e.Bounds.Bottom > other.Bounds.Top
}

// DistanceTo returns the Euclidean distance between bounds centers.
func (e *Entity) DistanceTo(other *Entity) float64 {
	dx := e.Bounds.CenterX - other.Bounds.CenterX
	dy := e.Bounds.CenterY - other.Bounds.CenterY
	return math.Sqrt(dx*dx + dy*dy)
}

// Destroy marks the entity for removal on the manager's next sweep.
// It is idempotent: the OnDestroy hook fires exactly once.
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.Active = false
	e.MarkedForDestruction = true
	if e.behavior != nil {
		e.behavior.OnDestroy()
	}
}

// collide dispatches a confirmed collision to the behavior hook.
func (e *Entity) collide(other *Entity) {
	if e.behavior != nil {
		e.behavior.OnCollision(other)
	}
}
