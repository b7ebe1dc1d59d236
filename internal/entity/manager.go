// internal/entity/manager.go
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-missile-defense/internal/types"
)

// Manager owns every entity in the simulation, grouped by layer in
// insertion order, together with the spatial grid used for broad-phase
// collision detection. Additions are deferred to the next Update so
// collections are never mutated mid-iteration.
type Manager struct {
	layers  map[Layer][]*Entity
	byID    map[types.EntityID]*Entity
	pending []*Entity
	grid    *SpatialGrid
	nextID  types.EntityID
}

// NewManager creates an empty manager with a grid of the given cell size.
func NewManager(cellSize float64) *Manager {
	return &Manager{
		layers: make(map[Layer][]*Entity),
		byID:   make(map[types.EntityID]*Entity),
		grid:   NewSpatialGrid(cellSize),
	}
}

// NewID hands out the next entity ID. IDs are monotonically increasing
// and never reused within a session.
func (m *Manager) NewID() types.EntityID {
	m.nextID++
	return m.nextID
}

// AddEntity enqueues an entity for insertion at the start of the next
// Update. Entities without a layer go to the default layer.
func (m *Manager) AddEntity(e *Entity) {
	if e.Layer == "" {
		e.Layer = DefaultLayer
	}
	m.pending = append(m.pending, e)
}

// Update runs one simulation tick: flush pending additions, update every
// active entity, re-sync the grid, then sweep out destroyed entities.
func (m *Manager) Update(dt float64) {
	m.flushPending()

	for _, layer := range DrawOrder {
		for _, e := range m.layers[layer] {
			if e.Active {
				e.Update(dt)
			}
		}
	}

	for _, e := range m.byID {
		if e.Active {
			m.grid.UpdateEntity(e)
		}
	}

	m.sweep()
}

func (m *Manager) flushPending() {
	for _, e := range m.pending {
		m.layers[e.Layer] = append(m.layers[e.Layer], e)
		m.byID[e.ID] = e
		m.grid.AddEntity(e)
	}
	m.pending = m.pending[:0]
}

func (m *Manager) sweep() {
	for layer, entities := range m.layers {
		kept := entities[:0]
		for _, e := range entities {
			if e.MarkedForDestruction {
				delete(m.byID, e.ID)
				m.grid.RemoveEntity(e.ID)
				continue
			}
			kept = append(kept, e)
		}
		m.layers[layer] = kept
	}
}

// CheckCollisions narrows candidates through the grid, confirms each pair
// with an exact AABB test and notifies both sides. Pairs involving an
// entity already marked for destruction this tick are skipped, so a
// missile intercepted by a projectile cannot also damage a target in the
// same pass. The confirmed pairs are returned for instrumentation.
func (m *Manager) CheckCollisions() [][2]*Entity {
	var confirmed [][2]*Entity
	for _, pair := range m.grid.PotentialCollisions() {
		a, b := pair[0], pair[1]
		if a.MarkedForDestruction || b.MarkedForDestruction {
			continue
		}
		if !a.IsCollidingWith(b) {
			continue
		}
		a.collide(b)
		b.collide(a)
		confirmed = append(confirmed, pair)
	}
	return confirmed
}

// GetEntity returns the live entity with the given ID.
func (m *Manager) GetEntity(id types.EntityID) (*Entity, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// GetEntitiesByLayer returns the entities of one layer in insertion order.
func (m *Manager) GetEntitiesByLayer(layer Layer) []*Entity {
	return m.layers[layer]
}

// GetAllEntities returns every live entity, layer by layer in draw order.
func (m *Manager) GetAllEntities() []*Entity {
	all := make([]*Entity, 0, len(m.byID))
	for _, layer := range DrawOrder {
		all = append(all, m.layers[layer]...)
	}
	return all
}

// GetEntityCount returns the number of live entities.
func (m *Manager) GetEntityCount() int {
	return len(m.byID)
}

// Grid exposes the spatial index, mainly for tests asserting cleanup.
func (m *Manager) Grid() *SpatialGrid {
	return m.grid
}

// Clear removes every entity, pending or live, and resets the grid.
// The ID counter is not reset: IDs stay unique across a session.
func (m *Manager) Clear() {
	m.layers = make(map[Layer][]*Entity)
	m.byID = make(map[types.EntityID]*Entity)
	m.pending = nil
	m.grid.Clear()
}

// Render draws every visible entity, layers in fixed order, insertion
// order within a layer. Rendering reads entity state but never mutates it.
func (m *Manager) Render(screen *ebiten.Image) {
	for _, layer := range DrawOrder {
		for _, e := range m.layers[layer] {
			e.Render(screen)
		}
	}
}
