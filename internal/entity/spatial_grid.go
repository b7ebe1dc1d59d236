// internal/entity/spatial_grid.go
package entity

import (
	"math"

	"go-missile-defense/internal/types"
)

type cellKey struct {
	X, Y int
}

// SpatialGrid is a uniform-grid broad phase: it narrows collision
// candidates to entities sharing at least one cell, cutting the naive
// O(n²) pair check down to near-linear for spread-out entity sets.
// Entities larger than a cell occupy every cell their bounds touch.
type SpatialGrid struct {
	cellSize float64
	cells    map[cellKey]map[types.EntityID]*Entity
	occupied map[types.EntityID][]cellKey
}

// NewSpatialGrid creates an empty grid with the given cell size.
func NewSpatialGrid(cellSize float64) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[types.EntityID]*Entity),
		occupied: make(map[types.EntityID][]cellKey),
	}
}

// cellsFor computes every cell key covered by the bounds.
func (g *SpatialGrid) cellsFor(b Bounds) []cellKey {
	minX := int(math.Floor(b.Left / g.cellSize))
	maxX := int(math.Floor(b.Right / g.cellSize))
	minY := int(math.Floor(b.Top / g.cellSize))
	maxY := int(math.Floor(b.Bottom / g.cellSize))

	keys := make([]cellKey, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			keys = append(keys, cellKey{X: x, Y: y})
		}
	}
	return keys
}

// AddEntity indexes an entity under every cell its bounds cover.
func (g *SpatialGrid) AddEntity(e *Entity) {
	if _, exists := g.occupied[e.ID]; exists {
		g.RemoveEntity(e.ID)
	}
	keys := g.cellsFor(e.Bounds)
	for _, key := range keys {
		cell, ok := g.cells[key]
		if !ok {
			cell = make(map[types.EntityID]*Entity)
			g.cells[key] = cell
		}
		cell[e.ID] = e
	}
	g.occupied[e.ID] = keys
}

// UpdateEntity re-syncs the cell membership of a moved entity.
func (g *SpatialGrid) UpdateEntity(e *Entity) {
	g.AddEntity(e)
}

// RemoveEntity fully evicts an entity from the index.
func (g *SpatialGrid) RemoveEntity(id types.EntityID) {
	keys, ok := g.occupied[id]
	if !ok {
		return
	}
	for _, key := range keys {
		if cell, ok := g.cells[key]; ok {
			delete(cell, id)
			if len(cell) == 0 {
				delete(g.cells, key)
			}
		}
	}
	delete(g.occupied, id)
}

// Clear drops every index entry.
func (g *SpatialGrid) Clear() {
	g.cells = make(map[cellKey]map[types.EntityID]*Entity)
	g.occupied = make(map[types.EntityID][]cellKey)
}

// Len returns the number of indexed entities.
func (g *SpatialGrid) Len() int {
	return len(g.occupied)
}

// PotentialCollisions returns deduplicated unordered pairs of entities
// sharing at least one cell. A pair sharing several cells appears once.
func (g *SpatialGrid) PotentialCollisions() [][2]*Entity {
	type pairKey struct {
		a, b types.EntityID
	}
	seen := make(map[pairKey]struct{})
	var pairs [][2]*Entity

	for _, cell := range g.cells {
		if len(cell) < 2 {
			continue
		}
		members := make([]*Entity, 0, len(cell))
		for _, e := range cell {
			members = append(members, e)
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				key := pairKey{a: a.ID, b: b.ID}
				if a.ID > b.ID {
					key = pairKey{a: b.ID, b: a.ID}
				}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				pairs = append(pairs, [2]*Entity{a, b})
			}
		}
	}
	return pairs
}
