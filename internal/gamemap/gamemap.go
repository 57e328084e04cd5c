// Package gamemap owns the tile grid of one level and the set of entities
// placed on it. Every spatial question an action asks (is this in bounds,
// can I walk here, who is standing there) is answered here.
//
// Queries return a safe default (false, none, empty) for coordinates outside
// the grid; mutations reject them with ErrOutOfBounds.
package gamemap

import (
	"errors"
	"fmt"
	"sort"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
)

var (
	// ErrInvalidDimensions is returned when a map is built with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("gamemap: invalid dimensions")
	// ErrOutOfBounds is returned when a mutation targets a cell outside the grid.
	ErrOutOfBounds = errors.New("gamemap: coordinate out of bounds")
)

// GameMap holds the tile grid and entity set for one level.
type GameMap struct {
	ID            component.MapID
	Width, Height int
	Tiles         [][]Tile

	world    *ecs.World
	entities map[ecs.EntityID]struct{}
}

// New creates a GameMap filled with walls whose entities live in w.
func New(id component.MapID, w *ecs.World, width, height int) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new map %dx%d: %w", width, height, ErrInvalidDimensions)
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{
		ID:       id,
		Width:    width,
		Height:   height,
		Tiles:    tiles,
		world:    w,
		entities: make(map[ecs.EntityID]struct{}),
	}, nil
}

// World returns the entity store this map's entities live in.
func (m *GameMap) World() *ecs.World { return m.world }

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). ok is false when out of bounds.
func (m *GameMap) At(x, y int) (t *Tile, ok bool) {
	if !m.InBounds(x, y) {
		return nil, false
	}
	return &m.Tiles[y][x], true
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("set tile (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	m.Tiles[y][x] = t
	return nil
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// IsVisible returns true when (x, y) is in bounds and currently in view.
func (m *GameMap) IsVisible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Visible
}

// IsExplored returns true when (x, y) is in bounds and has ever been seen.
func (m *GameMap) IsExplored(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Explored
}

// ClearVisible marks every cell as out of sight. Explored flags are kept.
func (m *GameMap) ClearVisible() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x].Visible = false
		}
	}
}

// ─── entity set ─────────────────────────────────────────────────────────────

// AddEntity registers id in this map's entity set. Adding twice is a no-op.
// Ownership bookkeeping is the entity package's job; use entity.Place or
// entity.Spawn rather than calling this directly.
func (m *GameMap) AddEntity(id ecs.EntityID) {
	m.entities[id] = struct{}{}
}

// RemoveEntity drops id from the entity set.
func (m *GameMap) RemoveEntity(id ecs.EntityID) {
	delete(m.entities, id)
}

// HasEntity reports whether id is registered on this map.
func (m *GameMap) HasEntity(id ecs.EntityID) bool {
	_, ok := m.entities[id]
	return ok
}

// Entities returns the registered entities in ascending ID order.
func (m *GameMap) Entities() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(m.entities))
	for id := range m.entities {
		if m.world.Alive(id) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *GameMap) position(id ecs.EntityID) (component.Position, bool) {
	c := m.world.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

func (m *GameMap) at(id ecs.EntityID, x, y int) bool {
	pos, ok := m.position(id)
	return ok && pos.X == x && pos.Y == y
}

// ─── spatial queries ────────────────────────────────────────────────────────

// LivingActors returns the actors on this map that still have an AI.
func (m *GameMap) LivingActors() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range m.Entities() {
		if component.KindOf(m.world, id) == component.KindActor && m.world.Has(id, component.CAI) {
			out = append(out, id)
		}
	}
	return out
}

// ActorAt returns the living actor standing on (x, y), if any.
// Dead actors are skipped rather than ending the search, so a corpse never
// hides a living actor sharing its cell.
func (m *GameMap) ActorAt(x, y int) (ecs.EntityID, bool) {
	if !m.InBounds(x, y) {
		return ecs.NilEntity, false
	}
	for _, id := range m.LivingActors() {
		if m.at(id, x, y) {
			return id, true
		}
	}
	return ecs.NilEntity, false
}

// ItemsAt returns every item lying on (x, y).
func (m *GameMap) ItemsAt(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	var out []ecs.EntityID
	for _, id := range m.Entities() {
		if component.KindOf(m.world, id) == component.KindItem && m.at(id, x, y) {
			out = append(out, id)
		}
	}
	return out
}

// BlockingEntityAt returns the movement-blocking entity on (x, y), if any.
func (m *GameMap) BlockingEntityAt(x, y int) (ecs.EntityID, bool) {
	if !m.InBounds(x, y) {
		return ecs.NilEntity, false
	}
	for _, id := range m.Entities() {
		if component.Blocks(m.world, id) && m.at(id, x, y) {
			return id, true
		}
	}
	return ecs.NilEntity, false
}
