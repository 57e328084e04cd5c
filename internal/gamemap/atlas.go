package gamemap

import (
	"fmt"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
)

// Atlas resolves MapIDs to maps. All maps in an atlas share one World, so an
// entity keeps its ID when it moves between them.
type Atlas struct {
	world  *ecs.World
	maps   map[component.MapID]*GameMap
	nextID component.MapID
}

// NewAtlas creates an empty atlas backed by w.
func NewAtlas(w *ecs.World) *Atlas {
	return &Atlas{
		world:  w,
		maps:   make(map[component.MapID]*GameMap),
		nextID: 1,
	}
}

// World returns the shared entity store.
func (a *Atlas) World() *ecs.World { return a.world }

// NewMap builds a wall-filled map, assigns it the next MapID and registers it.
func (a *Atlas) NewMap(width, height int) (*GameMap, error) {
	m, err := New(a.nextID, a.world, width, height)
	if err != nil {
		return nil, fmt.Errorf("atlas: %w", err)
	}
	a.maps[m.ID] = m
	a.nextID++
	return m, nil
}

// Map returns the map registered under id.
func (a *Atlas) Map(id component.MapID) (*GameMap, bool) {
	m, ok := a.maps[id]
	return m, ok
}

// Discard unregisters the map and destroys every entity on it. It undoes a
// NewMap whose level could not be finished.
func (a *Atlas) Discard(id component.MapID) {
	m, ok := a.maps[id]
	if !ok {
		return
	}
	for eid := range m.entities {
		a.world.DestroyEntity(eid)
	}
	delete(a.maps, id)
}
