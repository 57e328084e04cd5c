package ecs

import (
	"maps"
	"slices"
)

// World is the central entity registry and component store.
//
// An entity is nothing more than an ID; every record attached to it is keyed
// by that ID, so a component never needs a pointer back to its owner.
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity forgets the entity and drops all its components. IDs are
// never reused.
func (w *World) DestroyEntity(id EntityID) {
	if _, ok := w.alive[id]; !ok {
		return
	}
	delete(w.alive, id)
	for _, store := range w.stores {
		delete(store, id)
	}
}

// Alive reports whether the entity exists in the world.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// Add attaches a component to an entity, replacing any previous component
// of the same type.
func (w *World) Add(id EntityID, c Component) {
	store, ok := w.stores[c.Type()]
	if !ok {
		store = make(map[EntityID]Component)
		w.stores[c.Type()] = store
	}
	store[id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Clone mints a new entity carrying a deep copy of every component attached
// to src. Returns NilEntity if src is not alive.
func (w *World) Clone(src EntityID) EntityID {
	if !w.Alive(src) {
		return NilEntity
	}
	id := w.CreateEntity()
	for _, t := range slices.Sorted(maps.Keys(w.stores)) {
		if c, ok := w.stores[t][src]; ok {
			w.stores[t][id] = c.Clone()
		}
	}
	return id
}
