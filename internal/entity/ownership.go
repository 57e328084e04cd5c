package entity

import (
	"fmt"
	"slices"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"
)

// Maps resolves owner references. *gamemap.Atlas implements it.
type Maps interface {
	World() *ecs.World
	Map(id component.MapID) (*gamemap.GameMap, bool)
}

// Spawn deep-copies template, including everything in its inventory, and
// registers the copy on m at (x, y). The copy shares no mutable state with
// the template.
func Spawn(m *gamemap.GameMap, template ecs.EntityID, x, y int) (ecs.EntityID, error) {
	w := m.World()
	if !w.Alive(template) {
		return ecs.NilEntity, fmt.Errorf("spawn %d: %w", template, ErrNotEntity)
	}
	if !m.InBounds(x, y) {
		return ecs.NilEntity, fmt.Errorf("spawn at (%d,%d): %w", x, y, gamemap.ErrOutOfBounds)
	}
	clone := cloneTree(w, template)
	w.Add(clone, component.Position{X: x, Y: y})
	w.Add(clone, component.MapOwner(m.ID))
	m.AddEntity(clone)
	return clone, nil
}

// cloneTree clones id and, recursively, the items its inventory holds,
// re-pointing the cloned items at the cloned holder.
func cloneTree(w *ecs.World, id ecs.EntityID) ecs.EntityID {
	clone := w.Clone(id)
	c := w.Get(clone, component.CInventory)
	if c == nil {
		return clone
	}
	inv := c.(component.Inventory)
	for i, item := range inv.Items {
		copied := cloneTree(w, item)
		w.Add(copied, component.ContainerOwner(clone))
		inv.Items[i] = copied
	}
	w.Add(clone, inv)
	return clone
}

// Place moves id to (x, y). When dest is non-nil the entity is also
// transferred: it is detached from its current map or inventory before being
// registered on dest, so it never belongs to two places at once. dest must be
// the map maps resolves for dest.ID.
func Place(maps Maps, id ecs.EntityID, x, y int, dest *gamemap.GameMap) error {
	w := maps.World()
	if !w.Alive(id) {
		return fmt.Errorf("place %d: %w", id, ErrNotEntity)
	}
	if dest == nil {
		w.Add(id, component.Position{X: x, Y: y})
		return nil
	}
	if !dest.InBounds(x, y) {
		return fmt.Errorf("place %d at (%d,%d): %w", id, x, y, gamemap.ErrOutOfBounds)
	}
	if m, ok := maps.Map(dest.ID); !ok || m != dest {
		return fmt.Errorf("place %d on map %d: %w", id, dest.ID, ErrForeignMap)
	}
	if err := detach(maps, id); err != nil {
		return fmt.Errorf("place %d: %w", id, err)
	}
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.MapOwner(dest.ID))
	dest.AddEntity(id)
	return nil
}

// Store moves item from wherever it is into holder's inventory.
func Store(maps Maps, item, holder ecs.EntityID) error {
	w := maps.World()
	if !w.Alive(item) || !w.Alive(holder) {
		return fmt.Errorf("store %d in %d: %w", item, holder, ErrNotEntity)
	}
	if !w.Has(item, component.CTagItem) {
		return fmt.Errorf("store %d: %w", item, ErrNotItem)
	}
	c := w.Get(holder, component.CInventory)
	if c == nil {
		return fmt.Errorf("store in %d: %w", holder, ErrNoInventory)
	}
	if owner := OwnerOf(w, item); owner.Kind == component.OwnerContainer && owner.Container == holder {
		return nil
	}
	if c.(component.Inventory).Full() {
		return fmt.Errorf("store %d in %d: %w", item, holder, ErrInventoryFull)
	}
	if err := detach(maps, item); err != nil {
		return fmt.Errorf("store %d: %w", item, err)
	}
	inv := w.Get(holder, component.CInventory).(component.Inventory)
	inv.Items = append(inv.Items, item)
	w.Add(holder, inv)
	w.Add(item, component.ContainerOwner(holder))
	return nil
}

// Inventory returns the items holder carries, in pickup order.
func Inventory(w *ecs.World, holder ecs.EntityID) []ecs.EntityID {
	c := w.Get(holder, component.CInventory)
	if c == nil {
		return nil
	}
	return append([]ecs.EntityID(nil), c.(component.Inventory).Items...)
}

// Remove destroys id after detaching it from its owner. An entity whose
// owner cannot be resolved is left alive.
func Remove(maps Maps, id ecs.EntityID) error {
	if !maps.World().Alive(id) {
		return nil
	}
	if err := detach(maps, id); err != nil {
		return fmt.Errorf("remove %d: %w", id, err)
	}
	maps.World().DestroyEntity(id)
	return nil
}

// detach removes id from its current owner and clears the owner reference.
// It changes nothing and returns ErrOwnerMismatch when the recorded owner
// does not resolve to a map or inventory that holds id.
func detach(maps Maps, id ecs.EntityID) error {
	w := maps.World()
	owner := OwnerOf(w, id)
	switch owner.Kind {
	case component.OwnerMap:
		m, ok := maps.Map(owner.Map)
		if !ok || !m.HasEntity(id) {
			return fmt.Errorf("map %d does not hold %d: %w", owner.Map, id, ErrOwnerMismatch)
		}
		m.RemoveEntity(id)
	case component.OwnerContainer:
		c := w.Get(owner.Container, component.CInventory)
		if c == nil {
			return fmt.Errorf("container %d has no inventory: %w", owner.Container, ErrOwnerMismatch)
		}
		inv := c.(component.Inventory)
		i := slices.Index(inv.Items, id)
		if i < 0 {
			return fmt.Errorf("container %d does not hold %d: %w", owner.Container, id, ErrOwnerMismatch)
		}
		inv.Items = slices.Delete(slices.Clone(inv.Items), i, i+1)
		w.Add(owner.Container, inv)
	}
	w.Add(id, component.Owner{})
	return nil
}
