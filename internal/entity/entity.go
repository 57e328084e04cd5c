// Package entity builds actors, items and plain entities on top of the ECS
// world and implements the ownership rules that keep every entity in
// exactly one place: a map's entity set or an actor's inventory.
package entity

import (
	"errors"
	"math"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrNotEntity     = errors.New("entity: no such entity")
	ErrNotItem       = errors.New("entity: not an item")
	ErrNoInventory   = errors.New("entity: holder has no inventory")
	ErrInventoryFull = errors.New("entity: inventory full")
	ErrForeignMap    = errors.New("entity: map is not registered with the atlas")
	ErrOwnerMismatch = errors.New("entity: owner does not hold the entity")
)

// Unnamed is reported for entities without a Name component.
const Unnamed = "<Unnamed>"

// DefaultColor is used when a spec leaves Color unset.
var DefaultColor = tcell.ColorWhite

// Visual is the name and look shared by every kind of entity.
type Visual struct {
	Name  string
	Glyph string
	Color tcell.Color
}

func (v Visual) renderable(order component.RenderOrder) component.Renderable {
	glyph := v.Glyph
	if glyph == "" {
		glyph = "?"
	}
	color := v.Color
	if color == tcell.ColorDefault {
		color = DefaultColor
	}
	return component.Renderable{Glyph: glyph, Color: color, RenderOrder: order}
}

func (v Visual) name() component.Name {
	if v.Name == "" {
		return component.Name{Name: Unnamed}
	}
	return component.Name{Name: v.Name}
}

// ActorSpec describes an actor to build.
type ActorSpec struct {
	Visual
	AI       component.AI
	Fighter  component.Fighter
	Capacity int
}

// ItemSpec describes an item to build.
type ItemSpec struct {
	Visual
	Consumable component.Consumable
}

// NewActor creates an unplaced, movement-blocking actor with its AI, Fighter
// and Inventory attached. Components are keyed by the returned ID, so they
// resolve their owner through it.
func NewActor(w *ecs.World, spec ActorSpec) ecs.EntityID {
	id := newBase(w, spec.Visual, component.RenderActor)
	w.Add(id, component.TagActor{})
	w.Add(id, component.TagBlocking{})
	w.Add(id, spec.AI)
	f := spec.Fighter
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
	w.Add(id, f)
	w.Add(id, component.Inventory{Capacity: spec.Capacity})
	return id
}

// NewItem creates an unplaced item. Items never block movement.
func NewItem(w *ecs.World, spec ItemSpec) ecs.EntityID {
	id := newBase(w, spec.Visual, component.RenderItem)
	w.Add(id, component.TagItem{})
	w.Add(id, spec.Consumable)
	return id
}

// NewGeneric creates an unplaced entity that is neither actor nor item.
func NewGeneric(w *ecs.World, v Visual, blocks bool) ecs.EntityID {
	id := newBase(w, v, component.RenderCorpse)
	if blocks {
		w.Add(id, component.TagBlocking{})
	}
	return id
}

func newBase(w *ecs.World, v Visual, order component.RenderOrder) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{})
	w.Add(id, v.name())
	w.Add(id, v.renderable(order))
	w.Add(id, component.Owner{})
	return id
}

// IsAlive reports whether id is an actor that still has an AI.
func IsAlive(w *ecs.World, id ecs.EntityID) bool {
	return component.KindOf(w, id) == component.KindActor && w.Has(id, component.CAI)
}

// NameOf returns the display name of id.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return Unnamed
}

// PositionOf returns id's grid position.
func PositionOf(w *ecs.World, id ecs.EntityID) (component.Position, bool) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

// OwnerOf returns where id currently belongs.
func OwnerOf(w *ecs.World, id ecs.EntityID) component.Owner {
	if c := w.Get(id, component.COwner); c != nil {
		return c.(component.Owner)
	}
	return component.Owner{}
}

// Move shifts id by (dx, dy) without any legality checks; actions decide
// whether a move is allowed.
func Move(w *ecs.World, id ecs.EntityID, dx, dy int) {
	pos, ok := PositionOf(w, id)
	if !ok {
		return
	}
	w.Add(id, component.Position{X: pos.X + dx, Y: pos.Y + dy})
}

// Distance returns the Euclidean distance from id to (x, y).
func Distance(w *ecs.World, id ecs.EntityID, x, y int) float64 {
	pos, _ := PositionOf(w, id)
	return math.Hypot(float64(x-pos.X), float64(y-pos.Y))
}
