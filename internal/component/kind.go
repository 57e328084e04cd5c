package component

import "tile-roguelike/internal/ecs"

// Kind is the closed set of entity variants. It is derived from the
// TagActor and TagItem markers; an entity carrying neither is generic.
type Kind uint8

const (
	KindGeneric Kind = iota
	KindActor
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindItem:
		return "item"
	}
	return "generic"
}

// KindOf reports which variant id was built as.
func KindOf(w *ecs.World, id ecs.EntityID) Kind {
	switch {
	case w.Has(id, CTagActor):
		return KindActor
	case w.Has(id, CTagItem):
		return KindItem
	}
	return KindGeneric
}

// Blocks reports whether id occupies its tile.
func Blocks(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, CTagBlocking)
}
