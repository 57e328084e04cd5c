package component

import "tile-roguelike/internal/ecs"

const COwner ecs.ComponentType = 12

// MapID names a map in an atlas. The zero value is never assigned.
type MapID uint32

// OwnerKind says which half of the Owner union is set.
type OwnerKind uint8

const (
	OwnerNone OwnerKind = iota
	OwnerMap
	OwnerContainer
)

// Owner records the one place an entity currently belongs to: a map's
// entity set or an actor's inventory.
type Owner struct {
	Kind      OwnerKind
	Map       MapID
	Container ecs.EntityID
}

// MapOwner returns an Owner pointing at map id.
func MapOwner(id MapID) Owner { return Owner{Kind: OwnerMap, Map: id} }

// ContainerOwner returns an Owner pointing at the inventory held by holder.
func ContainerOwner(holder ecs.EntityID) Owner {
	return Owner{Kind: OwnerContainer, Container: holder}
}

func (Owner) Type() ecs.ComponentType { return COwner }
func (o Owner) Clone() ecs.Component { return o }
