package component

import "tile-roguelike/internal/ecs"

const CInventory ecs.ComponentType = 6

// Inventory lists the item entities an actor carries.
type Inventory struct {
	Items    []ecs.EntityID
	Capacity int
}

// Full reports whether no more items fit.
func (inv Inventory) Full() bool { return len(inv.Items) >= inv.Capacity }

func (Inventory) Type() ecs.ComponentType { return CInventory }

func (inv Inventory) Clone() ecs.Component {
	inv.Items = append([]ecs.EntityID(nil), inv.Items...)
	return inv
}
