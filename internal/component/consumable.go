package component

import "tile-roguelike/internal/ecs"

const CConsumable ecs.ComponentType = 13

// ConsumableKind selects what happens when an item is used.
type ConsumableKind uint8

const (
	ConsumeHealing ConsumableKind = iota
	ConsumeLightning
)

type Consumable struct {
	Kind   ConsumableKind
	Amount int // HP restored or damage dealt
	Range  int // lightning only
}

func (Consumable) Type() ecs.ComponentType { return CConsumable }
func (c Consumable) Clone() ecs.Component { return c }
