package component

import "tile-roguelike/internal/ecs"

const CName ecs.ComponentType = 7

// Name is the display name used in combat and pickup messages.
type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }
func (n Name) Clone() ecs.Component { return n }
