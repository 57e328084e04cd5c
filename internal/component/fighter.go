package component

import "tile-roguelike/internal/ecs"

const CFighter ecs.ComponentType = 2

// Fighter holds combat stats. HP is kept within [0, MaxHP] by the entity
// package; the struct itself is plain data.
type Fighter struct {
	HP, MaxHP int
	Defense   int
	Power     int
}

func (Fighter) Type() ecs.ComponentType { return CFighter }
func (f Fighter) Clone() ecs.Component { return f }
