package component

import "tile-roguelike/internal/ecs"

const CPosition ecs.ComponentType = 1

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
func (p Position) Clone() ecs.Component { return p }
