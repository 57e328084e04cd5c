package component

import "tile-roguelike/internal/ecs"

const CAI ecs.ComponentType = 5

// AIBehavior describes how an actor acts each turn.
type AIBehavior uint8

const (
	BehaviorHostile    AIBehavior = iota // bump toward the player when in sight
	BehaviorStationary                   // never moves
)

// AI is the actor's turn policy. Its presence is what makes an actor alive.
type AI struct {
	Behavior   AIBehavior
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }
func (a AI) Clone() ecs.Component { return a }
