package component

import "tile-roguelike/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 8
	CTagBlocking ecs.ComponentType = 9
	CTagActor    ecs.ComponentType = 10
	CTagItem     ecs.ComponentType = 11
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
func (t TagPlayer) Clone() ecs.Component { return t }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
func (t TagBlocking) Clone() ecs.Component { return t }

// TagActor marks an entity built as an actor (AI + Fighter + Inventory).
// It survives death; liveness is the presence of CAI.
type TagActor struct{}

func (TagActor) Type() ecs.ComponentType { return CTagActor }
func (t TagActor) Clone() ecs.Component { return t }

// TagItem marks a pickup item.
type TagItem struct{}

func (TagItem) Type() ecs.ComponentType { return CTagItem }
func (t TagItem) Clone() ecs.Component { return t }
