package system

import (
	"testing"

	"tile-roguelike/internal/action"
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

// newAIWorld puts the player at (px, py) on a 20x20 open map with full
// visibility around them.
func newAIWorld(t *testing.T, px, py int) (*gamemap.Atlas, *gamemap.GameMap, ecs.EntityID) {
	t.Helper()
	a := gamemap.NewAtlas(ecs.NewWorld())
	gmap, err := a.NewMap(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 20 {
		for x := range 20 {
			_ = gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	player, err := entity.Spawn(gmap, entity.NewActor(a.World(), entity.ActorSpec{
		Visual:  entity.Visual{Name: "Player", Glyph: "@"},
		Fighter: component.Fighter{HP: 30, MaxHP: 30, Defense: 1, Power: 3},
	}), px, py)
	if err != nil {
		t.Fatal(err)
	}
	a.World().Add(player, component.TagPlayer{})
	UpdateFOV(gmap, player, 8)
	return a, gmap, player
}

func addEnemy(t *testing.T, gmap *gamemap.GameMap, x, y int, behavior component.AIBehavior) ecs.EntityID {
	t.Helper()
	id, err := entity.Spawn(gmap, entity.NewActor(gmap.World(), entity.ActorSpec{
		Visual:  entity.Visual{Name: "Orc", Glyph: "o"},
		AI:      component.AI{Behavior: behavior, SightRange: 8},
		Fighter: component.Fighter{HP: 10, MaxHP: 10, Power: 4},
	}), x, y)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestEnemyActionsAdjacentAttacks(t *testing.T) {
	_, gmap, player := newAIWorld(t, 5, 5)
	orc := addEnemy(t, gmap, 6, 6, component.BehaviorHostile)

	acts := EnemyActions(gmap, player)
	if len(acts) != 1 {
		t.Fatalf("got %d actions; want 1", len(acts))
	}
	want := action.Melee{Entity: orc, DX: -1, DY: -1}
	if acts[0] != want {
		t.Fatalf("action = %#v; want %#v", acts[0], want)
	}
}

func TestEnemyActionsChaseStepsCloser(t *testing.T) {
	_, gmap, player := newAIWorld(t, 5, 5)
	orc := addEnemy(t, gmap, 9, 5, component.BehaviorHostile)

	acts := EnemyActions(gmap, player)
	want := action.Movement{Entity: orc, DX: -1, DY: 0}
	if len(acts) != 1 || acts[0] != want {
		t.Fatalf("actions = %#v; want [%#v]", acts, want)
	}
	action.Resolve(action.Context{Map: gmap}, acts[0])
	if pos, _ := entity.PositionOf(gmap.World(), orc); pos.X != 8 {
		t.Errorf("orc x = %d after chasing; want 8", pos.X)
	}
}

func TestEnemyActionsStationaryWaits(t *testing.T) {
	_, gmap, player := newAIWorld(t, 5, 5)
	turret := addEnemy(t, gmap, 9, 5, component.BehaviorStationary)

	acts := EnemyActions(gmap, player)
	if len(acts) != 1 || acts[0] != (action.Wait{Entity: turret}) {
		t.Fatalf("actions = %#v; want a single Wait", acts)
	}
}

func TestEnemyActionsOutOfSightWaits(t *testing.T) {
	_, gmap, player := newAIWorld(t, 2, 2)
	far := addEnemy(t, gmap, 18, 18, component.BehaviorHostile)

	acts := EnemyActions(gmap, player)
	if len(acts) != 1 || acts[0] != (action.Wait{Entity: far}) {
		t.Fatalf("actions = %#v; want a single Wait", acts)
	}
}

func TestEnemyActionsSkipsCorpsesAndDeadPlayer(t *testing.T) {
	_, gmap, player := newAIWorld(t, 5, 5)
	orc := addEnemy(t, gmap, 6, 5, component.BehaviorHostile)
	entity.Die(gmap.World(), orc)

	if acts := EnemyActions(gmap, player); len(acts) != 0 {
		t.Fatalf("corpses must not act; got %#v", acts)
	}

	addEnemy(t, gmap, 7, 5, component.BehaviorHostile)
	entity.Die(gmap.World(), player)
	if acts := EnemyActions(gmap, player); acts != nil {
		t.Fatalf("no actions expected once the player is dead; got %#v", acts)
	}
}
