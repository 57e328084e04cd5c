package system

import (
	"tile-roguelike/internal/action"
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

// EnemyActions decides one action for every living actor on gmap other than
// target. The actions are returned, not resolved; the turn driver resolves
// them in order so each sees the world left by the previous one.
//
// An enemy notices target when it stands on a visible cell within its sight
// range. Adjacent enemies attack, hostile ones further away step closer and
// everything else waits.
func EnemyActions(gmap *gamemap.GameMap, target ecs.EntityID) []action.Action {
	w := gmap.World()
	targetPos, ok := entity.PositionOf(w, target)
	if !ok || !entity.IsAlive(w, target) {
		return nil
	}

	var out []action.Action
	for _, id := range gmap.LivingActors() {
		if id == target || w.Has(id, component.CTagPlayer) {
			continue
		}
		out = append(out, decide(gmap, id, targetPos))
	}
	return out
}

func decide(gmap *gamemap.GameMap, id ecs.EntityID, targetPos component.Position) action.Action {
	w := gmap.World()
	ai := w.Get(id, component.CAI).(component.AI)
	pos, ok := entity.PositionOf(w, id)
	if !ok {
		return action.Wait{Entity: id}
	}

	if !gmap.IsVisible(pos.X, pos.Y) ||
		entity.Distance(w, id, targetPos.X, targetPos.Y) > float64(ai.SightRange) {
		return action.Wait{Entity: id}
	}

	dx, dy := targetPos.X-pos.X, targetPos.Y-pos.Y
	if max(abs(dx), abs(dy)) <= 1 {
		return action.Melee{Entity: id, DX: dx, DY: dy}
	}
	if ai.Behavior == component.BehaviorStationary {
		return action.Wait{Entity: id}
	}
	return action.Movement{Entity: id, DX: sign(dx), DY: sign(dy)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
