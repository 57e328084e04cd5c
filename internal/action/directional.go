package action

import (
	"fmt"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"

	"github.com/sirupsen/logrus"
)

// destination returns id's position offset by (dx, dy).
func destination(w *ecs.World, id ecs.EntityID, dx, dy int) (int, int, bool) {
	pos, ok := entity.PositionOf(w, id)
	if !ok {
		return 0, 0, false
	}
	return pos.X + dx, pos.Y + dy, true
}

// Movement steps Entity by (DX, DY) if the destination is in bounds,
// walkable and unoccupied. Otherwise nothing happens.
type Movement struct {
	Entity ecs.EntityID
	DX, DY int
}

func (Movement) isAction() {}

func (a Movement) Perform(ctx Context) Result {
	x, y, ok := destination(ctx.world(), a.Entity, a.DX, a.DY)
	if !ok {
		return Continue
	}
	if !ctx.Map.InBounds(x, y) {
		return Continue
	}
	if !ctx.Map.IsWalkable(x, y) {
		return Continue
	}
	if _, blocked := ctx.Map.BlockingEntityAt(x, y); blocked {
		return Continue
	}
	entity.Move(ctx.world(), a.Entity, a.DX, a.DY)
	return Continue
}

// Melee attacks whatever blocks the cell at (DX, DY). Nothing happens if
// the cell is empty.
type Melee struct {
	Entity ecs.EntityID
	DX, DY int
}

func (Melee) isAction() {}

func (a Melee) Perform(ctx Context) Result {
	w := ctx.world()
	x, y, ok := destination(w, a.Entity, a.DX, a.DY)
	if !ok {
		return Continue
	}
	target, ok := ctx.Map.BlockingEntityAt(x, y)
	if !ok {
		return Continue
	}
	ctx.logger().WithFields(logrus.Fields{
		"entity": a.Entity,
		"target": target,
	}).Debug("melee")

	attacker, aok := entity.FighterOf(w, a.Entity)
	defender, dok := entity.FighterOf(w, target)
	if !aok || !dok {
		ctx.say(fmt.Sprintf("You kick the %s, much to its annoyance!", entity.NameOf(w, target)))
		return Continue
	}

	targetName := entity.NameOf(w, target)
	desc := fmt.Sprintf("%s attacks %s", entity.NameOf(w, a.Entity), targetName)
	damage := attacker.Power - defender.Defense
	if damage <= 0 {
		ctx.say(desc + " but does no damage.")
		return Continue
	}
	ctx.say(fmt.Sprintf("%s for %d hit points.", desc, damage))
	if entity.TakeDamage(w, target, damage) {
		if w.Has(target, component.CTagPlayer) {
			ctx.say("You died!")
		} else {
			ctx.say(targetName + " is dead!")
		}
	}
	return Continue
}

// Bump is the move-or-attack intent: Melee if something blocks the
// destination, Movement otherwise.
type Bump struct {
	Entity ecs.EntityID
	DX, DY int
}

func (Bump) isAction() {}

func (a Bump) Perform(ctx Context) Result {
	x, y, ok := destination(ctx.world(), a.Entity, a.DX, a.DY)
	if !ok {
		return Continue
	}
	if _, blocked := ctx.Map.BlockingEntityAt(x, y); blocked {
		return Melee(a).Perform(ctx)
	}
	return Movement(a).Perform(ctx)
}
