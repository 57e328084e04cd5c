package game

import (
	"errors"
	"fmt"
	"math"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"

	"github.com/sirupsen/logrus"
)

// pickup stores the first item under the player. Reports whether a turn
// was spent.
func (g *Game) pickup() bool {
	w := g.atlas.World()
	pos, ok := entity.PositionOf(w, g.playerID)
	if !ok {
		return false
	}
	items := g.gmap.ItemsAt(pos.X, pos.Y)
	if len(items) == 0 {
		g.messages.Add("There is nothing here to pick up.")
		return false
	}
	item := items[0]
	name := entity.NameOf(w, item)
	if err := entity.Store(g.atlas, item, g.playerID); err != nil {
		if errors.Is(err, entity.ErrInventoryFull) {
			g.messages.Add("Your inventory is full.")
		} else {
			g.log.WithError(err).Warn("pickup failed")
		}
		return false
	}
	g.messages.Add(fmt.Sprintf("You picked up the %s!", name))
	return true
}

// drop puts the most recently picked-up item back on the player's cell.
func (g *Game) drop() bool {
	w := g.atlas.World()
	inv := entity.Inventory(w, g.playerID)
	if len(inv) == 0 {
		g.messages.Add("You have nothing to drop.")
		return false
	}
	pos, ok := entity.PositionOf(w, g.playerID)
	if !ok {
		return false
	}
	item := inv[len(inv)-1]
	if err := entity.Place(g.atlas, item, pos.X, pos.Y, g.gmap); err != nil {
		g.log.WithError(err).Warn("drop failed")
		return false
	}
	g.messages.Add(fmt.Sprintf("You dropped the %s.", entity.NameOf(w, item)))
	return true
}

// useItem consumes the item in the given inventory slot.
func (g *Game) useItem(slot int) bool {
	w := g.atlas.World()
	inv := entity.Inventory(w, g.playerID)
	if slot < 0 || slot >= len(inv) {
		g.messages.Add("You have no item in that slot.")
		return false
	}
	item := inv[slot]
	c := w.Get(item, component.CConsumable)
	if c == nil {
		g.messages.Add("You cannot use that.")
		return false
	}
	consumable := c.(component.Consumable)
	g.log.WithFields(logrus.Fields{
		"entity": g.playerID,
		"item":   item,
	}).Debug("use item")

	switch consumable.Kind {
	case component.ConsumeHealing:
		recovered := entity.Heal(w, g.playerID, consumable.Amount)
		if recovered == 0 {
			g.messages.Add("Your health is already full.")
			return false
		}
		g.messages.Add(fmt.Sprintf("You consume the %s, and recover %d HP!", entity.NameOf(w, item), recovered))
	case component.ConsumeLightning:
		target, ok := g.nearestVisibleEnemy(consumable.Range)
		if !ok {
			g.messages.Add("No enemy is close enough to strike.")
			return false
		}
		name := entity.NameOf(w, target)
		g.messages.Add(fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder, for %d damage!", name, consumable.Amount))
		if entity.TakeDamage(w, target, consumable.Amount) {
			g.messages.Add(name + " is dead!")
		}
	}
	if err := entity.Remove(g.atlas, item); err != nil {
		g.log.WithError(err).Warn("remove used item")
	}
	return true
}

// nearestVisibleEnemy returns the closest living non-player actor standing
// on a visible cell within maxRange of the player.
func (g *Game) nearestVisibleEnemy(maxRange int) (ecs.EntityID, bool) {
	w := g.atlas.World()
	pos, ok := entity.PositionOf(w, g.playerID)
	if !ok {
		return ecs.NilEntity, false
	}
	best := ecs.NilEntity
	bestDist := math.Inf(1)
	for _, id := range g.gmap.LivingActors() {
		if id == g.playerID {
			continue
		}
		p, _ := entity.PositionOf(w, id)
		if !g.gmap.IsVisible(p.X, p.Y) {
			continue
		}
		d := entity.Distance(w, id, pos.X, pos.Y)
		if d <= float64(maxRange) && d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, best != ecs.NilEntity
}
