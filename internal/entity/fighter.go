package entity

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// CorpseColor is the colour of remains left by a dead actor.
var CorpseColor = tcell.NewRGBColor(191, 0, 0)

// FighterOf returns id's combat stats.
func FighterOf(w *ecs.World, id ecs.EntityID) (component.Fighter, bool) {
	c := w.Get(id, component.CFighter)
	if c == nil {
		return component.Fighter{}, false
	}
	return c.(component.Fighter), true
}

// TakeDamage lowers id's HP by amount, never below zero, and turns the
// actor into a corpse when HP reaches zero. Reports whether it died.
func TakeDamage(w *ecs.World, id ecs.EntityID, amount int) bool {
	f, ok := FighterOf(w, id)
	if !ok || amount <= 0 {
		return false
	}
	f.HP = max(f.HP-amount, 0)
	w.Add(id, f)
	if f.HP == 0 && IsAlive(w, id) {
		Die(w, id)
		return true
	}
	return false
}

// Heal raises id's HP by up to amount, capped at MaxHP, and returns how
// much was actually recovered.
func Heal(w *ecs.World, id ecs.EntityID, amount int) int {
	f, ok := FighterOf(w, id)
	if !ok || amount <= 0 {
		return 0
	}
	before := f.HP
	f.HP = min(f.HP+amount, f.MaxHP)
	w.Add(id, f)
	return f.HP - before
}

// Die turns an actor into a corpse. The entity stays on its map but loses
// its AI and stops blocking movement.
func Die(w *ecs.World, id ecs.EntityID) {
	name := NameOf(w, id)
	w.Remove(id, component.CAI)
	w.Remove(id, component.CTagBlocking)
	w.Add(id, component.Renderable{Glyph: "%", Color: CorpseColor, RenderOrder: component.RenderCorpse})
	w.Add(id, component.Name{Name: "remains of " + name})
}
