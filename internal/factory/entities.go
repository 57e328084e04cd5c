// Package factory holds the prototype entities that levels spawn copies of.
package factory

import (
	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// Templates are unplaced prototype entities. They never sit on a map;
// entity.Spawn copies them onto one.
type Templates struct {
	Player          ecs.EntityID
	Orc             ecs.EntityID
	Troll           ecs.EntityID
	HealthPotion    ecs.EntityID
	LightningScroll ecs.EntityID
}

// NewTemplates creates every prototype in w. Actors get an inventory of the
// given capacity.
func NewTemplates(w *ecs.World, capacity int) Templates {
	return Templates{
		Player:          NewPlayer(w, capacity),
		Orc:             NewOrc(w, capacity),
		Troll:           NewTroll(w, capacity),
		HealthPotion:    NewHealthPotion(w),
		LightningScroll: NewLightningScroll(w),
	}
}

// NewPlayer creates the player prototype.
func NewPlayer(w *ecs.World, capacity int) ecs.EntityID {
	id := entity.NewActor(w, entity.ActorSpec{
		Visual:   entity.Visual{Name: "Player", Glyph: "@", Color: tcell.ColorWhite},
		Fighter:  component.Fighter{HP: 30, MaxHP: 30, Defense: 2, Power: 5},
		Capacity: capacity,
	})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewOrc creates the orc prototype.
func NewOrc(w *ecs.World, capacity int) ecs.EntityID {
	return entity.NewActor(w, entity.ActorSpec{
		Visual:   entity.Visual{Name: "Orc", Glyph: "o", Color: tcell.NewRGBColor(63, 127, 63)},
		AI:       component.AI{Behavior: component.BehaviorHostile, SightRange: 8},
		Fighter:  component.Fighter{HP: 10, MaxHP: 10, Defense: 0, Power: 3},
		Capacity: capacity,
	})
}

// NewTroll creates the troll prototype.
func NewTroll(w *ecs.World, capacity int) ecs.EntityID {
	return entity.NewActor(w, entity.ActorSpec{
		Visual:   entity.Visual{Name: "Troll", Glyph: "T", Color: tcell.NewRGBColor(0, 127, 0)},
		AI:       component.AI{Behavior: component.BehaviorHostile, SightRange: 8},
		Fighter:  component.Fighter{HP: 16, MaxHP: 16, Defense: 1, Power: 4},
		Capacity: capacity,
	})
}

// NewHealthPotion creates the healing potion prototype.
func NewHealthPotion(w *ecs.World) ecs.EntityID {
	return entity.NewItem(w, entity.ItemSpec{
		Visual:     entity.Visual{Name: "Health Potion", Glyph: "!", Color: tcell.NewRGBColor(127, 0, 255)},
		Consumable: component.Consumable{Kind: component.ConsumeHealing, Amount: 4},
	})
}

// NewLightningScroll creates the lightning scroll prototype.
func NewLightningScroll(w *ecs.World) ecs.EntityID {
	return entity.NewItem(w, entity.ItemSpec{
		Visual:     entity.Visual{Name: "Lightning Scroll", Glyph: "?", Color: tcell.NewRGBColor(255, 255, 0)},
		Consumable: component.Consumable{Kind: component.ConsumeLightning, Amount: 20, Range: 5},
	})
}
