package factory

import (
	"testing"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

func TestTemplatesAreUnplaced(t *testing.T) {
	w := ecs.NewWorld()
	tpl := NewTemplates(w, 26)

	for name, id := range map[string]ecs.EntityID{
		"player": tpl.Player,
		"orc":    tpl.Orc,
		"troll":  tpl.Troll,
		"potion": tpl.HealthPotion,
		"scroll": tpl.LightningScroll,
	} {
		if !w.Alive(id) {
			t.Errorf("%s template is not alive", name)
			continue
		}
		if owner := entity.OwnerOf(w, id); owner.Kind != component.OwnerNone {
			t.Errorf("%s template owner = %+v; want none", name, owner)
		}
	}
}

func TestActorTemplateStats(t *testing.T) {
	w := ecs.NewWorld()
	tpl := NewTemplates(w, 26)

	tests := []struct {
		name    string
		id      ecs.EntityID
		glyph   string
		fighter component.Fighter
	}{
		{"Player", tpl.Player, "@", component.Fighter{HP: 30, MaxHP: 30, Defense: 2, Power: 5}},
		{"Orc", tpl.Orc, "o", component.Fighter{HP: 10, MaxHP: 10, Defense: 0, Power: 3}},
		{"Troll", tpl.Troll, "T", component.Fighter{HP: 16, MaxHP: 16, Defense: 1, Power: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if k := component.KindOf(w, tt.id); k != component.KindActor {
				t.Errorf("kind = %v; want actor", k)
			}
			if got := entity.NameOf(w, tt.id); got != tt.name {
				t.Errorf("name = %q; want %q", got, tt.name)
			}
			r := w.Get(tt.id, component.CRenderable).(component.Renderable)
			if r.Glyph != tt.glyph {
				t.Errorf("glyph = %q; want %q", r.Glyph, tt.glyph)
			}
			f, ok := entity.FighterOf(w, tt.id)
			if !ok || f != tt.fighter {
				t.Errorf("fighter = %+v; want %+v", f, tt.fighter)
			}
			inv := w.Get(tt.id, component.CInventory).(component.Inventory)
			if inv.Capacity != 26 {
				t.Errorf("capacity = %d; want 26", inv.Capacity)
			}
		})
	}
}

func TestOnlyPlayerIsTagged(t *testing.T) {
	w := ecs.NewWorld()
	tpl := NewTemplates(w, 5)
	if !w.Has(tpl.Player, component.CTagPlayer) {
		t.Error("player template must carry TagPlayer")
	}
	if w.Has(tpl.Orc, component.CTagPlayer) || w.Has(tpl.Troll, component.CTagPlayer) {
		t.Error("monsters must not carry TagPlayer")
	}
}

func TestItemTemplates(t *testing.T) {
	w := ecs.NewWorld()
	tpl := NewTemplates(w, 5)

	potion := w.Get(tpl.HealthPotion, component.CConsumable).(component.Consumable)
	if potion.Kind != component.ConsumeHealing || potion.Amount != 4 {
		t.Errorf("potion = %+v", potion)
	}
	scroll := w.Get(tpl.LightningScroll, component.CConsumable).(component.Consumable)
	if scroll.Kind != component.ConsumeLightning || scroll.Amount != 20 || scroll.Range != 5 {
		t.Errorf("scroll = %+v", scroll)
	}
	if component.Blocks(w, tpl.HealthPotion) {
		t.Error("items must not block")
	}
}

func TestSpawnedCopiesAreIndependent(t *testing.T) {
	atlas := gamemap.NewAtlas(ecs.NewWorld())
	m, err := atlas.NewMap(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	tpl := NewTemplates(atlas.World(), 5)

	a, err := entity.Spawn(m, tpl.Orc, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := entity.Spawn(m, tpl.Orc, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	entity.TakeDamage(atlas.World(), a, 4)

	fb, _ := entity.FighterOf(atlas.World(), b)
	ft, _ := entity.FighterOf(atlas.World(), tpl.Orc)
	if fb.HP != 10 || ft.HP != 10 {
		t.Errorf("damage leaked: copy HP %d, template HP %d", fb.HP, ft.HP)
	}
	if m.HasEntity(tpl.Orc) {
		t.Error("template must not be registered on the map")
	}
}
