package generate

import (
	"errors"
	"math/rand"
	"testing"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

type dungeonFixture struct {
	atlas  *gamemap.Atlas
	player ecs.EntityID
	orc    ecs.EntityID
	potion ecs.EntityID
}

func newDungeonFixture() dungeonFixture {
	atlas := gamemap.NewAtlas(ecs.NewWorld())
	w := atlas.World()
	player := entity.NewActor(w, entity.ActorSpec{
		Visual:  entity.Visual{Name: "Player", Glyph: "@"},
		Fighter: component.Fighter{HP: 30, MaxHP: 30},
	})
	w.Add(player, component.TagPlayer{})
	return dungeonFixture{
		atlas:  atlas,
		player: player,
		orc: entity.NewActor(w, entity.ActorSpec{
			Visual:  entity.Visual{Name: "Orc", Glyph: "o"},
			Fighter: component.Fighter{HP: 10, MaxHP: 10},
		}),
		potion: entity.NewItem(w, entity.ItemSpec{Visual: entity.Visual{Name: "Potion", Glyph: "!"}}),
	}
}

func (f dungeonFixture) options(seed int64) Options {
	return Options{
		Width:              60,
		Height:             30,
		Layout:             DefaultLayout,
		Player:             f.player,
		Monsters:           []Entry{{Template: f.orc, Weight: 1}},
		Items:              []Entry{{Template: f.potion, Weight: 1}},
		MaxMonstersPerRoom: 3,
		MaxItemsPerRoom:    2,
		Rand:               rand.New(rand.NewSource(seed)),
	}
}

func TestDungeonPlacesPlayerInFirstRoom(t *testing.T) {
	f := newDungeonFixture()
	lvl, err := Dungeon(f.atlas, f.options(1))
	if err != nil {
		t.Fatalf("Dungeon: %v", err)
	}
	w := f.atlas.World()
	if lvl.Player == f.player {
		t.Fatal("the player must be a copy of the template")
	}
	p, _ := entity.PositionOf(w, lvl.Player)
	if !lvl.Rooms[0].Contains(p.X, p.Y) {
		t.Errorf("player at (%d,%d) outside first room %v", p.X, p.Y, lvl.Rooms[0])
	}
	if !lvl.Map.HasEntity(lvl.Player) {
		t.Error("player must be registered on the level")
	}
	if m, ok := f.atlas.Map(lvl.Map.ID); !ok || m != lvl.Map {
		t.Error("level map must be resolvable through the atlas")
	}
}

func TestDungeonSpawnsOnFreeFloor(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		f := newDungeonFixture()
		lvl, err := Dungeon(f.atlas, f.options(seed))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		w := f.atlas.World()
		seen := make(map[[2]int]bool)
		for _, id := range lvl.Map.Entities() {
			p, _ := entity.PositionOf(w, id)
			if !lvl.Map.IsWalkable(p.X, p.Y) {
				t.Errorf("seed=%d: entity %d on a wall at (%d,%d)", seed, id, p.X, p.Y)
			}
			cell := [2]int{p.X, p.Y}
			if seen[cell] {
				t.Errorf("seed=%d: two entities share (%d,%d)", seed, p.X, p.Y)
			}
			seen[cell] = true
			if lvl.Rooms[0].Contains(p.X, p.Y) && id != lvl.Player {
				t.Errorf("seed=%d: entity %d spawned in the starting room", seed, id)
			}
		}
	}
}

func TestDungeonRejectsTinyMaps(t *testing.T) {
	f := newDungeonFixture()
	opts := f.options(1)
	opts.Width, opts.Height = 3, 3
	if _, err := Dungeon(f.atlas, opts); !errors.Is(err, ErrNoRooms) {
		t.Errorf("err = %v; want ErrNoRooms", err)
	}
	if _, ok := f.atlas.Map(1); ok {
		t.Error("a failed level must not stay registered in the atlas")
	}

	opts.Width = 0
	if _, err := Dungeon(f.atlas, opts); !errors.Is(err, gamemap.ErrInvalidDimensions) {
		t.Errorf("err = %v; want ErrInvalidDimensions", err)
	}
}

func TestDungeonFailedSpawnLeavesNothingBehind(t *testing.T) {
	f := newDungeonFixture()
	opts := f.options(3)
	opts.Monsters = []Entry{{Template: 999, Weight: 1}}
	opts.MaxMonstersPerRoom = 5

	// Spawning the unknown template fails once a room rolls a monster.
	_, err := Dungeon(f.atlas, opts)
	if !errors.Is(err, entity.ErrNotEntity) {
		t.Fatalf("err = %v; want ErrNotEntity", err)
	}
	if _, ok := f.atlas.Map(1); ok {
		t.Error("a failed level must not stay registered in the atlas")
	}
	for id := ecs.EntityID(1); id < 200; id++ {
		if f.atlas.World().Has(id, component.CTagPlayer) && id != f.player {
			t.Fatalf("spawned player %d survived the rollback", id)
		}
	}
}

func TestPickHonorsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	table := []Entry{{Template: 1, Weight: 0}, {Template: 2, Weight: 5}}
	for range 100 {
		if got := pick(table, rng); got != 2 {
			t.Fatalf("pick = %d; a zero-weight entry must never be chosen", got)
		}
	}
}
