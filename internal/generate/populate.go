package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

// ErrNoRooms is returned when a level is too small to hold a room.
var ErrNoRooms = errors.New("generated level has no rooms")

// Entry is one weighted choice in a spawn table.
type Entry struct {
	Template ecs.EntityID
	Weight   int
}

// Options drives generation for one level.
type Options struct {
	Width, Height      int
	Layout             Layout
	Player             ecs.EntityID
	Monsters           []Entry
	Items              []Entry
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	Rand               *rand.Rand
}

// Level is a generated map with its player and rooms.
type Level struct {
	Map    *gamemap.GameMap
	Player ecs.EntityID
	Rooms  []Rect
}

// Dungeon creates a new map in atlas, carves it and spawns the player in the
// first room. Every other room gets up to the configured number of monsters
// and items.
func Dungeon(atlas *gamemap.Atlas, opts Options) (Level, error) {
	m, err := atlas.NewMap(opts.Width, opts.Height)
	if err != nil {
		return Level{}, err
	}
	lvl, err := fill(m, opts)
	if err != nil {
		atlas.Discard(m.ID)
		return Level{}, err
	}
	return lvl, nil
}

func fill(m *gamemap.GameMap, opts Options) (Level, error) {
	rooms := Carve(m, opts.Layout, opts.Rand)
	if len(rooms) == 0 {
		return Level{}, fmt.Errorf("%dx%d: %w", opts.Width, opts.Height, ErrNoRooms)
	}

	px, py := rooms[0].Center()
	player, err := entity.Spawn(m, opts.Player, px, py)
	if err != nil {
		return Level{}, fmt.Errorf("spawn player: %w", err)
	}

	occupied := map[[2]int]bool{{px, py}: true}
	for _, room := range rooms[1:] {
		if err := populate(m, room, opts.Monsters, opts.MaxMonstersPerRoom, opts.Rand, occupied); err != nil {
			return Level{}, err
		}
		if err := populate(m, room, opts.Items, opts.MaxItemsPerRoom, opts.Rand, occupied); err != nil {
			return Level{}, err
		}
	}
	return Level{Map: m, Player: player, Rooms: rooms}, nil
}

// populate spawns up to limit picks from table at free cells of room.
func populate(m *gamemap.GameMap, room Rect, table []Entry, limit int, rng *rand.Rand, occupied map[[2]int]bool) error {
	if len(table) == 0 || limit <= 0 {
		return nil
	}
	for range rng.Intn(limit + 1) {
		x, y, ok := pickFree(room, rng, occupied)
		if !ok {
			return nil
		}
		occupied[[2]int{x, y}] = true
		if _, err := entity.Spawn(m, pick(table, rng), x, y); err != nil {
			return fmt.Errorf("populate: %w", err)
		}
	}
	return nil
}

// pick draws a template from table with probability proportional to weight.
func pick(table []Entry, rng *rand.Rand) ecs.EntityID {
	total := 0
	for _, e := range table {
		total += max(e.Weight, 0)
	}
	if total == 0 {
		return table[rng.Intn(len(table))].Template
	}
	n := rng.Intn(total)
	for _, e := range table {
		n -= max(e.Weight, 0)
		if n < 0 {
			return e.Template
		}
	}
	return table[len(table)-1].Template
}

// pickFree tries up to 20 random cells inside room and returns the first
// that nothing has claimed.
func pickFree(room Rect, rng *rand.Rand, occupied map[[2]int]bool) (int, int, bool) {
	const maxAttempts = 20
	w := room.X2 - room.X1 + 1
	h := room.Y2 - room.Y1 + 1
	for range maxAttempts {
		x := room.X1 + rng.Intn(w)
		y := room.Y1 + rng.Intn(h)
		if !occupied[[2]int{x, y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}
