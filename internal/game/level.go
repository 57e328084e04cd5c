package game

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/factory"
	"tile-roguelike/internal/gamemap"
)

var (
	ErrEmptyLevel   = errors.New("level has no rows")
	ErrPlayerCount  = errors.New("level must place exactly one player")
	ErrUnknownGlyph = errors.New("unknown level glyph")
)

// LoadLevel reads an ASCII level file.
//
//	# wall   . floor   @ player   o orc   T troll
//	! health potion    ? lightning scroll
func LoadLevel(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read level: %w", err)
	}
	return string(data), nil
}

// spawnAt is a template copy waiting to be placed.
type spawnAt struct {
	template ecs.EntityID
	x, y     int
}

// ParseLevel builds a map in atlas from an ASCII layout and spawns copies of
// the templates it names. Short rows are padded with wall. It returns the map
// and the spawned player.
func ParseLevel(atlas *gamemap.Atlas, tpl factory.Templates, layout string) (*gamemap.GameMap, ecs.EntityID, error) {
	rows := levelRows(layout)
	if len(rows) == 0 {
		return nil, ecs.NilEntity, ErrEmptyLevel
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var spawns []spawnAt
	players := 0
	floors := make([][]bool, len(rows))
	for y, row := range rows {
		floors[y] = make([]bool, width)
		for x, ch := range []byte(row) {
			var template ecs.EntityID
			switch ch {
			case '#', ' ':
				continue
			case '.':
			case '@':
				template = tpl.Player
				players++
			case 'o':
				template = tpl.Orc
			case 'T':
				template = tpl.Troll
			case '!':
				template = tpl.HealthPotion
			case '?':
				template = tpl.LightningScroll
			default:
				return nil, ecs.NilEntity, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownGlyph, ch, x, y)
			}
			floors[y][x] = true
			if template != ecs.NilEntity {
				spawns = append(spawns, spawnAt{template: template, x: x, y: y})
			}
		}
	}
	if players != 1 {
		return nil, ecs.NilEntity, fmt.Errorf("%w, found %d", ErrPlayerCount, players)
	}

	m, err := atlas.NewMap(width, len(rows))
	if err != nil {
		return nil, ecs.NilEntity, err
	}
	player, err := furnish(m, floors, spawns, tpl.Player)
	if err != nil {
		atlas.Discard(m.ID)
		return nil, ecs.NilEntity, err
	}
	return m, player, nil
}

// furnish lays floor tiles and spawns template copies on m.
func furnish(m *gamemap.GameMap, floors [][]bool, spawns []spawnAt, playerTemplate ecs.EntityID) (ecs.EntityID, error) {
	for y, row := range floors {
		for x, floor := range row {
			if floor {
				if err := m.Set(x, y, gamemap.MakeFloor()); err != nil {
					return ecs.NilEntity, err
				}
			}
		}
	}

	player := ecs.NilEntity
	for _, s := range spawns {
		id, err := entity.Spawn(m, s.template, s.x, s.y)
		if err != nil {
			return ecs.NilEntity, err
		}
		if s.template == playerTemplate {
			player = id
		}
	}
	return player, nil
}

// levelRows splits layout into rows, dropping leading and trailing blank
// lines and carriage returns.
func levelRows(layout string) []string {
	lines := strings.Split(strings.ReplaceAll(layout, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
