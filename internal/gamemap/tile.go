package gamemap

import "github.com/gdamore/tcell/v2"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Graphic is what one cell looks like: a glyph and its colours.
type Graphic struct {
	Glyph string
	FG    tcell.Color
	BG    tcell.Color
}

// Fog is drawn for cells that are neither visible nor explored.
var Fog = Graphic{Glyph: " ", FG: tcell.ColorWhite, BG: tcell.ColorBlack}

// Tile holds the tile record for one map cell plus its visibility state.
// Dark is drawn when the cell is explored but out of sight, Light when it
// is currently visible.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Dark        Graphic
	Light       Graphic
	Explored    bool
	Visible     bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{
		Kind:  TileWall,
		Dark:  Graphic{Glyph: " ", FG: tcell.ColorWhite, BG: tcell.NewRGBColor(0, 0, 100)},
		Light: Graphic{Glyph: " ", FG: tcell.ColorWhite, BG: tcell.NewRGBColor(130, 110, 50)},
	}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{
		Kind:        TileFloor,
		Walkable:    true,
		Transparent: true,
		Dark:        Graphic{Glyph: " ", FG: tcell.ColorWhite, BG: tcell.NewRGBColor(50, 50, 150)},
		Light:       Graphic{Glyph: " ", FG: tcell.ColorWhite, BG: tcell.NewRGBColor(200, 180, 50)},
	}
}
