package render

import (
	"sort"

	"tile-roguelike/internal/component"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Glyph is one entity to draw on top of the background.
type Glyph struct {
	Entity ecs.EntityID
	X, Y   int
	Glyph  string
	Color  tcell.Color
	Order  component.RenderOrder
}

// Frame is everything an external renderer needs to paint one map:
// a background graphic per cell and the entity glyphs in draw order.
type Frame struct {
	Width, Height int
	Background    [][]gamemap.Graphic // indexed [y][x]
	Glyphs        []Glyph             // ascending render order
}

// Project builds a Frame from the current state of m.
// Visible cells use their lit graphic, explored cells their dark graphic and
// everything else is fog. Only entities on visible cells are listed.
func Project(m *gamemap.GameMap) Frame {
	f := Frame{
		Width:      m.Width,
		Height:     m.Height,
		Background: make([][]gamemap.Graphic, m.Height),
	}
	for y := 0; y < m.Height; y++ {
		row := make([]gamemap.Graphic, m.Width)
		for x := 0; x < m.Width; x++ {
			tile := &m.Tiles[y][x]
			switch {
			case tile.Visible:
				row[x] = tile.Light
			case tile.Explored:
				row[x] = tile.Dark
			default:
				row[x] = gamemap.Fog
			}
		}
		f.Background[y] = row
	}

	w := m.World()
	for _, id := range m.Entities() {
		posComp := w.Get(id, component.CPosition)
		rendComp := w.Get(id, component.CRenderable)
		if posComp == nil || rendComp == nil {
			continue
		}
		pos := posComp.(component.Position)
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		rend := rendComp.(component.Renderable)
		f.Glyphs = append(f.Glyphs, Glyph{
			Entity: id,
			X:      pos.X,
			Y:      pos.Y,
			Glyph:  rend.Glyph,
			Color:  rend.Color,
			Order:  rend.RenderOrder,
		})
	}

	// Lower order is drawn first so live actors paint over corpses and items.
	sort.SliceStable(f.Glyphs, func(i, j int) bool {
		return f.Glyphs[i].Order < f.Glyphs[j].Order
	})
	return f
}

// Surface is the render sink: it accepts a full background buffer and then
// individual glyphs in the order they should be painted.
type Surface interface {
	SetBackground(cells [][]gamemap.Graphic)
	Print(x, y int, glyph string, fg tcell.Color)
}

// Draw paints f onto s.
func Draw(s Surface, f Frame) {
	s.SetBackground(f.Background)
	for _, g := range f.Glyphs {
		s.Print(g.X, g.Y, g.Glyph, g.Color)
	}
}
