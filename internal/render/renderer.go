package render

import (
	"tile-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the map.
const HUDRows = 5

// Renderer is a Surface backed by a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	bg     [][]gamemap.Graphic
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-HUDRows, 1)),
	}
}

// Resize recomputes the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 1)
}

// CenterOn recenters the camera on world position (x, y), keeping maps that
// fit on screen anchored at the origin.
func (r *Renderer) CenterOn(x, y, mapW, mapH int) {
	r.camera.Center(x, y)
	r.camera.Fit(mapW, mapH)
}

// DrawFrame clears the screen and paints f.
func (r *Renderer) DrawFrame(f Frame) {
	r.screen.Clear()
	Draw(r, f)
}

// SetBackground paints one graphic per world cell.
func (r *Renderer) SetBackground(cells [][]gamemap.Graphic) {
	r.bg = cells
	for y, row := range cells {
		for x, g := range row {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, g.Glyph, tcell.StyleDefault.Foreground(g.FG).Background(g.BG))
		}
	}
}

// Print draws glyph at world (x, y) over the cell's background colour.
func (r *Renderer) Print(x, y int, glyph string, fg tcell.Color) {
	sx, sy, onScreen := r.camera.WorldToScreen(x, y)
	if !onScreen {
		return
	}
	bg := tcell.ColorBlack
	if y >= 0 && y < len(r.bg) && x >= 0 && x < len(r.bg[y]) {
		bg = r.bg[y][x].BG
	}
	r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// Show flushes pending changes to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
