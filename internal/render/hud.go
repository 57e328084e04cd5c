package render

import (
	"fmt"

	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	atkText := ""
	if f, ok := entity.FighterOf(w, playerID); ok {
		hpText = fmt.Sprintf("HP: %d/%d", f.HP, f.MaxHP)
		atkText = fmt.Sprintf("  PWR:%d DEF:%d", f.Power, f.Defense)
	}
	r.drawText(0, hudY+1, hpText+atkText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
