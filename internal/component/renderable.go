package component

import (
	"tile-roguelike/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// RenderOrder ranks entities for drawing only; it has no gameplay meaning.
// Lower tiers are drawn first so higher tiers paint over them.
type RenderOrder uint8

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

type Renderable struct {
	Glyph       string
	Color       tcell.Color
	RenderOrder RenderOrder
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
func (r Renderable) Clone() ecs.Component { return r }
