// Package game drives turns: it decodes input into actions, resolves the
// player's action and then every enemy's, and redraws the screen.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"tile-roguelike/internal/action"
	"tile-roguelike/internal/config"
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/factory"
	"tile-roguelike/internal/gamemap"
	"tile-roguelike/internal/generate"
	"tile-roguelike/internal/render"
	"tile-roguelike/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// State tracks the main state machine.
type State uint8

const (
	StatePlaying State = iota
	StateDead
)

// Game is the top-level orchestrator.
type Game struct {
	cfg       config.Config
	log       logrus.FieldLogger
	renderer  *render.Renderer
	atlas     *gamemap.Atlas
	gmap      *gamemap.GameMap
	templates factory.Templates
	playerID  ecs.EntityID
	messages  MessageLog
	state     State
	turns     int
}

// New builds the level, from cfg.LevelFile when set and procedurally
// otherwise, and returns a Game ready to Run.
func New(cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	atlas := gamemap.NewAtlas(ecs.NewWorld())
	tpl := factory.NewTemplates(atlas.World(), cfg.InventoryCapacity)

	if cfg.LevelFile != "" {
		layout, err := LoadLevel(cfg.LevelFile)
		if err != nil {
			return nil, err
		}
		return fromLayout(cfg, log, atlas, tpl, layout)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("generating level")
	lvl, err := generate.Dungeon(atlas, generate.Options{
		Width:    cfg.MapWidth,
		Height:   cfg.MapHeight,
		Layout:   generate.DefaultLayout,
		Player:   tpl.Player,
		Monsters: []generate.Entry{{Template: tpl.Orc, Weight: 80}, {Template: tpl.Troll, Weight: 20}},
		Items: []generate.Entry{
			{Template: tpl.HealthPotion, Weight: 70},
			{Template: tpl.LightningScroll, Weight: 30},
		},
		MaxMonstersPerRoom: cfg.MaxMonsters,
		MaxItemsPerRoom:    cfg.MaxItems,
		Rand:               rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}
	return start(cfg, log, atlas, tpl, lvl.Map, lvl.Player), nil
}

func fromLayout(cfg config.Config, log logrus.FieldLogger, atlas *gamemap.Atlas, tpl factory.Templates, layout string) (*Game, error) {
	gmap, player, err := ParseLevel(atlas, tpl, layout)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return start(cfg, log, atlas, tpl, gmap, player), nil
}

func start(cfg config.Config, log logrus.FieldLogger, atlas *gamemap.Atlas, tpl factory.Templates, gmap *gamemap.GameMap, player ecs.EntityID) *Game {
	g := &Game{
		cfg:       cfg,
		log:       log,
		atlas:     atlas,
		gmap:      gmap,
		templates: tpl,
		playerID:  player,
	}
	system.UpdateFOV(g.gmap, g.playerID, g.cfg.FOVRadius)
	log.WithFields(logrus.Fields{
		"width":    gmap.Width,
		"height":   gmap.Height,
		"entities": len(gmap.Entities()),
	}).Info("level loaded")
	return g
}

// Run takes over screen until the player quits.
func (g *Game) Run(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	g.renderer = render.NewRenderer(screen)

	g.messages.Add("Use hjklyubn or arrow keys to move. Esc quits.")
	for {
		g.draw()
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			cmd, slot := keyToCommand(ev)
			if g.Handle(cmd, slot) == action.Terminate {
				g.log.WithField("turns", g.turns).Info("game over")
				return nil
			}
		}
	}
}

// Handle processes one player command. Commands that spend the player's turn
// are followed by every enemy's turn and a field-of-view update.
func (g *Game) Handle(cmd Command, slot int) action.Result {
	if cmd == CmdQuit {
		return action.Resolve(g.context(), action.Escape{})
	}
	if g.state == StateDead || cmd == CmdNone {
		return action.Continue
	}

	var spent bool
	switch cmd {
	case CmdPickup:
		spent = g.pickup()
	case CmdDrop:
		spent = g.drop()
	case CmdUse:
		spent = g.useItem(slot)
	case CmdWait:
		spent = true
		action.Resolve(g.context(), action.Wait{Entity: g.playerID})
	default:
		dx, dy := commandToDelta(cmd)
		if action.Resolve(g.context(), action.Bump{Entity: g.playerID, DX: dx, DY: dy}) == action.Terminate {
			return action.Terminate
		}
		spent = true
	}
	if spent {
		g.endTurn()
	}
	return action.Continue
}

func (g *Game) endTurn() {
	g.turns++
	ctx := g.context()
	for _, act := range system.EnemyActions(g.gmap, g.playerID) {
		action.Resolve(ctx, act)
	}
	if !entity.IsAlive(g.atlas.World(), g.playerID) {
		g.state = StateDead
		g.log.WithField("turns", g.turns).Info("player died")
	}
	system.UpdateFOV(g.gmap, g.playerID, g.cfg.FOVRadius)
}

func (g *Game) context() action.Context {
	return action.Context{Map: g.gmap, Messages: &g.messages, Log: g.log}
}

func (g *Game) draw() {
	if pos, ok := entity.PositionOf(g.atlas.World(), g.playerID); ok {
		g.renderer.CenterOn(pos.X, pos.Y, g.gmap.Width, g.gmap.Height)
	}
	g.renderer.DrawFrame(render.Project(g.gmap))
	g.renderer.DrawHUD(g.atlas.World(), g.playerID, g.messages.Lines())
	g.renderer.Show()
}
