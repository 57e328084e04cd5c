// Package action resolves one actor intent against the world.
//
// The set of actions is closed: Escape, Wait, Movement, Melee and Bump.
// Illegal attempts (walking into a wall, attacking empty air) are not
// errors; they resolve to a turn in which nothing happens. The only signal
// an action sends back to the turn driver is its Result.
package action

import (
	"io"

	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"

	"github.com/sirupsen/logrus"
)

// Result tells the turn driver whether to keep going.
type Result uint8

const (
	Continue Result = iota
	Terminate
)

func (r Result) String() string {
	if r == Terminate {
		return "terminate"
	}
	return "continue"
}

// MessageSink receives the text an action wants shown to the player.
type MessageSink interface {
	Add(text string)
}

// Context is everything an action may read or change while resolving.
// The turn driver builds one per resolution; actions never climb from an
// entity to find their map.
type Context struct {
	Map      *gamemap.GameMap
	Messages MessageSink
	Log      logrus.FieldLogger
}

func (ctx Context) world() *ecs.World { return ctx.Map.World() }

func (ctx Context) say(text string) {
	if ctx.Messages != nil {
		ctx.Messages.Add(text)
	}
}

func (ctx Context) logger() logrus.FieldLogger {
	if ctx.Log != nil {
		return ctx.Log
	}
	return discard
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Action is one intent. Only the types in this package implement it.
type Action interface {
	Perform(ctx Context) Result
	isAction()
}

// Resolve performs a and returns what the turn driver should do next.
func Resolve(ctx Context, a Action) Result {
	res := a.Perform(ctx)
	ctx.logger().WithFields(fields(a)).WithField("result", res).Debug("action resolved")
	return res
}

func fields(a Action) logrus.Fields {
	switch a := a.(type) {
	case Escape:
		return logrus.Fields{"action": "escape"}
	case Wait:
		return logrus.Fields{"action": "wait", "entity": a.Entity}
	case Movement:
		return logrus.Fields{"action": "move", "entity": a.Entity, "dx": a.DX, "dy": a.DY}
	case Melee:
		return logrus.Fields{"action": "melee", "entity": a.Entity, "dx": a.DX, "dy": a.DY}
	case Bump:
		return logrus.Fields{"action": "bump", "entity": a.Entity, "dx": a.DX, "dy": a.DY}
	}
	return logrus.Fields{}
}

// Escape ends the session. The driver must shut down cleanly when it sees
// Terminate.
type Escape struct{}

func (Escape) isAction() {}

func (Escape) Perform(ctx Context) Result {
	ctx.logger().Info("escape requested")
	return Terminate
}

// Wait spends a turn doing nothing.
type Wait struct {
	Entity ecs.EntityID
}

func (Wait) isAction() {}

func (Wait) Perform(Context) Result { return Continue }
