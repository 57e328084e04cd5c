// Package generate carves random dungeon levels using binary space
// partitioning.
package generate

import (
	"math/rand"

	"tile-roguelike/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Rect is an axis-aligned rectangle used for rooms. Edges are inclusive.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Layout controls the shape of a generated level.
type Layout struct {
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
}

// DefaultLayout suits an 80x43 level.
var DefaultLayout = Layout{
	MinLeafSize: 8,
	MaxLeafSize: 20,
	MinRoomSize: 4,
	RoomPadding: 1,
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

func (l *bspLeaf) isLeaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(lay Layout, rng *rand.Rand) bool {
	if !l.isLeaf() {
		return false
	}
	// Split across the longer side once the aspect ratio is lopsided.
	splitH := rng.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := lay.MinLeafSize, size-lay.MinLeafSize
	if size <= lay.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := lo + rng.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves a room inside every terminal leaf and appends it to rooms.
func (l *bspLeaf) createRooms(gmap *gamemap.GameMap, lay Layout, rng *rand.Rand, rooms *[]Rect) {
	if !l.isLeaf() {
		if l.left != nil {
			l.left.createRooms(gmap, lay, rng, rooms)
		}
		if l.right != nil {
			l.right.createRooms(gmap, lay, rng, rooms)
		}
		return
	}

	pad := lay.RoomPadding
	availW := max(l.W-2*pad, lay.MinRoomSize)
	availH := max(l.H-2*pad, lay.MinRoomSize)
	rw := lay.MinRoomSize + rng.Intn(max(1, availW-lay.MinRoomSize+1))
	rh := lay.MinRoomSize + rng.Intn(max(1, availH-lay.MinRoomSize+1))
	rw = max(min(rw, l.W-2*pad), 3)
	rh = max(min(rh, l.H-2*pad), 3)

	rx := max(l.X+pad+rng.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+rng.Intn(max(1, l.H-rh-2*pad+1)), 1)
	// Keep a one-tile wall border around the level.
	rw = min(rw, gmap.Width-rx-1)
	rh = min(rh, gmap.Height-ry-1)
	if rw < 3 || rh < 3 {
		return
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			_ = gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	*rooms = append(*rooms, room)
}

// getRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.getRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.getRoom()
	}
	return nil
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(gmap *gamemap.GameMap, lay Layout, rng *rand.Rand) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(gmap, lay, rng)
	l.right.connectChildren(gmap, lay, rng)

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := lRoom.Center()
	rx, ry := rRoom.Center()
	carveCorridor(gmap, lx, ly, rx, ry, lay.CorridorStyle, rng)
}

// Carve digs rooms and corridors into gmap, which should start as solid
// wall, and returns the rooms in carving order.
func Carve(gmap *gamemap.GameMap, lay Layout, rng *rand.Rand) []Rect {
	root := &bspLeaf{W: gmap.Width, H: gmap.Height}

	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if !leaf.isLeaf() {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > lay.MaxLeafSize || leaf.H > lay.MaxLeafSize || rng.Float64() > 0.25 {
				if leaf.split(lay, rng) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	var rooms []Rect
	root.createRooms(gmap, lay, rng, &rooms)
	root.connectChildren(gmap, lay, rng)
	return rooms
}
