package generate

import (
	"math/rand"
	"testing"

	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/gamemap"
)

func carveTestMap(t *testing.T, seed int64, style CorridorStyle) (*gamemap.GameMap, []Rect) {
	t.Helper()
	gmap, err := gamemap.New(1, ecs.NewWorld(), 60, 30)
	if err != nil {
		t.Fatal(err)
	}
	lay := DefaultLayout
	lay.CorridorStyle = style
	rooms := Carve(gmap, lay, rand.New(rand.NewSource(seed)))
	return gmap, rooms
}

// TestCarveAllFloorConnected verifies that every walkable tile is reachable
// from the first room by flood fill.
func TestCarveAllFloorConnected(t *testing.T) {
	for _, style := range []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight} {
		for seed := int64(0); seed < 10; seed++ {
			gmap, rooms := carveTestMap(t, seed, style)
			if len(rooms) == 0 {
				t.Fatalf("style=%d seed=%d: no rooms", style, seed)
			}
			sx, sy := rooms[0].Center()

			visited := make([][]bool, gmap.Height)
			for y := range visited {
				visited[y] = make([]bool, gmap.Width)
			}
			queue := [][2]int{{sx, sy}}
			visited[sy][sx] = true
			dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, d := range dirs {
					nx, ny := cur[0]+d[0], cur[1]+d[1]
					if !gmap.IsWalkable(nx, ny) || visited[ny][nx] {
						continue
					}
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}

			for y := 0; y < gmap.Height; y++ {
				for x := 0; x < gmap.Width; x++ {
					if gmap.IsWalkable(x, y) && !visited[y][x] {
						t.Errorf("style=%d seed=%d: unreachable floor at (%d,%d)", style, seed, x, y)
					}
				}
			}
		}
	}
}

func TestCarveRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		_, rooms := carveTestMap(t, seed, CorridorLShaped)
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if rooms[i].Intersects(rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestCarveKeepsWallBorder(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		gmap, _ := carveTestMap(t, seed, CorridorZShaped)
		for x := 0; x < gmap.Width; x++ {
			if gmap.IsWalkable(x, 0) || gmap.IsWalkable(x, gmap.Height-1) {
				t.Fatalf("seed=%d: border row open at x=%d", seed, x)
			}
		}
		for y := 0; y < gmap.Height; y++ {
			if gmap.IsWalkable(0, y) || gmap.IsWalkable(gmap.Width-1, y) {
				t.Fatalf("seed=%d: border column open at y=%d", seed, y)
			}
		}
	}
}

func TestCarveIsDeterministicPerSeed(t *testing.T) {
	_, a := carveTestMap(t, 42, CorridorLShaped)
	_, b := carveTestMap(t, 42, CorridorLShaped)
	if len(a) != len(b) {
		t.Fatalf("room counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("room %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X1: 2, Y1: 2, X2: 6, Y2: 4}
	if x, y := r.Center(); x != 4 || y != 3 {
		t.Errorf("Center = (%d,%d); want (4,3)", x, y)
	}
	if !r.Contains(2, 4) || r.Contains(7, 3) {
		t.Error("Contains must include edges only")
	}
	if !r.Intersects(Rect{X1: 6, Y1: 4, X2: 9, Y2: 9}) {
		t.Error("rects sharing a corner must intersect")
	}
	if r.Intersects(Rect{X1: 7, Y1: 0, X2: 9, Y2: 9}) {
		t.Error("disjoint rects must not intersect")
	}
}
