package generate

import (
	"math/rand"

	"tile-roguelike/internal/gamemap"
)

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, style CorridorStyle, rng *rand.Rand) {
	switch style {
	case CorridorZShaped:
		midY := (y1 + y2) / 2
		carveV(gmap, y1, midY, x1)
		carveH(gmap, x1, x2, midY)
		carveV(gmap, midY, y2, x2)
	case CorridorStraight:
		carveH(gmap, x1, x2, y1)
		carveV(gmap, y1, y2, x2)
	default:
		if rng.Intn(2) == 0 {
			carveH(gmap, x1, x2, y1)
			carveV(gmap, y1, y2, x2)
		} else {
			carveV(gmap, y1, y2, x1)
			carveH(gmap, x1, x2, y2)
		}
	}
}

func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		_ = gmap.Set(x, y, gamemap.MakeFloor())
	}
}

func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		_ = gmap.Set(x, y, gamemap.MakeFloor())
	}
}
