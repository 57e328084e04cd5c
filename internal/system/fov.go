package system

import (
	"tile-roguelike/internal/ecs"
	"tile-roguelike/internal/entity"
	"tile-roguelike/internal/gamemap"
)

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = cx + dx*xx + dy*xy
//   worldY = cy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes gmap's visible flags from viewer's position. Every
// cell that becomes visible is also marked explored.
func UpdateFOV(gmap *gamemap.GameMap, viewer ecs.EntityID, radius int) {
	gmap.ClearVisible()

	pos, ok := entity.PositionOf(gmap.World(), viewer)
	if !ok {
		return
	}
	ComputeFOV(gmap, pos.X, pos.Y, radius)
}

// ComputeFOV lights every cell visible from (cx, cy) within radius using
// recursive shadowcasting. It does not clear previous visibility.
func ComputeFOV(gmap *gamemap.GameMap, cx, cy, radius int) {
	// Origin is always visible.
	if t, ok := gmap.At(cx, cy); ok {
		t.Visible = true
		t.Explored = true
	}
	for _, m := range octants {
		castLight(gmap, cx, cy, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// castLight lights one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep (the row coordinate)
//   - dx sweeps from -j to 0 (the column coordinate within the row)
//   - world position: (cx + dx*xx + dy*xy,  cy + dx*yx + dy*yy)
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(gmap *gamemap.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j // fixed row index, always negative
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			// Map sweep coordinates to world position.
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			// Slope of the left and right edges of this cell.
			// dy is negative so (dy+0.5) and (dy-0.5) are both negative,
			// making the slopes positive for dx < 0. Slopes decrease toward 0
			// as dx moves right.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue // right of the current beam
			}
			if end > lSlope {
				break // left of the beam; so is the rest of the row
			}

			// Light this cell if within the radius circle.
			if float64(dx*dx+dy*dy) < radiusSq {
				if t, ok := gmap.At(wx, wy); ok {
					t.Visible = true
					t.Explored = true
				}
			}

			// Out-of-bounds cells count as opaque.
			opaque := !gmap.IsTransparent(wx, wy)
			switch {
			case blocked && opaque:
				// Still inside a wall run: advance the shadow boundary.
				newStart = rSlope
			case blocked:
				// Wall to open: resume with the updated start slope.
				blocked = false
				start = newStart
			case opaque && j < radius:
				// Hit a new wall: cast a child scan beyond it.
				blocked = true
				castLight(gmap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break // row ended in wall; no light beyond
		}
	}
}
