package sim

// Wall is a destructible one-tile obstacle. Walls are deactivated, never
// removed, and never come back within a session.
type Wall struct {
	Pos    Point
	Active bool
	size   int
}

// Box returns the wall footprint.
func (w *Wall) Box() Rect {
	return RectAt(w.Pos, w.size)
}

// destroy deactivates the wall. It is one-way.
func (w *Wall) destroy() {
	w.Active = false
}

// NewWall returns an active wall at p.
func NewWall(p Point, tileSize int) *Wall {
	return &Wall{Pos: p, Active: true, size: tileSize}
}

// GenerateWalls lays out the fixed periodic pattern: every other tile from
// tile 3 up to (but excluding) the last three tiles on each axis. Positions
// are distinct by construction.
func GenerateWalls(a Arena) []*Wall {
	var walls []*Wall
	for row := 3; row < a.HeightTiles-3; row += 2 {
		for col := 3; col < a.WidthTiles-3; col += 2 {
			walls = append(walls, NewWall(a.TileOrigin(col, row), a.TileSize))
		}
	}
	return walls
}

// blockedByWall reports whether box overlaps any active wall.
func blockedByWall(box Rect, walls []*Wall) bool {
	for _, w := range walls {
		if w.Active && box.Intersects(w.Box()) {
			return true
		}
	}
	return false
}

// ActiveWalls returns the walls still standing.
func ActiveWalls(walls []*Wall) []*Wall {
	out := make([]*Wall, 0, len(walls))
	for _, w := range walls {
		if w.Active {
			out = append(out, w)
		}
	}
	return out
}
