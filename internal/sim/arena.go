package sim

// Arena is the immutable tile geometry of the battlefield. The outermost ring
// of tiles is frame; the inner tiles are the play field.
type Arena struct {
	TileSize    int
	WidthTiles  int
	HeightTiles int
}

// PixelWidth is the full arena width including the frame.
func (a Arena) PixelWidth() int { return a.WidthTiles * a.TileSize }

// PixelHeight is the full arena height including the frame.
func (a Arena) PixelHeight() int { return a.HeightTiles * a.TileSize }

// PlayableBounds is the inner field a tank footprint must stay inside. A tank
// at (x,y) fits when T <= x <= W*T-2T and likewise for y.
func (a Arena) PlayableBounds() Rect {
	t := a.TileSize
	return Rect{
		X: t,
		Y: t,
		W: a.PixelWidth() - 2*t,
		H: a.PixelHeight() - 2*t,
	}
}

// CanHold reports whether a one-tile footprint at p lies fully inside the
// playable bounds.
func (a Arena) CanHold(p Point) bool {
	b := a.PlayableBounds()
	t := a.TileSize
	return p.X >= b.X && p.X+t <= b.X+b.W &&
		p.Y >= b.Y && p.Y+t <= b.Y+b.H
}

// OuterBounds is the region a bullet position may occupy. Both edges are
// inclusive.
func (a Arena) OuterBounds() Rect {
	t := a.TileSize
	return Rect{X: t, Y: t, W: a.PixelWidth() - 2*t, H: a.PixelHeight() - 2*t}
}

// BulletInBounds reports whether a bullet at p is still live.
func (a Arena) BulletInBounds(p Point) bool {
	o := a.OuterBounds()
	return p.X >= o.X && p.X <= o.X+o.W && p.Y >= o.Y && p.Y <= o.Y+o.H
}

// TileOrigin returns the pixel position of tile (col,row).
func (a Arena) TileOrigin(col, row int) Point {
	return Point{X: col * a.TileSize, Y: row * a.TileSize}
}

// PlayerStart is the canonical bottom-centre starting tile of the player.
func (a Arena) PlayerStart() Point {
	return a.TileOrigin((a.WidthTiles-1)/2, a.HeightTiles-2)
}

// BackgroundTiles returns the inner floor tiles in row-major order.
func (a Arena) BackgroundTiles() []Rect {
	out := make([]Rect, 0, (a.WidthTiles-2)*(a.HeightTiles-2))
	for row := 1; row < a.HeightTiles-1; row++ {
		for col := 1; col < a.WidthTiles-1; col++ {
			out = append(out, RectAt(a.TileOrigin(col, row), a.TileSize))
		}
	}
	return out
}
