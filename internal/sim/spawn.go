package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrSpawnExhausted means the arena is too crowded to place every enemy
// within the attempt budget.
var ErrSpawnExhausted = errors.New("spawn placement exhausted")

// PlaceEnemies picks count tile-aligned spawn points by rejection sampling.
// Candidates come from tiles [2, W-3] x [2, H-3], one tile further in than
// the playable margin. A candidate is rejected when its footprint touches an
// active wall, the player, or an enemy already placed by this call. Each
// enemy gets at most maxAttempts samples.
func PlaceEnemies(count int, a Arena, walls []*Wall, playerBox Rect, rng *rand.Rand, maxAttempts int) ([]Point, error) {
	minCol, maxCol := 2, a.WidthTiles-3
	minRow, maxRow := 2, a.HeightTiles-3
	if maxCol < minCol || maxRow < minRow {
		return nil, fmt.Errorf("%w: arena %dx%d has no spawn region", ErrSpawnExhausted, a.WidthTiles, a.HeightTiles)
	}
	cols := maxCol - minCol + 1
	rows := maxRow - minRow + 1

	out := make([]Point, 0, count)
	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			p := a.TileOrigin(minCol+rng.Intn(cols), minRow+rng.Intn(rows))
			box := RectAt(p, a.TileSize)
			if blockedByWall(box, walls) || box.Intersects(playerBox) || overlapsPlaced(box, out, a.TileSize) {
				continue
			}
			out = append(out, p)
			placed = true
			break
		}
		if !placed {
			return out, fmt.Errorf("%w: enemy %d of %d after %d attempts", ErrSpawnExhausted, i+1, count, maxAttempts)
		}
	}
	return out, nil
}

func overlapsPlaced(box Rect, placed []Point, size int) bool {
	for _, p := range placed {
		if box.Intersects(RectAt(p, size)) {
			return true
		}
	}
	return false
}
