package sim

// CollisionResult reports what one resolution pass changed.
type CollisionResult struct {
	WallsDestroyed    []Point
	EnemiesDestroyed  []Point
	EnemyShotsBlocked int
	PlayerHit         bool
	Victory           bool
}

// ResolveCollisions runs the per-tick hit resolution in its fixed order and
// returns the pruned enemy collection. The order decides simultaneous hits:
//
//  1. player bullets vs walls: first wall hit kills wall and bullet
//  2. player bullets vs enemies: first enemy hit kills enemy and bullet
//  3. enemy bullets vs walls: the bullet dies, the wall stands
//  4. enemy bullets vs player: defeat, nothing is deactivated
//  5. prune inactive enemies; none left is victory unless the player was hit
func ResolveCollisions(player *Tank, enemies []*Tank, walls []*Wall) ([]*Tank, CollisionResult) {
	var res CollisionResult

	// 1.
	for _, b := range player.Bullets {
		if !b.Active {
			continue
		}
		for _, w := range walls {
			if w.Active && b.Box().Intersects(w.Box()) {
				w.destroy()
				b.deactivate()
				res.WallsDestroyed = append(res.WallsDestroyed, w.Pos)
				break
			}
		}
	}

	// 2.
	for _, b := range player.Bullets {
		if !b.Active {
			continue
		}
		for _, e := range enemies {
			if e.Active && b.Box().Intersects(e.Box()) {
				e.Active = false
				b.deactivate()
				res.EnemiesDestroyed = append(res.EnemiesDestroyed, e.Pos)
				break
			}
		}
	}

	// 3.
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		for _, b := range e.Bullets {
			if b.Active && blockedByWall(b.Box(), walls) {
				b.deactivate()
				res.EnemyShotsBlocked++
			}
		}
	}

	// 4. Bullets stopped by a wall in step 3 still count this tick; older
	// spent bullets were already pruned by UpdateBullets.
	playerBox := player.Box()
	for _, e := range enemies {
		if !e.Active || res.PlayerHit {
			continue
		}
		for _, b := range e.Bullets {
			if b.Box().Intersects(playerBox) {
				res.PlayerHit = true
				break
			}
		}
	}

	// 5.
	kept := enemies[:0]
	for _, e := range enemies {
		if e.Active {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	res.Victory = len(kept) == 0 && !res.PlayerHit
	return kept, res
}
