package sim

// EnemyView is the render view of one enemy and its bullets.
type EnemyView struct {
	Box     Rect
	Facing  Direction
	Bullets []Rect
}

// Snapshot is a read-only copy of what the renderer needs for one frame.
// Nothing in it aliases session state.
type Snapshot struct {
	Phase     Phase
	Tick      int
	Round     int
	SessionID string
	Stats     Stats

	TileSize int
	Width    int // px, frame included
	Height   int

	Background    []Rect
	Walls         []Rect
	Player        Rect
	PlayerFacing  Direction
	PlayerBullets []Rect
	Enemies       []EnemyView
	Controls      []Control
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:        s.phase,
		Tick:         s.tick,
		Round:        s.round,
		SessionID:    s.id,
		Stats:        s.stats,
		TileSize:     s.arena.TileSize,
		Width:        s.arena.PixelWidth(),
		Height:       s.arena.PixelHeight(),
		Background:   s.arena.BackgroundTiles(),
		Player:       s.player.Box(),
		PlayerFacing: s.player.Facing,
		Controls:     s.Controls(),
	}
	for _, w := range s.walls {
		if w.Active {
			snap.Walls = append(snap.Walls, w.Box())
		}
	}
	snap.PlayerBullets = bulletBoxes(s.player.Bullets)
	for _, e := range s.enemies {
		if !e.Active {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			Box:     e.Box(),
			Facing:  e.Facing,
			Bullets: bulletBoxes(e.Bullets),
		})
	}
	return snap
}

func bulletBoxes(bs []*Bullet) []Rect {
	out := make([]Rect, 0, len(bs))
	for _, b := range bs {
		if b.Active {
			out = append(out, b.Box())
		}
	}
	return out
}
