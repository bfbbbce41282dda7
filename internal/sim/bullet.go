package sim

// Bullet is a projectile owned by exactly one tank. Its velocity is captured
// when fired and never changes.
type Bullet struct {
	Pos    Point
	Vel    Point
	Active bool
	size   int
}

// NewBullet returns an active bullet.
func NewBullet(pos, vel Point, size int) *Bullet {
	return &Bullet{Pos: pos, Vel: vel, Active: true, size: size}
}

// Box returns the bullet footprint.
func (b *Bullet) Box() Rect {
	return RectAt(b.Pos, b.size)
}

// advance moves the bullet one step and deactivates it once it leaves the
// arena's outer bounds. Inactive bullets do not move.
func (b *Bullet) advance(a Arena) {
	if !b.Active {
		return
	}
	b.Pos = b.Pos.Add(b.Vel)
	if !a.BulletInBounds(b.Pos) {
		b.Active = false
	}
}

// deactivate is one-way: nothing in the engine sets Active back to true.
func (b *Bullet) deactivate() {
	b.Active = false
}

// pruneBullets drops inactive bullets in place, preserving order.
func pruneBullets(bs []*Bullet) []*Bullet {
	kept := bs[:0]
	for _, b := range bs {
		if b.Active {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(bs); i++ {
		bs[i] = nil
	}
	return kept
}
