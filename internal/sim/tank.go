package sim

import "math/rand"

// TankKind distinguishes the player from the enemies.
type TankKind int

const (
	TankPlayer TankKind = iota
	TankEnemy
)

func (k TankKind) String() string {
	if k == TankPlayer {
		return "player"
	}
	return "enemy"
}

// Tank is the shared mobile, armed entity. What drives it each tick is its
// Policy: human input for the player, timers and dice for the enemies.
type Tank struct {
	Kind    TankKind
	Pos     Point
	Facing  Direction
	Bullets []*Bullet
	Active  bool

	arena       Arena
	bulletSpeed int
	bulletSize  int
	policy      Policy
}

// Env is what a policy can see and use during one tick.
type Env struct {
	Walls []*Wall
	Rand  *rand.Rand
	// Fire shoots from t and reports the shot to the session's sink.
	Fire func(t *Tank)
}

// Policy decides what a tank does on a tick.
type Policy interface {
	Think(t *Tank, env Env)
}

// NewTank returns an active tank at pos.
func NewTank(kind TankKind, pos Point, facing Direction, cfg Config, policy Policy) *Tank {
	return &Tank{
		Kind:        kind,
		Pos:         pos,
		Facing:      facing,
		Active:      true,
		arena:       cfg.Arena(),
		bulletSpeed: cfg.BulletSpeed,
		bulletSize:  cfg.BulletSize,
		policy:      policy,
	}
}

// Box returns the one-tile footprint at the current position.
func (t *Tank) Box() Rect {
	return RectAt(t.Pos, t.arena.TileSize)
}

// Policy returns the tank's decision policy.
func (t *Tank) Policy() Policy {
	return t.policy
}

// Move tries to translate the tank by delta. Facing follows delta even when
// the move is vetoed, so the next shot goes the way the tank last tried to go.
// A move into an active wall or outside the playable bounds is a silent
// no-op; Move reports whether the position changed.
func (t *Tank) Move(delta Point, walls []*Wall) bool {
	if d := DirectionOf(delta); d != DirNone {
		t.Facing = d
	}
	candidate := t.Pos.Add(delta)
	if blockedByWall(RectAt(candidate, t.arena.TileSize), walls) {
		return false
	}
	if !t.arena.CanHold(candidate) {
		return false
	}
	t.Pos = candidate
	return true
}

// Shoot appends a bullet centred on the tank, travelling along the current
// facing. A tank that has never faced anywhere does not fire.
func (t *Tank) Shoot() *Bullet {
	if t.Facing == DirNone {
		return nil
	}
	c := t.Box().Center()
	half := t.bulletSize / 2
	b := NewBullet(
		Point{X: c.X - half, Y: c.Y - half},
		t.Facing.Vector().Scale(t.bulletSpeed),
		t.bulletSize,
	)
	t.Bullets = append(t.Bullets, b)
	return b
}

// UpdateBullets advances every live bullet one step and then prunes the
// inactive ones. A bullet knocked out by a collision on the previous tick is
// pruned here; one that left the arena on this step is pruned immediately.
func (t *Tank) UpdateBullets() {
	for _, b := range t.Bullets {
		b.advance(t.arena)
	}
	t.Bullets = pruneBullets(t.Bullets)
}

// ActiveBullets returns the bullets still in flight.
func (t *Tank) ActiveBullets() []*Bullet {
	out := make([]*Bullet, 0, len(t.Bullets))
	for _, b := range t.Bullets {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}
