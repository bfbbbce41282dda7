package game

import "github.com/Garsondee/Battle-City/internal/sim"

// Autopilot drives the player tank from snapshots: line up with the nearest
// enemy on one axis, turn towards it and fire. Walls in the firing lane are
// shot through. Used by the headless report and the in-game demo mode.
type Autopilot struct {
	// FireEvery is the minimum number of ticks between shots.
	FireEvery int

	cooldown int
	lastPos  sim.Rect
	lastMove sim.Direction
	flipped  bool
}

// NewAutopilot returns an autopilot that fires at most every fireEvery ticks.
func NewAutopilot(fireEvery int) *Autopilot {
	if fireEvery < 1 {
		fireEvery = 1
	}
	return &Autopilot{FireEvery: fireEvery}
}

// Next chooses this tick's input. Outside Playing it returns nothing.
func (a *Autopilot) Next(snap sim.Snapshot) []sim.InputEvent {
	if snap.Phase != sim.PhasePlaying || len(snap.Enemies) == 0 {
		return nil
	}
	if a.cooldown > 0 {
		a.cooldown--
	}

	me := snap.Player.Center()
	target := nearest(me, snap.Enemies)
	delta := sim.Point{X: target.X - me.X, Y: target.Y - me.Y}
	lane := snap.TileSize / 2

	// Blocked last tick: try lining up on the other axis.
	if a.lastMove != sim.DirNone && snap.Player == a.lastPos {
		a.flipped = !a.flipped
	}
	a.lastPos = snap.Player
	a.lastMove = sim.DirNone

	var aim sim.Direction
	switch {
	case abs(delta.X) < lane:
		aim = sim.DirectionOf(sim.Point{Y: delta.Y})
	case abs(delta.Y) < lane:
		aim = sim.DirectionOf(sim.Point{X: delta.X})
	}
	if aim != sim.DirNone {
		if snap.PlayerFacing != aim {
			// A move turns the tank even when the step itself is vetoed.
			a.lastMove = aim
			return []sim.InputEvent{sim.Move(aim)}
		}
		if a.cooldown == 0 {
			a.cooldown = a.FireEvery
			return []sim.InputEvent{sim.Fire()}
		}
		return nil
	}

	// Close the smaller gap first unless that way was blocked.
	alignColumn := abs(delta.X) <= abs(delta.Y)
	if a.flipped {
		alignColumn = !alignColumn
	}
	var step sim.Direction
	if alignColumn {
		step = sim.DirectionOf(sim.Point{X: delta.X})
	} else {
		step = sim.DirectionOf(sim.Point{Y: delta.Y})
	}
	a.lastMove = step
	return []sim.InputEvent{sim.Move(step)}
}

func nearest(from sim.Point, enemies []sim.EnemyView) sim.Point {
	best := enemies[0].Box.Center()
	bestD := manhattan(from, best)
	for _, e := range enemies[1:] {
		c := e.Box.Center()
		if d := manhattan(from, c); d < bestD {
			best, bestD = c, d
		}
	}
	return best
}

func manhattan(a, b sim.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
