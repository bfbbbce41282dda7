package sim

// commandKind is a queued human action.
type commandKind int

const (
	cmdMove commandKind = iota
	cmdFire
)

type command struct {
	kind commandKind
	dir  Direction
}

// HumanPolicy replays the input observed on the current tick. There is no
// cooldown: every move and fire event is applied, in order.
type HumanPolicy struct {
	step    int
	pending []command
}

// NewHumanPolicy returns a policy that moves step pixels per move event.
func NewHumanPolicy(step int) *HumanPolicy {
	return &HumanPolicy{step: step}
}

// QueueMove records a move for this tick.
func (p *HumanPolicy) QueueMove(d Direction) {
	p.pending = append(p.pending, command{kind: cmdMove, dir: d})
}

// QueueFire records a shot for this tick.
func (p *HumanPolicy) QueueFire() {
	p.pending = append(p.pending, command{kind: cmdFire})
}

// Pending returns how many commands are waiting for the next Think.
func (p *HumanPolicy) Pending() int {
	return len(p.pending)
}

// Reset drops queued commands.
func (p *HumanPolicy) Reset() {
	p.pending = p.pending[:0]
}

// Think applies the queued commands and clears the queue.
func (p *HumanPolicy) Think(t *Tank, env Env) {
	for _, c := range p.pending {
		switch c.kind {
		case cmdMove:
			t.Move(c.dir.Vector().Scale(p.step), env.Walls)
		case cmdFire:
			env.Fire(t)
		}
	}
	p.pending = p.pending[:0]
}

// AIPolicy is the enemy controller: two independent countdowns, one for
// picking a new heading and stepping, one for scheduled fire.
type AIPolicy struct {
	step          int
	moveCooldown  int
	shootCooldown int
	moveTimer     int
	shootTimer    int
}

// NewAIPolicy returns a controller with both timers loaded.
func NewAIPolicy(cfg Config) *AIPolicy {
	return &AIPolicy{
		step:          cfg.MoveStep,
		moveCooldown:  cfg.EnemyMoveCooldown,
		shootCooldown: cfg.EnemyShootCooldown,
		moveTimer:     cfg.EnemyMoveCooldown,
		shootTimer:    cfg.EnemyShootCooldown,
	}
}

// MoveTimer returns the ticks left until the next heading change.
func (p *AIPolicy) MoveTimer() int { return p.moveTimer }

// ShootTimer returns the ticks left until the next scheduled shot.
func (p *AIPolicy) ShootTimer() int { return p.shootTimer }

// Think runs both timers for one tick. A vetoed move is not refunded: the
// tank sits still until the move timer expires again.
func (p *AIPolicy) Think(t *Tank, env Env) {
	p.moveTimer--
	if p.moveTimer <= 0 {
		p.moveTimer = p.moveCooldown
		heading := Cardinals[env.Rand.Intn(len(Cardinals))]
		t.Move(heading.Vector().Scale(p.step), env.Walls)
	}

	p.shootTimer--
	if p.shootTimer <= 0 {
		p.shootTimer = p.shootCooldown
		env.Fire(t)
	}
}
