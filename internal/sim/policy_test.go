package sim

import (
	"math/rand"
	"testing"
)

func aiEnv(walls []*Wall, seed int64, fired *int) Env {
	return Env{
		Walls: walls,
		Rand:  rand.New(rand.NewSource(seed)),
		Fire: func(t *Tank) {
			if t.Shoot() != nil {
				*fired++
			}
		},
	}
}

func TestAIPolicy_MovesOnlyWhenTimerExpires(t *testing.T) {
	cfg := DefaultConfig()
	ai := NewAIPolicy(cfg)
	tk := NewTank(TankEnemy, Point{300, 300}, DirDown, cfg, ai)
	fired := 0
	env := aiEnv(nil, 7, &fired)

	for i := 1; i < cfg.EnemyMoveCooldown; i++ {
		ai.Think(tk, env)
		if tk.Pos != (Point{300, 300}) {
			t.Fatalf("tick %d: moved before the timer expired", i)
		}
	}
	ai.Think(tk, env)
	dx, dy := abs(tk.Pos.X-300), abs(tk.Pos.Y-300)
	if dx+dy != cfg.MoveStep || (dx != 0 && dy != 0) {
		t.Fatalf("expected one cardinal step of %d, moved to %v", cfg.MoveStep, tk.Pos)
	}
	if ai.MoveTimer() != cfg.EnemyMoveCooldown {
		t.Fatalf("move timer = %d, want reset to %d", ai.MoveTimer(), cfg.EnemyMoveCooldown)
	}
}

func TestAIPolicy_BoxedInTankStaysPutWithoutRefund(t *testing.T) {
	cfg := DefaultConfig()
	ai := NewAIPolicy(cfg)
	tk := NewTank(TankEnemy, Point{200, 200}, DirDown, cfg, ai)
	walls := []*Wall{
		NewWall(Point{160, 200}, 40),
		NewWall(Point{240, 200}, 40),
		NewWall(Point{200, 160}, 40),
		NewWall(Point{200, 240}, 40),
	}
	fired := 0
	env := aiEnv(walls, 3, &fired)

	for round := 0; round < 4; round++ {
		for i := 0; i < cfg.EnemyMoveCooldown; i++ {
			ai.Think(tk, env)
		}
		if tk.Pos != (Point{200, 200}) {
			t.Fatalf("boxed-in tank moved to %v", tk.Pos)
		}
		if ai.MoveTimer() != cfg.EnemyMoveCooldown {
			t.Fatalf("timer = %d after a vetoed move, want full cooldown %d", ai.MoveTimer(), cfg.EnemyMoveCooldown)
		}
	}
}

func TestAIPolicy_ScheduledFire(t *testing.T) {
	cfg := DefaultConfig()
	ai := NewAIPolicy(cfg)
	tk := NewTank(TankEnemy, Point{300, 300}, DirDown, cfg, ai)
	fired := 0
	env := aiEnv(nil, 1, &fired)

	for i := 1; i < cfg.EnemyShootCooldown; i++ {
		ai.Think(tk, env)
	}
	if fired != 0 {
		t.Fatalf("fired %d times before the shoot timer expired", fired)
	}
	ai.Think(tk, env)
	if fired != 1 {
		t.Fatalf("fired %d, want 1 at expiry", fired)
	}
	for i := 0; i < cfg.EnemyShootCooldown; i++ {
		ai.Think(tk, env)
	}
	if fired != 2 {
		t.Fatalf("fired %d, want 2 after two cooldowns", fired)
	}
}

func TestAIPolicy_AllFourHeadingsChosen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyMoveCooldown = 1
	ai := NewAIPolicy(cfg)
	tk := NewTank(TankEnemy, Point{360, 280}, DirDown, cfg, ai)
	fired := 0
	env := aiEnv(nil, 99, &fired)

	counts := map[Direction]int{}
	const n = 2000
	for i := 0; i < n; i++ {
		ai.Think(tk, env)
		counts[tk.Facing]++
	}
	for _, d := range Cardinals {
		if counts[d] < n/8 {
			t.Errorf("heading %s chosen %d/%d times; expected roughly uniform", d, counts[d], n)
		}
	}
}

func TestHumanPolicy_AppliesQueuedCommandsInOrder(t *testing.T) {
	cfg := DefaultConfig()
	hp := NewHumanPolicy(cfg.MoveStep)
	tk := NewTank(TankPlayer, Point{300, 300}, DirUp, cfg, hp)
	fired := 0
	env := aiEnv(nil, 1, &fired)

	hp.QueueMove(DirRight)
	hp.QueueMove(DirRight)
	hp.QueueFire()
	hp.QueueFire()
	hp.Think(tk, env)

	if tk.Pos != (Point{310, 300}) {
		t.Fatalf("pos = %v, want (310,300)", tk.Pos)
	}
	if fired != 2 {
		t.Fatalf("fired = %d, want 2 (no cooldown)", fired)
	}
	for _, b := range tk.Bullets {
		if b.Vel != (Point{cfg.BulletSpeed, 0}) {
			t.Fatalf("bullet vel = %v, want rightwards", b.Vel)
		}
	}
	if hp.Pending() != 0 {
		t.Fatal("queue should be drained after Think")
	}
}
