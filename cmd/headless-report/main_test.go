package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Battle-City/internal/sim"
)

func TestClassify_Victory(t *testing.T) {
	outcome, reason := classify(runStats{phase: sim.PhaseVictory, enemiesSpawned: 5, enemiesKilled: 5})
	if outcome != "victory" || reason != "all_5_destroyed" {
		t.Fatalf("got %s/%s", outcome, reason)
	}
}

func TestClassify_DefeatWithoutKills(t *testing.T) {
	outcome, reason := classify(runStats{phase: sim.PhaseDefeat, enemiesSpawned: 5, shotsFired: 12})
	if outcome != "defeat" || reason != "no_kills" {
		t.Fatalf("got %s/%s", outcome, reason)
	}
}

func TestClassify_TimeoutStalled(t *testing.T) {
	outcome, reason := classify(runStats{phase: sim.PhasePlaying, enemiesSpawned: 5})
	if outcome != "timeout" || !strings.Contains(reason, "never_fired") {
		t.Fatalf("got %s/%s", outcome, reason)
	}
	_, reason = classify(runStats{phase: sim.PhasePlaying, enemiesSpawned: 5, enemiesKilled: 2, shotsFired: 9})
	if reason != "2_of_5_destroyed" {
		t.Fatalf("reason = %s", reason)
	}
}

func TestRunRound_Deterministic(t *testing.T) {
	cfg := sim.DefaultConfig()
	a, err := runRound(1, 99, cfg, 2000, 12)
	if err != nil {
		t.Fatalf("runRound: %v", err)
	}
	b, err := runRound(1, 99, cfg, 2000, 12)
	if err != nil {
		t.Fatalf("runRound: %v", err)
	}
	if a != b {
		t.Fatalf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
	if a.enemiesSpawned != cfg.EnemyCount {
		t.Fatalf("spawned = %d, want %d", a.enemiesSpawned, cfg.EnemyCount)
	}
	if a.phase == sim.PhaseVictory && a.enemiesKilled != a.enemiesSpawned {
		t.Fatalf("victory with %d/%d kills", a.enemiesKilled, a.enemiesSpawned)
	}
}

func TestFirstAndLastTick(t *testing.T) {
	entries := []sim.SimLogEntry{
		{Tick: 3, Category: "fire", Key: "player_fired"},
		{Tick: 9, Category: "collision", Key: "enemy_destroyed", Value: "at (80,80)"},
		{Tick: 20, Category: "collision", Key: "enemy_destroyed", Value: "at (160,80)"},
	}
	if got := firstTick(entries, "collision", "enemy_destroyed"); got != 9 {
		t.Fatalf("first = %d", got)
	}
	if got := firstTick(entries, "fire", "player_fired"); got != 3 {
		t.Fatalf("first shot = %d", got)
	}
	if got := firstTick(entries, "collision", "player_hit"); got != -1 {
		t.Fatalf("missing = %d", got)
	}
	if got := lastTick(entries, "collision", "enemy_destroyed"); got != 20 {
		t.Fatalf("last = %d", got)
	}
	if got := lastTick(entries, "collision", "player_hit"); got != -1 {
		t.Fatalf("missing = %d", got)
	}
}
