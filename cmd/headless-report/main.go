package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Battle-City/internal/game"
	"github.com/Garsondee/Battle-City/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	phase sim.Phase
	ticks int

	firstWallTick  int
	firstKillTick  int
	lastKillTick   int
	hitTick        int
	shotsFired     int
	enemyShots     int
	wallsDestroyed int
	enemiesKilled  int
	enemiesSpawned int

	score float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var enemies int
	var fireEvery int

	flag.IntVar(&runs, "runs", 20, "number of headless rounds")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per round")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&enemies, "enemies", sim.DefaultConfig().EnemyCount, "enemies per round")
	flag.IntVar(&fireEvery, "fire-every", 12, "minimum ticks between autopilot shots")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}

	cfg := sim.DefaultConfig()
	cfg.EnemyCount = enemies
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("runs=%d ticks=%d enemies=%d fire_every=%d seed_base=%d seed_step=%d\n\n",
		runs, ticks, enemies, fireEvery, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runRound(i+1, seed, cfg, ticks, fireEvery)
		if err != nil {
			fmt.Printf("--- Run %d (seed=%d) ---\nerror: %v\n\n", i+1, seed, err)
			if errors.Is(err, sim.ErrSpawnExhausted) {
				fmt.Println("hint: lower -enemies; the arena has no room for that many")
				os.Exit(1)
			}
			continue
		}
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

// runRound plays one round with the autopilot at the controls.
func runRound(runIndex int, seed int64, cfg sim.Config, ticks, fireEvery int) (runStats, error) {
	ts, err := sim.NewTestSim(sim.WithConfig(cfg), sim.WithSeed(seed))
	if err != nil {
		return runStats{}, err
	}
	pilot := game.NewAutopilot(fireEvery)
	for i := 0; i < ticks && ts.Session.Phase() == sim.PhasePlaying; i++ {
		ts.Step(pilot.Next(ts.Session.Snapshot())...)
	}

	entries := ts.SimLog.Entries()
	st := ts.Session.Stats()
	phase := ts.Session.Phase()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		phase:          phase,
		ticks:          ts.Session.Tick(),
		firstWallTick:  firstTick(entries, "collision", "wall_destroyed"),
		firstKillTick:  firstTick(entries, "collision", "enemy_destroyed"),
		lastKillTick:   lastTick(entries, "collision", "enemy_destroyed"),
		hitTick:        firstTick(entries, "collision", "player_hit"),
		shotsFired:     st.ShotsFired,
		enemyShots:     st.EnemyShots,
		wallsDestroyed: st.WallsDestroyed,
		enemiesKilled:  st.EnemiesDestroyed,
		enemiesSpawned: st.EnemiesSpawned,
		score:          game.RoundScore(st, phase == sim.PhaseVictory),
	}, nil
}

func firstTick(entries []sim.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func lastTick(entries []sim.SimLogEntry, category, key string) int {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Category == category && entries[i].Key == key {
			return entries[i].Tick
		}
	}
	return -1
}

// classify names the way a run ended and, for unfinished runs, why.
func classify(rs runStats) (string, string) {
	switch rs.phase {
	case sim.PhaseVictory:
		return "victory", fmt.Sprintf("all_%d_destroyed", rs.enemiesSpawned)
	case sim.PhaseDefeat:
		if rs.enemiesKilled == 0 {
			return "defeat", "no_kills"
		}
		return "defeat", fmt.Sprintf("%d_of_%d_destroyed", rs.enemiesKilled, rs.enemiesSpawned)
	}
	if rs.enemiesKilled == 0 && rs.shotsFired == 0 {
		return "timeout", "stalled_never_fired"
	}
	if rs.enemiesKilled == 0 {
		return "timeout", "stalled_no_kills"
	}
	return "timeout", fmt.Sprintf("%d_of_%d_destroyed", rs.enemiesKilled, rs.enemiesSpawned)
}

func printRun(rs runStats) {
	outcome, reason := classify(rs)
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s reason=%s ticks=%d score=%.0f grade=%s\n",
		outcome, reason, rs.ticks, rs.score, game.LetterGrade(rs.score))
	fmt.Printf("phase_markers: first_wall=%d first_kill=%d last_kill=%d player_hit=%d\n",
		rs.firstWallTick, rs.firstKillTick, rs.lastKillTick, rs.hitTick)
	fmt.Printf("event_totals: shots=%d enemy_shots=%d walls=%d kills=%d/%d\n",
		rs.shotsFired, rs.enemyShots, rs.wallsDestroyed, rs.enemiesKilled, rs.enemiesSpawned)
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	grades := map[string]int{}
	totalShots := 0
	totalKills := 0
	totalWalls := 0
	scoreSum := 0.0
	var victoryTicks, killTicks, hitTicks []int

	for _, rs := range all {
		outcome, _ := classify(rs)
		outcomes[outcome]++
		grades[game.LetterGrade(rs.score)]++
		totalShots += rs.shotsFired
		totalKills += rs.enemiesKilled
		totalWalls += rs.wallsDestroyed
		scoreSum += rs.score
		if rs.phase == sim.PhaseVictory {
			victoryTicks = append(victoryTicks, rs.ticks)
		}
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.hitTick >= 0 {
			hitTicks = append(hitTicks, rs.hitTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victory=%d defeat=%d timeout=%d win_rate=%.0f%%\n",
		len(all), outcomes["victory"], outcomes["defeat"], outcomes["timeout"],
		pct(outcomes["victory"], len(all)))
	fmt.Printf("avg_per_run: shots=%.1f kills=%.1f walls=%.1f score=%.1f\n",
		avg(totalShots, len(all)), avg(totalKills, len(all)), avg(totalWalls, len(all)), avgFloat(scoreSum, len(all)))
	fmt.Printf("accuracy=%.0f%%\n", pct(totalKills, totalShots))
	fmt.Printf("phase_marker_avg_ticks: victory=%s first_kill=%s player_hit=%s\n",
		avgTickString(victoryTicks), avgTickString(killTicks), avgTickString(hitTicks))
	fmt.Printf("grades: %s\n", formatCounts(grades))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFloat(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func pct(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return 100 * float64(num) / float64(denom)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
