package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Battle-City/internal/sim"
)

func phaseEvent(from, to sim.Phase, tick int) sim.Event {
	return sim.Event{Kind: sim.EventPhaseChanged, Tick: tick, From: from, To: to}
}

func TestTally_RecordsRoundEnds(t *testing.T) {
	tl := NewTally()
	tl.Notify(phaseEvent(sim.PhaseMenu, sim.PhasePlaying, 0))
	tl.Notify(sim.Event{Kind: sim.EventPlayerFired, Tick: 3})
	tl.Notify(phaseEvent(sim.PhasePlaying, sim.PhaseDefeat, 120))
	tl.Notify(phaseEvent(sim.PhaseDefeat, sim.PhasePlaying, 0))
	tl.Notify(phaseEvent(sim.PhasePlaying, sim.PhaseVictory, 300))
	tl.Notify(phaseEvent(sim.PhaseVictory, sim.PhasePlaying, 0))
	tl.Notify(phaseEvent(sim.PhasePlaying, sim.PhaseVictory, 250))
	tl.Notify(phaseEvent(sim.PhaseVictory, sim.PhaseTerminated, 250))

	res := tl.Results()
	if len(res) != 3 {
		t.Fatalf("results = %d, want 3 (quitting from a terminal screen is not a round)", len(res))
	}
	if res[0].Outcome != OutcomeDefeat || res[0].Round != 1 || res[0].Ticks != 120 {
		t.Fatalf("first result = %+v", res[0])
	}
	if tl.Count(OutcomeVictory) != 2 || tl.Streak() != 2 {
		t.Fatalf("victories=%d streak=%d, want 2/2", tl.Count(OutcomeVictory), tl.Streak())
	}
	if !strings.Contains(tl.Summary(), "won=2 lost=1") {
		t.Fatalf("summary = %q", tl.Summary())
	}
}

func TestTally_QuitMidRoundIsAbandoned(t *testing.T) {
	tl := NewTally()
	tl.Notify(phaseEvent(sim.PhaseMenu, sim.PhasePlaying, 0))
	tl.Notify(phaseEvent(sim.PhasePlaying, sim.PhaseTerminated, 40))
	if tl.Count(OutcomeAbandoned) != 1 || tl.Streak() != 0 {
		t.Fatalf("expected one abandoned round, got %+v", tl.Results())
	}
}

func TestRoundScore_AndGrade(t *testing.T) {
	perfect := sim.Stats{ShotsFired: 5, EnemiesDestroyed: 5, EnemiesSpawned: 5}
	if got := RoundScore(perfect, true); got != 100 {
		t.Fatalf("perfect round score = %.1f, want 100", got)
	}
	if LetterGrade(100) != "A+" {
		t.Fatalf("grade = %s", LetterGrade(100))
	}

	idle := sim.Stats{EnemiesSpawned: 5}
	if got := RoundScore(idle, false); got != 0 {
		t.Fatalf("idle round score = %.1f, want 0", got)
	}
	if LetterGrade(0) != "F" {
		t.Fatal("zero should be an F")
	}

	spray := sim.Stats{ShotsFired: 40, WallsDestroyed: 200, EnemiesDestroyed: 1, EnemiesSpawned: 5}
	if got := RoundScore(spray, false); got > 42 {
		t.Fatalf("accuracy component should cap, score = %.1f", got)
	}
}
