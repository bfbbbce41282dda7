package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Battle-City/internal/sim"
)

func TestSessionReport_CoversRoundScoreboardAndFeed(t *testing.T) {
	feed := NewEventFeed()
	tally := NewTally()
	ts, err := sim.NewTestSim(
		sim.WithConfig(quietConfig()),
		sim.WithEventSink(sim.MultiSink{feed, tally}),
		sim.WithoutWalls(),
		sim.WithEnemyAt(sim.Point{X: 360, Y: 300}),
	)
	if err != nil {
		t.Fatalf("NewTestSim: %v", err)
	}
	ts.Step(sim.Fire())
	ts.RunUntil(func(ts *sim.TestSim) bool { return ts.Session.Phase() != sim.PhasePlaying }, 200)

	report := SessionReport(ts.Session.Snapshot(), tally, feed)
	for _, want := range []string{
		"session=" + ts.Session.ID(),
		"phase=victory",
		"enemies: 1/1 destroyed, 0 remaining",
		"score: 100 (A+)",
		"won=1 lost=0",
		"round 1   victory",
		"enemy destroyed at (360,300)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestSessionReport_NilCollaborators(t *testing.T) {
	report := SessionReport(sim.Snapshot{Phase: sim.PhaseMenu}, nil, nil)
	if !strings.Contains(report, "phase=menu") || strings.Contains(report, "events:") {
		t.Fatalf("unexpected report:\n%s", report)
	}
}
