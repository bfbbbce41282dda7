package game

import (
	"fmt"
	"testing"

	"github.com/Garsondee/Battle-City/internal/sim"
)

func TestEventFeed_RingBufferKeepsNewest(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, sim.EventWallDestroyed, fmt.Sprintf("entry %d", i))
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("len = %d, want %d", len(got), feedMaxEntries)
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("oldest=%d newest=%d", got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventFeed_SkipsShots(t *testing.T) {
	f := NewEventFeed()
	f.Notify(sim.Event{Kind: sim.EventPhaseChanged, From: sim.PhaseMenu, To: sim.PhasePlaying})
	f.Notify(sim.Event{Kind: sim.EventPlayerFired, Tick: 1})
	f.Notify(sim.Event{Kind: sim.EventEnemyFired, Tick: 2})
	f.Notify(sim.Event{Kind: sim.EventEnemyDestroyed, Tick: 40, Pos: sim.Point{X: 360, Y: 300}})

	got := f.Recent()
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2: %+v", len(got), got)
	}
	if got[1].Message != "enemy destroyed at (360,300)" || got[1].Round != 1 {
		t.Fatalf("last entry = %+v", got[1])
	}
}

func TestEventFeed_LiveSession(t *testing.T) {
	f := NewEventFeed()
	ts, err := sim.NewTestSim(
		sim.WithConfig(quietConfig()),
		sim.WithEventSink(f),
		sim.WithoutWalls(),
		sim.WithEnemyAt(sim.Point{X: 360, Y: 300}),
	)
	if err != nil {
		t.Fatalf("NewTestSim: %v", err)
	}
	ts.Step(sim.Fire())
	ts.RunUntil(func(ts *sim.TestSim) bool { return ts.Session.Phase() != sim.PhasePlaying }, 200)

	got := f.Recent()
	last := got[len(got)-1]
	if last.Kind != sim.EventPhaseChanged || last.Message != "playing -> victory" {
		t.Fatalf("last entry = %+v", last)
	}
}
