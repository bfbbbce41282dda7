package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Battle-City/internal/sim"
)

// fakeInput is a scripted inputSource.
type fakeInput struct {
	held  map[ebiten.Key]bool
	just  map[ebiten.Key]bool
	click *sim.Point
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }

func (f *fakeInput) Clicked() (sim.Point, bool) {
	if f.click == nil {
		return sim.Point{}, false
	}
	return *f.click, true
}

func (f *fakeInput) reset() {
	f.held = map[ebiten.Key]bool{}
	f.just = map[ebiten.Key]bool{}
	f.click = nil
}

func TestReadInput_OneMovePerTick(t *testing.T) {
	src := newFakeInput()
	src.held[ebiten.KeyD] = true
	src.held[ebiten.KeyArrowUp] = true
	src.just[ebiten.KeySpace] = true

	in := readInput(src, sim.PhasePlaying)
	if len(in.Events) != 2 {
		t.Fatalf("events = %v, want a move and a fire", in.Events)
	}
	if in.Events[0] != sim.Move(sim.DirUp) {
		t.Fatalf("first event = %+v, want move up (priority)", in.Events[0])
	}
	if in.Events[1] != sim.Fire() {
		t.Fatalf("second event = %+v, want fire", in.Events[1])
	}
}

func TestReadInput_HeldSpaceDoesNotAutoFire(t *testing.T) {
	src := newFakeInput()
	src.held[ebiten.KeySpace] = true
	if in := readInput(src, sim.PhasePlaying); len(in.Events) != 0 {
		t.Fatalf("events = %v, want none", in.Events)
	}
}

func TestReadInput_EnterSelectsPerPhase(t *testing.T) {
	src := newFakeInput()
	src.just[ebiten.KeyEnter] = true

	cases := []struct {
		phase sim.Phase
		want  []sim.InputEvent
	}{
		{sim.PhaseMenu, []sim.InputEvent{sim.Select(sim.ControlStart)}},
		{sim.PhaseVictory, []sim.InputEvent{sim.Select(sim.ControlReplay)}},
		{sim.PhaseDefeat, []sim.InputEvent{sim.Select(sim.ControlReplay)}},
		{sim.PhasePlaying, nil},
	}
	for _, c := range cases {
		in := readInput(src, c.phase)
		if len(in.Events) != len(c.want) {
			t.Fatalf("%s: events = %v, want %v", c.phase, in.Events, c.want)
		}
		for i := range c.want {
			if in.Events[i] != c.want[i] {
				t.Fatalf("%s: event %d = %+v, want %+v", c.phase, i, in.Events[i], c.want[i])
			}
		}
	}
}

func TestReadInput_QuitAndClick(t *testing.T) {
	src := newFakeInput()
	src.just[ebiten.KeyEscape] = true
	src.click = &sim.Point{X: 400, Y: 300}

	in := readInput(src, sim.PhaseMenu)
	if len(in.Events) != 2 || in.Events[0].Kind != sim.InputQuit || in.Events[1] != sim.Click(sim.Point{X: 400, Y: 300}) {
		t.Fatalf("events = %+v", in.Events)
	}
}
