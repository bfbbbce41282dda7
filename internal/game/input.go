package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Battle-City/internal/sim"
)

// inputSource is the slice of ebiten's input state the shell reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	// Clicked reports a left-button press this frame and where it happened.
	Clicked() (sim.Point, bool)
}

type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) Clicked() (sim.Point, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return sim.Point{}, false
	}
	x, y := ebiten.CursorPosition()
	return sim.Point{X: x, Y: y}, true
}

// moveKeys lists held-key bindings in priority order; one move per tick.
var moveKeys = []struct {
	dir  sim.Direction
	keys [2]ebiten.Key
}{
	{sim.DirUp, [2]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{sim.DirDown, [2]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{sim.DirLeft, [2]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{sim.DirRight, [2]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// readInput turns this frame's key and mouse state into engine input for the
// given phase.
func readInput(src inputSource, phase sim.Phase) sim.Input {
	var evs []sim.InputEvent
	if src.JustPressed(ebiten.KeyEscape) {
		evs = append(evs, sim.Quit())
	}
	if p, ok := src.Clicked(); ok {
		evs = append(evs, sim.Click(p))
	}

	switch {
	case phase == sim.PhasePlaying:
		for _, m := range moveKeys {
			if src.Pressed(m.keys[0]) || src.Pressed(m.keys[1]) {
				evs = append(evs, sim.Move(m.dir))
				break
			}
		}
		if src.JustPressed(ebiten.KeySpace) {
			evs = append(evs, sim.Fire())
		}
	case phase == sim.PhaseMenu && src.JustPressed(ebiten.KeyEnter):
		evs = append(evs, sim.Select(sim.ControlStart))
	case phase.Terminal() && src.JustPressed(ebiten.KeyEnter):
		evs = append(evs, sim.Select(sim.ControlReplay))
	}
	return sim.Inputs(evs...)
}
