package sim

// InputKind identifies an input event.
type InputKind int

const (
	InputMove InputKind = iota
	InputFire
	InputClick
	InputSelect
	InputQuit
)

// ControlID names a clickable menu control.
type ControlID int

const (
	ControlStart ControlID = iota
	ControlReplay
	ControlExit
)

func (c ControlID) String() string {
	switch c {
	case ControlStart:
		return "start"
	case ControlReplay:
		return "replay"
	case ControlExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Control is a rectangular hit region on a menu screen.
type Control struct {
	ID    ControlID
	Label string
	Box   Rect
}

// InputEvent is one observed input. Only the field matching Kind is used.
type InputEvent struct {
	Kind    InputKind
	Dir     Direction // InputMove
	At      Point     // InputClick, screen space
	Control ControlID // InputSelect
}

// Input is everything observed during one tick, in arrival order.
type Input struct {
	Events []InputEvent
}

// Inputs bundles events into an Input.
func Inputs(events ...InputEvent) Input {
	return Input{Events: events}
}

// Move is a directional move event.
func Move(d Direction) InputEvent { return InputEvent{Kind: InputMove, Dir: d} }

// Fire is a fire event.
func Fire() InputEvent { return InputEvent{Kind: InputFire} }

// Click is a pointer click at p.
func Click(p Point) InputEvent { return InputEvent{Kind: InputClick, At: p} }

// Select activates a control directly, as a keyboard shortcut would.
func Select(id ControlID) InputEvent { return InputEvent{Kind: InputSelect, Control: id} }

// Quit is the quit signal.
func Quit() InputEvent { return InputEvent{Kind: InputQuit} }
