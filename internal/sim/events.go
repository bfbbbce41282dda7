package sim

//go:generate go tool mockgen -source=events.go -destination=mock_events_test.go -package=sim

// EventKind identifies what happened.
type EventKind int

const (
	EventPlayerFired EventKind = iota
	EventEnemyFired
	EventWallDestroyed
	EventEnemyDestroyed
	EventPlayerHit
	EventPhaseChanged
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerFired:
		return "player_fired"
	case EventEnemyFired:
		return "enemy_fired"
	case EventWallDestroyed:
		return "wall_destroyed"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification. Pos is set for positional
// events; From/To for phase changes.
type Event struct {
	Kind EventKind
	Tick int
	Pos  Point
	From Phase
	To   Phase
}

// EventSink receives events synchronously from inside Session.Step.
// Implementations must not call back into the session.
type EventSink interface {
	Notify(e Event)
}

// MultiSink fans an event out to several sinks in order.
type MultiSink []EventSink

// Notify implements EventSink.
func (m MultiSink) Notify(e Event) {
	for _, s := range m {
		if s != nil {
			s.Notify(e)
		}
	}
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// Notify implements EventSink.
func (f SinkFunc) Notify(e Event) { f(e) }
