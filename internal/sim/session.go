package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Phase is the session state machine's state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseVictory
	PhaseDefeat
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Terminal reports whether p is an end-of-round screen.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Clock supplies wall-clock time for the terminal dwell.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Stats are per-round counters, cleared on every reset.
type Stats struct {
	Ticks            int
	ShotsFired       int
	EnemyShots       int
	WallsDestroyed   int
	EnemiesDestroyed int
	EnemiesSpawned   int
}

// Session is the aggregate root: arena, walls, player, enemies and the phase.
// The player tank lives for the whole session; walls and enemies are rebuilt
// on every reset. Step is the only mutator and must be called from a single
// goroutine.
type Session struct {
	cfg   Config
	arena Arena

	walls   []*Wall
	player  *Tank
	pilot   *HumanPolicy
	enemies []*Tank

	phase      Phase
	id         string
	round      int
	tick       int
	stats      Stats
	dwellStart time.Time
	quit       bool
	err        error

	rng   *rand.Rand
	clock Clock
	sink  EventSink
	log   *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used by AI headings, extra shots and spawns.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithClock overrides the wall clock used for the terminal dwell.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithSink registers the event receiver.
func WithSink(sink EventSink) Option {
	return func(s *Session) { s.sink = sink }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession validates cfg and returns a session sitting in the menu.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:   cfg,
		arena: cfg.Arena(),
		phase: PhaseMenu,
		clock: SystemClock{},
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	s.pilot = NewHumanPolicy(cfg.MoveStep)
	s.player = NewTank(TankPlayer, s.arena.PlayerStart(), DirUp, cfg, s.pilot)
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// ID returns the identifier of the current round; it changes on every reset.
func (s *Session) ID() string { return s.id }

// Round returns how many rounds have been started.
func (s *Session) Round() int { return s.round }

// Tick returns the number of Playing ticks in the current round.
func (s *Session) Tick() int { return s.tick }

// Stats returns the current round's counters.
func (s *Session) Stats() Stats { return s.stats }

// Err returns the last reset failure, or nil.
func (s *Session) Err() error { return s.err }

// Config returns the session constants.
func (s *Session) Config() Config { return s.cfg }

// Arena returns the arena geometry.
func (s *Session) Arena() Arena { return s.arena }

// Player returns the player tank.
func (s *Session) Player() *Tank { return s.player }

// Enemies returns the live enemy collection.
func (s *Session) Enemies() []*Tank { return s.enemies }

// Walls returns every wall of the round, active or not.
func (s *Session) Walls() []*Wall { return s.walls }

// Step runs one tick of the state machine and returns the resulting phase.
func (s *Session) Step(in Input) Phase {
	switch s.phase {
	case PhaseMenu:
		s.stepMenu(in)
	case PhasePlaying:
		s.stepPlaying(in)
	case PhaseVictory, PhaseDefeat:
		s.stepTerminal(in)
	case PhaseTerminated:
	}
	return s.phase
}

func (s *Session) stepMenu(in Input) {
	for _, ev := range in.Events {
		if ev.Kind == InputQuit {
			s.setPhase(PhaseTerminated)
			return
		}
		id, ok := s.resolveControl(ev)
		if !ok {
			continue
		}
		switch id {
		case ControlStart:
			s.start()
		case ControlExit:
			s.setPhase(PhaseTerminated)
		}
		return
	}
}

func (s *Session) stepTerminal(in Input) {
	for _, ev := range in.Events {
		if ev.Kind == InputQuit {
			s.setPhase(PhaseTerminated)
			return
		}
		id, ok := s.resolveControl(ev)
		if !ok {
			continue
		}
		switch id {
		case ControlReplay:
			s.start()
		case ControlExit:
			s.setPhase(PhaseTerminated)
		}
		return
	}
	// A non-positive dwell disables auto-replay. After a failed replay only an
	// explicit Replay tries again.
	if s.err == nil && s.cfg.DwellDuration > 0 && s.clock.Now().Sub(s.dwellStart) >= s.cfg.DwellDuration {
		s.start()
	}
}

// stepPlaying runs one game tick: input, player, enemies, collisions, then
// terminal evaluation. A quit is latched and honoured after the tick.
func (s *Session) stepPlaying(in Input) {
	s.tick++
	s.stats.Ticks++

	for _, ev := range in.Events {
		switch ev.Kind {
		case InputMove:
			s.pilot.QueueMove(ev.Dir)
		case InputFire:
			s.pilot.QueueFire()
		case InputQuit:
			s.quit = true
		}
	}

	env := Env{Walls: s.walls, Rand: s.rng, Fire: s.fire}

	s.player.Policy().Think(s.player, env)
	s.player.UpdateBullets()

	for _, e := range s.enemies {
		e.Policy().Think(e, env)
		if s.cfg.ExtraShotChance > 0 && s.rng.Float64() < s.cfg.ExtraShotChance {
			s.fire(e)
		}
		e.UpdateBullets()
	}

	var res CollisionResult
	s.enemies, res = ResolveCollisions(s.player, s.enemies, s.walls)
	for _, p := range res.WallsDestroyed {
		s.stats.WallsDestroyed++
		s.emit(Event{Kind: EventWallDestroyed, Pos: p})
	}
	for _, p := range res.EnemiesDestroyed {
		s.stats.EnemiesDestroyed++
		s.emit(Event{Kind: EventEnemyDestroyed, Pos: p})
	}
	if res.PlayerHit {
		s.emit(Event{Kind: EventPlayerHit, Pos: s.player.Pos})
	}

	switch {
	case s.quit:
		s.setPhase(PhaseTerminated)
	case res.PlayerHit:
		s.enterTerminal(PhaseDefeat)
	case res.Victory:
		s.enterTerminal(PhaseVictory)
	}
}

// fire shoots from t and reports the shot.
func (s *Session) fire(t *Tank) {
	b := t.Shoot()
	if b == nil {
		return
	}
	if t.Kind == TankPlayer {
		s.stats.ShotsFired++
		s.emit(Event{Kind: EventPlayerFired, Pos: b.Pos})
		return
	}
	s.stats.EnemyShots++
	s.emit(Event{Kind: EventEnemyFired, Pos: b.Pos})
}

// start resets the round and enters Playing. A failed reset leaves the phase
// untouched and records the error.
func (s *Session) start() {
	if err := s.reset(); err != nil {
		s.err = err
		s.log.Error("round start aborted",
			zap.Int("enemies", s.cfg.EnemyCount),
			zap.Error(err))
		return
	}
	s.err = nil
	s.setPhase(PhasePlaying)
}

// reset regenerates walls and enemies and puts the player back on its
// starting tile.
func (s *Session) reset() error {
	walls := GenerateWalls(s.arena)
	start := s.arena.PlayerStart()
	startBox := RectAt(start, s.arena.TileSize)

	// Session state is only mutated once placement has succeeded.
	spots, err := PlaceEnemies(s.cfg.EnemyCount, s.arena, walls, startBox, s.rng, s.cfg.MaxSpawnAttempts)
	if err != nil {
		return err
	}

	s.player.Pos = start
	s.player.Facing = DirUp
	s.player.Bullets = nil
	s.player.Active = true
	s.pilot.Reset()
	enemies := make([]*Tank, 0, len(spots))
	for _, p := range spots {
		enemies = append(enemies, NewTank(TankEnemy, p, DirDown, s.cfg, NewAIPolicy(s.cfg)))
	}

	s.walls = walls
	s.enemies = enemies
	s.id = uuid.NewString()
	s.round++
	s.tick = 0
	s.quit = false
	s.stats = Stats{EnemiesSpawned: len(enemies)}

	s.log.Info("round reset",
		zap.String("session", s.id),
		zap.Int("round", s.round),
		zap.Int("walls", len(walls)),
		zap.Int("enemies", len(enemies)))
	return nil
}

func (s *Session) enterTerminal(p Phase) {
	s.dwellStart = s.clock.Now()
	s.setPhase(p)
}

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	from := s.phase
	s.phase = p
	s.log.Info("phase change",
		zap.String("session", s.id),
		zap.Stringer("from", from),
		zap.Stringer("to", p),
		zap.Int("tick", s.tick))
	s.emit(Event{Kind: EventPhaseChanged, From: from, To: p})
}

func (s *Session) emit(e Event) {
	if s.sink == nil {
		return
	}
	e.Tick = s.tick
	s.sink.Notify(e)
}

// resolveControl maps a click or select event to a control of the current
// phase.
func (s *Session) resolveControl(ev InputEvent) (ControlID, bool) {
	for _, c := range s.Controls() {
		switch ev.Kind {
		case InputClick:
			if c.Box.Contains(ev.At) {
				return c.ID, true
			}
		case InputSelect:
			if c.ID == ev.Control {
				return c.ID, true
			}
		}
	}
	return 0, false
}

const (
	controlWidth  = 200
	controlHeight = 50
	controlGap    = 20
)

// Controls returns the clickable controls shown in the current phase,
// stacked and centred in the arena.
func (s *Session) Controls() []Control {
	var ids []ControlID
	switch s.phase {
	case PhaseMenu:
		ids = []ControlID{ControlStart, ControlExit}
	case PhaseVictory, PhaseDefeat:
		ids = []ControlID{ControlReplay, ControlExit}
	default:
		return nil
	}
	total := len(ids)*controlHeight + (len(ids)-1)*controlGap
	x := (s.arena.PixelWidth() - controlWidth) / 2
	y := (s.arena.PixelHeight()-total)/2 + controlHeight
	out := make([]Control, 0, len(ids))
	for i, id := range ids {
		out = append(out, Control{
			ID:    id,
			Label: controlLabel(id),
			Box:   Rect{X: x, Y: y + i*(controlHeight+controlGap), W: controlWidth, H: controlHeight},
		})
	}
	return out
}

func controlLabel(id ControlID) string {
	switch id {
	case ControlStart:
		return "Start"
	case ControlReplay:
		return "Replay"
	case ControlExit:
		return "Exit"
	default:
		return "?"
	}
}
