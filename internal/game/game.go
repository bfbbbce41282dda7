package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/Garsondee/Battle-City/internal/logging"
	"github.com/Garsondee/Battle-City/internal/sim"
)

// Options configures the windowed game.
type Options struct {
	Config sim.Config
	// Seed drives spawns and enemy AI; 0 picks one from the clock.
	Seed   int64
	Logger *zap.Logger
	// Muted starts with sound effects off.
	Muted bool
	// NoAudio skips creating the audio context entirely.
	NoAudio bool
	// Autopilot starts in demo mode.
	Autopilot bool
}

// Game adapts a sim.Session to ebiten: it polls input, steps the session
// once per tick and draws the resulting snapshot.
type Game struct {
	session *sim.Session
	feed    *EventFeed
	tally   *Tally
	sounds  *Sounds
	pilot   *Autopilot
	log     *zap.Logger

	src         inputSource
	copyText    func(string) error
	autopilotOn bool
	notice      string
	noticeUntil int
	frame       int
}

// New builds the session and its sinks.
func New(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		feed:        NewEventFeed(),
		tally:       NewTally(),
		pilot:       NewAutopilot(12),
		log:         log,
		src:         ebitenInput{},
		copyText:    clipboard.WriteAll,
		autopilotOn: opts.Autopilot,
	}

	sinks := sim.MultiSink{g.feed, g.tally}
	if !opts.NoAudio {
		sounds, err := NewSounds(ebitenOutput(log), log)
		if err != nil {
			log.Warn("sound effects disabled", zap.Error(err))
		} else {
			if opts.Muted {
				sounds.ToggleMute()
			}
			g.sounds = sounds
			sinks = append(sinks, sounds)
		}
	}

	session, err := sim.NewSession(opts.Config,
		sim.WithRand(rand.New(rand.NewSource(seed))), // #nosec G404 -- game only
		sim.WithSink(sinks),
		sim.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	g.session = session
	log.Info("game ready",
		zap.Int64("seed", seed),
		zap.Int("enemies", opts.Config.EnemyCount),
		zap.Bool("audio", g.sounds != nil))
	return g, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *sim.Session { return g.session }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.frame++
	g.handleShellKeys()

	phase := g.session.Phase()
	in := readInput(g.src, phase)
	if g.autopilotOn && phase == sim.PhasePlaying {
		in = g.withAutopilot(in)
	}

	if g.session.Step(in) == sim.PhaseTerminated {
		g.log.Info("session terminated", zap.String("tally", g.tally.Summary()))
		return ebiten.Termination
	}
	return nil
}

// handleShellKeys processes keys that never reach the engine.
func (g *Game) handleShellKeys() {
	if g.src.JustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if g.src.JustPressed(ebiten.KeyM) && g.sounds != nil {
		if g.sounds.ToggleMute() {
			g.flash("sound off")
		} else {
			g.flash("sound on")
		}
	}
	if g.src.JustPressed(ebiten.KeyT) {
		g.autopilotOn = !g.autopilotOn
		g.log.Info("autopilot toggled", zap.Bool("on", g.autopilotOn))
	}
}

// withAutopilot replaces the player's moves and shots with the autopilot's,
// keeping any quit or click.
func (g *Game) withAutopilot(in sim.Input) sim.Input {
	kept := in.Events[:0]
	for _, ev := range in.Events {
		if ev.Kind != sim.InputMove && ev.Kind != sim.InputFire {
			kept = append(kept, ev)
		}
	}
	return sim.Input{Events: append(kept, g.pilot.Next(g.session.Snapshot())...)}
}

// copyReport puts the session report on the clipboard. If that fails the
// report goes to the log instead.
func (g *Game) copyReport() {
	report := SessionReport(g.session.Snapshot(), g.tally, g.feed)
	if err := g.copyText(report); err != nil {
		g.log.Warn("clipboard unavailable, report logged instead", zap.Error(err))
		g.log.Info("session report", zap.String("report", report))
		g.flash("clipboard unavailable: report written to log")
		return
	}
	g.flash("report copied to clipboard")
}

func (g *Game) flash(msg string) {
	g.notice = msg
	g.noticeUntil = g.frame + 2*g.session.Config().TPS
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	snap := g.session.Snapshot()
	drawSnapshot(screen, snap)

	muted := g.sounds == nil || g.sounds.Muted()
	drawHUD(screen, hudLines(snap, g.tally, muted, g.autopilotOn))

	bottom := snap.Height - snap.TileSize + 4
	if err := g.session.Err(); err != nil && snap.Phase == sim.PhaseMenu {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cannot start: %v", err), 6, bottom)
	} else if g.frame < g.noticeUntil {
		ebitenutil.DebugPrintAt(screen, g.notice, 6, bottom)
	}

	g.feed.Draw(screen, snap.Width, snap.Height)
}

// Layout implements ebiten.Game: the arena plus the feed panel.
func (g *Game) Layout(_, _ int) (int, int) {
	a := g.session.Arena()
	return a.PixelWidth() + feedPanelWidth, a.PixelHeight()
}
