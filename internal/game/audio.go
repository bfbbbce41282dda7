package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/Garsondee/Battle-City/internal/logging"
	"github.com/Garsondee/Battle-City/internal/sim"
)

const audioSampleRate = 44100

// SoundKind names one synthesised effect.
type SoundKind int

const (
	SoundPlayerShot SoundKind = iota
	SoundEnemyShot
	SoundExplosion
	SoundPlayerHit
	soundKindCount
)

func (k SoundKind) String() string {
	switch k {
	case SoundPlayerShot:
		return "player_shot"
	case SoundEnemyShot:
		return "enemy_shot"
	case SoundExplosion:
		return "explosion"
	case SoundPlayerHit:
		return "player_hit"
	default:
		return "unknown"
	}
}

// soundFor maps an engine event to the effect it triggers.
func soundFor(k sim.EventKind) (SoundKind, bool) {
	switch k {
	case sim.EventPlayerFired:
		return SoundPlayerShot, true
	case sim.EventEnemyFired:
		return SoundEnemyShot, true
	case sim.EventWallDestroyed, sim.EventEnemyDestroyed:
		return SoundExplosion, true
	case sim.EventPlayerHit:
		return SoundPlayerHit, true
	default:
		return 0, false
	}
}

// Sounds plays a short effect for shots, explosions and hits. It implements
// sim.EventSink. Every effect is rendered to 16-bit stereo PCM once, up front.
type Sounds struct {
	bank  [soundKindCount][]byte
	out   func(pcm []byte)
	muted bool
	log   *zap.Logger
}

// NewSounds synthesises the sound bank. out receives the PCM of every effect
// that should play.
func NewSounds(out func(pcm []byte), log *zap.Logger) (*Sounds, error) {
	if log == nil {
		log = logging.Nop()
	}
	s := &Sounds{out: out, log: log}
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- noise for a sound effect
	for k := SoundKind(0); k < soundKindCount; k++ {
		st, err := synthesize(k, rng)
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", k, err)
		}
		pcm, err := renderPCM(st)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", k, err)
		}
		s.bank[k] = pcm
	}
	return s, nil
}

// Notify implements sim.EventSink.
func (s *Sounds) Notify(e sim.Event) {
	if s.muted || s.out == nil {
		return
	}
	if k, ok := soundFor(e.Kind); ok {
		s.out(s.bank[k])
	}
}

// PCM returns the rendered bytes of k.
func (s *Sounds) PCM(k SoundKind) []byte { return s.bank[k] }

// ToggleMute flips the mute state and returns the new one.
func (s *Sounds) ToggleMute() bool {
	s.muted = !s.muted
	s.log.Info("audio mute toggled", zap.Bool("muted", s.muted))
	return s.muted
}

// Muted reports whether effects are silenced.
func (s *Sounds) Muted() bool { return s.muted }

func synthesize(k SoundKind, rng *rand.Rand) (beep.Streamer, error) {
	sr := beep.SampleRate(audioSampleRate)
	switch k {
	case SoundPlayerShot:
		return tone(sr, 880, 60*time.Millisecond, 0.5)
	case SoundEnemyShot:
		return tone(sr, 440, 80*time.Millisecond, 0.35)
	case SoundExplosion:
		n := sr.N(220 * time.Millisecond)
		i := 0
		noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for j := range samples {
				if i >= n {
					return j, j > 0
				}
				decay := 1 - float64(i)/float64(n)
				v := (rng.Float64()*2 - 1) * decay
				samples[j][0], samples[j][1] = v, v
				i++
			}
			return len(samples), true
		})
		return withVolume(noise, 0.6), nil
	case SoundPlayerHit:
		hi, err := tone(sr, 330, 150*time.Millisecond, 0.6)
		if err != nil {
			return nil, err
		}
		lo, err := tone(sr, 165, 300*time.Millisecond, 0.6)
		if err != nil {
			return nil, err
		}
		return beep.Seq(hi, lo), nil
	default:
		return nil, fmt.Errorf("unknown sound %d", k)
	}
}

func tone(sr beep.SampleRate, freq float64, d time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return withVolume(beep.Take(sr.N(d), sine), vol), nil
}

// withVolume scales s linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// renderPCM drains a finite streamer into little-endian 16-bit stereo.
func renderPCM(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				x := int16(v * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ebitenOutput plays PCM through ebiten's audio context. Players are kept
// until they finish so they are not collected mid-sound.
func ebitenOutput(log *zap.Logger) func(pcm []byte) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(audioSampleRate)
	}
	var playing []*audio.Player
	return func(pcm []byte) {
		playing = reapFinished(playing, log)
		p := ctx.NewPlayerFromBytes(pcm)
		p.Play()
		playing = append(playing, p)
	}
}

type closablePlayer interface {
	IsPlaying() bool
	Close() error
}

// reapFinished closes players that have stopped and returns the rest, reusing
// the backing array.
func reapFinished[P closablePlayer](playing []P, log *zap.Logger) []P {
	kept := playing[:0]
	for _, p := range playing {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Debug("audio player close failed", zap.Error(err))
		}
	}
	return kept
}
