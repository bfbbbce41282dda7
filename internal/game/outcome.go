package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Battle-City/internal/sim"
)

// RoundOutcome is how a round ended.
type RoundOutcome int

const (
	OutcomeVictory RoundOutcome = iota
	OutcomeDefeat
	OutcomeAbandoned
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// RoundResult is one finished round.
type RoundResult struct {
	Round   int
	Outcome RoundOutcome
	Ticks   int
}

// Tally records round results from phase changes. It implements sim.EventSink.
type Tally struct {
	results []RoundResult
	round   int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{}
}

// Notify implements sim.EventSink.
func (t *Tally) Notify(e sim.Event) {
	if e.Kind != sim.EventPhaseChanged {
		return
	}
	if e.To == sim.PhasePlaying {
		t.round++
		return
	}
	if e.From != sim.PhasePlaying {
		return
	}
	var o RoundOutcome
	switch e.To {
	case sim.PhaseVictory:
		o = OutcomeVictory
	case sim.PhaseDefeat:
		o = OutcomeDefeat
	case sim.PhaseTerminated:
		o = OutcomeAbandoned
	default:
		return
	}
	t.results = append(t.results, RoundResult{Round: t.round, Outcome: o, Ticks: e.Tick})
}

// Results returns every finished round in order.
func (t *Tally) Results() []RoundResult {
	return t.results
}

// Count returns how many rounds ended with o.
func (t *Tally) Count(o RoundOutcome) int {
	n := 0
	for _, r := range t.results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Streak returns the number of consecutive victories ending with the latest
// round.
func (t *Tally) Streak() int {
	n := 0
	for i := len(t.results) - 1; i >= 0; i-- {
		if t.results[i].Outcome != OutcomeVictory {
			break
		}
		n++
	}
	return n
}

// Summary is a one-line scoreboard.
func (t *Tally) Summary() string {
	return fmt.Sprintf("rounds=%d won=%d lost=%d streak=%d",
		len(t.results), t.Count(OutcomeVictory), t.Count(OutcomeDefeat), t.Streak())
}

// RoundScore rates a round 0-100 from the player's accuracy and how much of
// the enemy force was destroyed.
func RoundScore(st sim.Stats, won bool) float64 {
	score := 0.0
	if st.EnemiesSpawned > 0 {
		score += 60 * float64(st.EnemiesDestroyed) / float64(st.EnemiesSpawned)
	}
	if st.ShotsFired > 0 {
		// Clearing a wall counts for a quarter of a kill.
		acc := (float64(st.EnemiesDestroyed) + 0.25*float64(st.WallsDestroyed)) / float64(st.ShotsFired)
		if acc > 1 {
			acc = 1
		}
		score += 30 * acc
	}
	if won {
		score += 10
	}
	return score
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// FormatResults renders the results as a table, newest last.
func FormatResults(results []RoundResult) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "  round %-3d %-9s ticks=%d\n", r.Round, r.Outcome, r.Ticks)
	}
	return b.String()
}
