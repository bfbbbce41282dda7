package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Battle-City/internal/sim"
)

// SessionReport renders a plain-text account of the current round, the
// scoreboard and the recent event feed, suitable for pasting into a bug
// report.
func SessionReport(snap sim.Snapshot, tally *Tally, feed *EventFeed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Battle City session report ---\n")
	fmt.Fprintf(&b, "session=%s round=%d phase=%s tick=%d\n", snap.SessionID, snap.Round, snap.Phase, snap.Tick)

	st := snap.Stats
	won := snap.Phase == sim.PhaseVictory
	score := RoundScore(st, won)
	fmt.Fprintf(&b, "enemies: %d/%d destroyed, %d remaining\n", st.EnemiesDestroyed, st.EnemiesSpawned, len(snap.Enemies))
	fmt.Fprintf(&b, "shots: player=%d enemy=%d walls_destroyed=%d\n", st.ShotsFired, st.EnemyShots, st.WallsDestroyed)
	fmt.Fprintf(&b, "score: %.0f (%s)\n", score, LetterGrade(score))
	fmt.Fprintf(&b, "player: (%d,%d) facing %s, %d bullets in flight\n",
		snap.Player.X, snap.Player.Y, snap.PlayerFacing, len(snap.PlayerBullets))

	if tally != nil {
		fmt.Fprintf(&b, "\n%s\n", tally.Summary())
		b.WriteString(FormatResults(tally.Results()))
	}

	if feed != nil {
		entries := feed.Recent()
		if len(entries) > 0 {
			b.WriteString("\nevents:\n")
			for _, e := range entries {
				fmt.Fprintf(&b, "  [R%d T=%03d] %s\n", e.Round, e.Tick, e.Message)
			}
		}
	}
	return b.String()
}
