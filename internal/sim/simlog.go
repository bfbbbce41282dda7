package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event of a headless run.
type SimLogEntry struct {
	Tick     int
	Round    int
	Source   string // "player", "enemy" or "--"
	Category string // fire, collision, phase
	Key      string // event name within the category
	Value    string // human-readable detail
}

// String formats the entry as a fixed-width log line.
//
//	[R1 T=042] player fire      player_fired     at (355,515)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[R%d T=%03d] %-6s %-9s %-16s %s",
		e.Round, e.Tick, e.Source, e.Category, e.Key, e.Value)
}

// SimLog collects session events as structured entries. It implements
// EventSink so it can be plugged straight into a Session. Unlike the
// on-screen feed it is unbounded.
type SimLog struct {
	entries []SimLogEntry
	round   int
}

// NewSimLog returns an empty log.
func NewSimLog() *SimLog {
	return &SimLog{}
}

// Notify implements EventSink.
func (sl *SimLog) Notify(e Event) {
	switch e.Kind {
	case EventPhaseChanged:
		if e.To == PhasePlaying {
			sl.round++
		}
		sl.add(e.Tick, "--", "phase", e.Kind.String(), fmt.Sprintf("%s → %s", e.From, e.To))
	case EventPlayerFired:
		sl.add(e.Tick, "player", "fire", e.Kind.String(), fmt.Sprintf("at (%d,%d)", e.Pos.X, e.Pos.Y))
	case EventEnemyFired:
		sl.add(e.Tick, "enemy", "fire", e.Kind.String(), fmt.Sprintf("at (%d,%d)", e.Pos.X, e.Pos.Y))
	case EventWallDestroyed, EventEnemyDestroyed:
		sl.add(e.Tick, "player", "collision", e.Kind.String(), fmt.Sprintf("at (%d,%d)", e.Pos.X, e.Pos.Y))
	case EventPlayerHit:
		sl.add(e.Tick, "enemy", "collision", e.Kind.String(), fmt.Sprintf("player at (%d,%d)", e.Pos.X, e.Pos.Y))
	}
}

func (sl *SimLog) add(tick int, source, category, key, value string) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Round:    sl.round,
		Source:   source,
		Category: category,
		Key:      key,
		Value:    value,
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching category and key. An empty string matches
// anything.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category and key.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether any entry matches category, key and a value
// substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns the whole log, one entry per line, for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
