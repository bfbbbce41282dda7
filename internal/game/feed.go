package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Battle-City/internal/sim"
)

const (
	feedPanelWidth = 240
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Round   int
	Kind    sim.EventKind
	Message string
}

// EventFeed is a ring buffer of notable session events rendered beside the
// arena. Shots are left out; they would drown everything else.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
	round   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Notify implements sim.EventSink.
func (f *EventFeed) Notify(e sim.Event) {
	var msg string
	switch e.Kind {
	case sim.EventWallDestroyed:
		msg = fmt.Sprintf("wall down at (%d,%d)", e.Pos.X, e.Pos.Y)
	case sim.EventEnemyDestroyed:
		msg = fmt.Sprintf("enemy destroyed at (%d,%d)", e.Pos.X, e.Pos.Y)
	case sim.EventPlayerHit:
		msg = "player hit"
	case sim.EventPhaseChanged:
		if e.To == sim.PhasePlaying {
			f.round++
		}
		msg = fmt.Sprintf("%s -> %s", e.From, e.To)
	default:
		return
	}
	f.Add(e.Tick, e.Kind, msg)
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, kind sim.EventKind, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:    tick,
		Round:   f.round,
		Kind:    kind,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func feedColor(k sim.EventKind) color.RGBA {
	switch k {
	case sim.EventEnemyDestroyed:
		return color.RGBA{R: 220, G: 70, B: 70, A: 255}
	case sim.EventWallDestroyed:
		return color.RGBA{R: 150, G: 90, B: 40, A: 255}
	case sim.EventPlayerHit:
		return color.RGBA{R: 255, G: 220, B: 0, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

// Draw renders the feed panel at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, float32(panelH), color.RGBA{R: 14, G: 14, B: 18, A: 255}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 70, G: 70, B: 80, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, 18, color.RGBA{R: 28, G: 28, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 22
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 40, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
