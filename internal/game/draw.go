package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Battle-City/internal/sim"
)

var (
	colFrame   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colTile    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colWall    = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	colPlayer  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colEnemy   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colBullet  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBarrel  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colButton  = color.RGBA{R: 40, G: 40, B: 48, A: 235}
	colOutline = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colShade   = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// labelFace is the bitmap font used for banners and button labels.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

func fillRect(dst *ebiten.Image, r sim.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawSnapshot renders one frame of the arena from snap.
func drawSnapshot(screen *ebiten.Image, snap sim.Snapshot) {
	vector.FillRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colFrame, false)
	for _, r := range snap.Background {
		fillRect(screen, r, colTile)
	}
	if snap.Phase == sim.PhaseMenu {
		drawBanner(screen, snap, "BATTLE CITY", colPlayer)
		drawControls(screen, snap.Controls)
		return
	}

	for _, r := range snap.Walls {
		fillRect(screen, r, colWall)
	}
	drawTank(screen, snap.Player, snap.PlayerFacing, colPlayer)
	for _, b := range snap.PlayerBullets {
		fillRect(screen, b, colBullet)
	}
	for _, e := range snap.Enemies {
		drawTank(screen, e.Box, e.Facing, colEnemy)
		for _, b := range e.Bullets {
			fillRect(screen, b, colBullet)
		}
	}

	switch snap.Phase {
	case sim.PhaseVictory:
		vector.FillRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colShade, false)
		drawBanner(screen, snap, "VICTORY", colPlayer)
		drawControls(screen, snap.Controls)
	case sim.PhaseDefeat:
		vector.FillRect(screen, 0, 0, float32(snap.Width), float32(snap.Height), colShade, false)
		drawBanner(screen, snap, "DEFEAT", colEnemy)
		drawControls(screen, snap.Controls)
	}
}

// drawTank fills the hull and marks the facing side with a short barrel.
func drawTank(screen *ebiten.Image, box sim.Rect, facing sim.Direction, c color.Color) {
	fillRect(screen, box, c)
	const barrel = 8
	centre := box.Center()
	var r sim.Rect
	switch facing {
	case sim.DirUp:
		r = sim.Rect{X: centre.X - barrel/2, Y: box.Y, W: barrel, H: box.H / 2}
	case sim.DirDown:
		r = sim.Rect{X: centre.X - barrel/2, Y: centre.Y, W: barrel, H: box.H / 2}
	case sim.DirLeft:
		r = sim.Rect{X: box.X, Y: centre.Y - barrel/2, W: box.W / 2, H: barrel}
	case sim.DirRight:
		r = sim.Rect{X: centre.X, Y: centre.Y - barrel/2, W: box.W / 2, H: barrel}
	default:
		return
	}
	fillRect(screen, r, colBarrel)
}

func drawBanner(screen *ebiten.Image, snap sim.Snapshot, s string, c color.Color) {
	y := float64(snap.Height) / 4
	if len(snap.Controls) > 0 {
		y = float64(snap.Controls[0].Box.Y) - 70
	}
	drawLabel(screen, s, float64(snap.Width)/2, y, 4, c)
}

func drawControls(screen *ebiten.Image, controls []sim.Control) {
	for _, c := range controls {
		fillRect(screen, c.Box, colButton)
		vector.StrokeRect(screen, float32(c.Box.X), float32(c.Box.Y), float32(c.Box.W), float32(c.Box.H), 2, colOutline, false)
		mid := c.Box.Center()
		drawLabel(screen, c.Label, float64(mid.X), float64(mid.Y), 2, colOutline)
	}
}

// drawLabel draws s centred on (cx, cy), scaled up from the bitmap font.
func drawLabel(screen *ebiten.Image, s string, cx, cy, scale float64, c color.Color) {
	w, h := text.Measure(s, labelFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, labelFace, op)
}

// hudLines is the status text drawn in the top frame row.
func hudLines(snap sim.Snapshot, tally *Tally, muted, autopilot bool) []string {
	sound := "on"
	if muted {
		sound = "off"
	}
	pilot := ""
	if autopilot {
		pilot = "  AUTOPILOT"
	}
	return []string{
		fmt.Sprintf("Round %d  Enemies %d  Shots %d  Kills %d  %s%s",
			snap.Round, len(snap.Enemies), snap.Stats.ShotsFired, snap.Stats.EnemiesDestroyed, tally.Summary(), pilot),
		fmt.Sprintf("[Space] fire  [C] copy report  [M] sound %s  [T] autopilot  [Esc] quit", sound),
	}
}

func drawHUD(screen *ebiten.Image, lines []string) {
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, 2+i*16)
	}
}
