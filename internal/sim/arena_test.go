package sim

import (
	"errors"
	"testing"
)

func TestArena_DefaultGeometry(t *testing.T) {
	a := DefaultConfig().Arena()
	if a.PixelWidth() != 800 || a.PixelHeight() != 600 {
		t.Fatalf("arena = %dx%d, want 800x600", a.PixelWidth(), a.PixelHeight())
	}
	if got := a.PlayerStart(); got != (Point{360, 520}) {
		t.Fatalf("player start = %v, want (360,520)", got)
	}
	if !a.CanHold(a.PlayerStart()) {
		t.Fatal("player start must be playable")
	}
	if n := len(a.BackgroundTiles()); n != 18*13 {
		t.Fatalf("background tiles = %d, want %d", n, 18*13)
	}
}

func TestArena_CanHoldEdges(t *testing.T) {
	a := DefaultConfig().Arena()
	for _, p := range []Point{{40, 40}, {720, 40}, {40, 520}, {720, 520}} {
		if !a.CanHold(p) {
			t.Errorf("corner %v should be playable", p)
		}
	}
	for _, p := range []Point{{39, 40}, {721, 40}, {40, 521}, {40, 39}} {
		if a.CanHold(p) {
			t.Errorf("%v should be outside the playable bounds", p)
		}
	}
}

func TestGenerateWalls_PatternAndUniqueness(t *testing.T) {
	a := DefaultConfig().Arena()
	walls := GenerateWalls(a)
	if len(walls) != 35 {
		t.Fatalf("walls = %d, want 35", len(walls))
	}
	seen := map[Point]bool{}
	for _, w := range walls {
		if !w.Active {
			t.Fatalf("fresh wall at %v is inactive", w.Pos)
		}
		if seen[w.Pos] {
			t.Fatalf("duplicate wall at %v", w.Pos)
		}
		seen[w.Pos] = true
		col, row := w.Pos.X/a.TileSize, w.Pos.Y/a.TileSize
		if col%2 != 1 || row%2 != 1 || col < 3 || row < 3 {
			t.Fatalf("wall at tile (%d,%d) is off-pattern", col, row)
		}
	}
	if !seen[a.TileOrigin(5, 5)] {
		t.Fatal("expected a wall on tile (5,5)")
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.TileSize = 0 },
		func(c *Config) { c.WidthTiles = 4 },
		func(c *Config) { c.EnemyCount = -1 },
		func(c *Config) { c.ExtraShotChance = 1.5 },
		func(c *Config) { c.BulletSize = 80 },
		func(c *Config) { c.MaxSpawnAttempts = 0 },
	}
	for i, mut := range bad {
		c := DefaultConfig()
		mut(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}
