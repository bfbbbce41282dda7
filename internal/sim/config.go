package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the session constants. None of them change while a session runs.
type Config struct {
	TileSize    int
	WidthTiles  int
	HeightTiles int

	EnemyCount int
	MoveStep   int // px per player move event and per AI move

	BulletSpeed int // px per tick
	BulletSize  int

	EnemyMoveCooldown  int     // ticks between AI heading changes
	EnemyShootCooldown int     // ticks between scheduled AI shots
	ExtraShotChance    float64 // per enemy per tick, [0,1]

	DwellDuration time.Duration // terminal screen dwell before auto-replay
	TPS           int

	MaxSpawnAttempts int // per enemy
}

// DefaultConfig returns the reference constants: an 800x600 field of 40px tiles.
func DefaultConfig() Config {
	return Config{
		TileSize:           40,
		WidthTiles:         20,
		HeightTiles:        15,
		EnemyCount:         5,
		MoveStep:           5,
		BulletSpeed:        5,
		BulletSize:         10,
		EnemyMoveCooldown:  15,
		EnemyShootCooldown: 60,
		ExtraShotChance:    0.02,
		DwellDuration:      3 * time.Second,
		TPS:                60,
		MaxSpawnAttempts:   1000,
	}
}

// Validate checks that the config describes a playable arena.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"tile size", c.TileSize},
		{"move step", c.MoveStep},
		{"bullet speed", c.BulletSpeed},
		{"bullet size", c.BulletSize},
		{"enemy move cooldown", c.EnemyMoveCooldown},
		{"enemy shoot cooldown", c.EnemyShootCooldown},
		{"tps", c.TPS},
		{"max spawn attempts", c.MaxSpawnAttempts},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalidConfig, p.name, p.v)
		}
	}
	// The spawn region is tiles [2, n-3]; it needs at least one tile.
	if c.WidthTiles < 5 || c.HeightTiles < 5 {
		return fmt.Errorf("%w: arena must be at least 5x5 tiles, got %dx%d",
			ErrInvalidConfig, c.WidthTiles, c.HeightTiles)
	}
	if c.EnemyCount < 0 {
		return fmt.Errorf("%w: enemy count must be >= 0, got %d", ErrInvalidConfig, c.EnemyCount)
	}
	if c.ExtraShotChance < 0 || c.ExtraShotChance > 1 {
		return fmt.Errorf("%w: extra shot chance must be in [0,1], got %g", ErrInvalidConfig, c.ExtraShotChance)
	}
	if c.BulletSize > c.TileSize {
		return fmt.Errorf("%w: bullet size %d exceeds tile size %d", ErrInvalidConfig, c.BulletSize, c.TileSize)
	}
	if c.DwellDuration < 0 {
		return fmt.Errorf("%w: dwell duration must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// Arena builds the arena geometry described by c.
func (c Config) Arena() Arena {
	return Arena{TileSize: c.TileSize, WidthTiles: c.WidthTiles, HeightTiles: c.HeightTiles}
}
