package game

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed        = "TILENAV_SEED"
	EnvTickRate    = "TILENAV_TICK_HZ"
	EnvTileSize    = "TILENAV_TILE_SIZE"
	EnvPlayerSpeed = "TILENAV_PLAYER_SPEED"
	EnvWalkers     = "TILENAV_WALKERS"
	EnvMap         = "TILENAV_MAP"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeons and
	// spawns. A seed of 0 means a random seed will be generated.
	Seed int64

	// TickRate is the number of fixed movement steps per second.
	TickRate int

	// TileSize is the world width of one tile.
	TileSize float64

	// PlayerSpeed is in tiles per second.
	PlayerSpeed float64

	// Walkers is how many walkers to spawn.
	Walkers int

	// MapPath optionally names a text map to load instead of generating one.
	MapPath string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		TickRate:    50,
		TileSize:    1,
		PlayerSpeed: 6,
		Walkers:     6,
	}
}

// LoadConfig starts from DefaultConfig and applies any TILENAV_* variables
// present in the environment.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := lookup(EnvSeed, func(v string) (err error) {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		return err
	}); err != nil {
		return cfg, err
	}
	if err := lookup(EnvTickRate, func(v string) (err error) {
		cfg.TickRate, err = strconv.Atoi(v)
		return err
	}); err != nil {
		return cfg, err
	}
	if err := lookup(EnvTileSize, func(v string) (err error) {
		cfg.TileSize, err = strconv.ParseFloat(v, 64)
		return err
	}); err != nil {
		return cfg, err
	}
	if err := lookup(EnvPlayerSpeed, func(v string) (err error) {
		cfg.PlayerSpeed, err = strconv.ParseFloat(v, 64)
		return err
	}); err != nil {
		return cfg, err
	}
	if err := lookup(EnvWalkers, func(v string) (err error) {
		cfg.Walkers, err = strconv.Atoi(v)
		return err
	}); err != nil {
		return cfg, err
	}
	cfg.MapPath = os.Getenv(EnvMap)

	return cfg, cfg.Validate()
}

func lookup(name string, parse func(string) error) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	if err := parse(v); err != nil {
		return fmt.Errorf("invalid %s=%q: %w", name, v, err)
	}
	return nil
}

// Validate rejects settings the movement controller cannot run with.
func (c Config) Validate() error {
	switch {
	case c.TickRate <= 0:
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	case c.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %v", c.TileSize)
	case c.PlayerSpeed <= 0:
		return fmt.Errorf("player speed must be positive, got %v", c.PlayerSpeed)
	case c.Walkers < 0:
		return fmt.Errorf("walker count must not be negative, got %d", c.Walkers)
	}
	return nil
}

// TickInterval is the wall-clock time between fixed steps.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
