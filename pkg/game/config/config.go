// Package config holds simulation settings: defaults, an optional .env file
// and WUMPUS_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// MaxSize bounds the grid dimension so Size*Size stays small enough to allocate
const MaxSize = 1 << 10

// Environment variable names
const (
	EnvSize     = "WUMPUS_SIZE"
	EnvPits     = "WUMPUS_PITS"
	EnvWumpus   = "WUMPUS_COUNT"
	EnvGold     = "WUMPUS_GOLD"
	EnvTurns    = "WUMPUS_TURNS"
	EnvEpisodes = "WUMPUS_EPISODES"
	EnvSeed     = "WUMPUS_SEED"
	EnvLang     = "WUMPUS_LANG"
	EnvLocales  = "WUMPUS_LOCALES"
	EnvNoColor  = "NO_COLOR"
)

// Config holds the simulation's settings
type Config struct {
	Size     int   // Grid dimension (Size×Size)
	Pits     int   // Number of pits
	Wumpus   int   // Number of wumpus markers
	Gold     int   // Number of gold markers
	MaxTurns int   // Turn budget per episode
	Episodes int   // Independent episodes to run back to back
	Seed     int64 // Placement seed; episode i (from 1) uses Seed+i-1

	Lang       string // gotext language, e.g. "en" or "es"
	LocalesDir string // Directory holding <lang>/LC_MESSAGES/default.po
	Color      bool   // Colored terminal output
}

// Default returns the classic setup with a time-based seed
func Default() Config {
	return Config{
		Size:       4,
		Pits:       3,
		Wumpus:     1,
		Gold:       1,
		MaxTurns:   10,
		Episodes:   1,
		Seed:       time.Now().UnixNano(),
		Lang:       "en",
		LocalesDir: "locales",
		Color:      true,
	}
}

// Load returns Default overlaid with values from an optional .env file and
// the process environment
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("no .env loaded", "err", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvSize, &c.Size},
		{EnvPits, &c.Pits},
		{EnvWumpus, &c.Wumpus},
		{EnvGold, &c.Gold},
		{EnvTurns, &c.MaxTurns},
		{EnvEpisodes, &c.Episodes},
	}
	for _, v := range ints {
		raw, ok := lookup(v.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, EnvSeed, err)
		}
		c.Seed = n
	}
	if raw, ok := lookup(EnvLang); ok {
		c.Lang = raw
	}
	if raw, ok := lookup(EnvLocales); ok {
		c.LocalesDir = raw
	}
	if _, ok := lookup(EnvNoColor); ok {
		c.Color = false
	}
	return nil
}

// Validate checks counts are positive and the markers fit next to the
// reserved origin cell. Placement retries forever otherwise.
// Counts are checked one at a time against the remaining room; their sum
// may overflow.
func (c Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"size", c.Size},
		{"pits", c.Pits},
		{"wumpus", c.Wumpus},
		{"gold", c.Gold},
		{"turns", c.MaxTurns},
		{"episodes", c.Episodes},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if c.Size > MaxSize {
		return fmt.Errorf("%w: size must be at most %d, got %d", ErrInvalid, MaxSize, c.Size)
	}

	free := c.Size*c.Size - 1
	room := free
	for _, n := range []int{c.Wumpus, c.Pits, c.Gold} {
		if n > room {
			return fmt.Errorf("%w: %d wumpus, %d pits and %d gold do not fit in %d free cells of a %dx%d grid",
				ErrInvalid, c.Wumpus, c.Pits, c.Gold, free, c.Size, c.Size)
		}
		room -= n
	}
	return nil
}
