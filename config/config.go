// Package config holds the start-of-session settings: board geometry and
// tick rate. Values come from defaults, then an optional .env file and SNAKE_*
// environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"the-snake/game/types"

	"github.com/joho/godotenv"
)

const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultSpeed        = 20 // ticks per second
)

type Config struct {
	ScreenWidth     int
	ScreenHeight    int
	CellSize        int
	Speed           int
	Seed            uint64 // 0 means seed from the clock
	ImmediateGrowth bool   // grow on the eating tick instead of the next one
}

func Default() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		CellSize:     DefaultCellSize,
		Speed:        DefaultSpeed,
	}
}

// Load builds the configuration. envFiles are loaded with godotenv without
// overriding variables already set; missing files are skipped. Flags are
// registered on fset and parsed from args.
func Load(fset *flag.FlagSet, args []string, envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	cfg.BindFlags(fset)
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers one flag per field, defaulting to the current values
func (c *Config) BindFlags(fset *flag.FlagSet) {
	fset.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "Board width in pixels")
	fset.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "Board height in pixels")
	fset.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fset.IntVar(&c.Speed, "speed", c.Speed, "Game speed in ticks per second")
	fset.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed (0 = random)")
	fset.BoolVar(&c.ImmediateGrowth, "immediate-growth", c.ImmediateGrowth, "Grow on the tick food is eaten")
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_SCREEN_WIDTH", &c.ScreenWidth},
		{"SNAKE_SCREEN_HEIGHT", &c.ScreenHeight},
		{"SNAKE_CELL_SIZE", &c.CellSize},
		{"SNAKE_SPEED", &c.Speed},
	}
	for _, v := range ints {
		s, ok := os.LookupEnv(v.key)
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if s, ok := os.LookupEnv("SNAKE_SEED"); ok && s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = n
	}
	if s, ok := os.LookupEnv("SNAKE_IMMEDIATE_GROWTH"); ok && s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("SNAKE_IMMEDIATE_GROWTH: %w", err)
		}
		c.ImmediateGrowth = b
	}
	return nil
}

func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.Speed)
	}
	// Food needs at least one cell besides the spawn cell
	if g := c.Grid(); g.Width < 1 || g.Height < 1 || g.Cells() < 2 {
		return fmt.Errorf("a %dx%d board with %dpx cells has fewer than 2 cells", c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.NewGrid(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}
