// Package config holds the constants fixed at process start: board size,
// mine count, empty radius, double-click window, player name, highscore
// file and screen layout.
//
// Default reproduces the classic game; Load overlays a YAML file on top of
// the defaults and validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/highscore"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of process-wide settings.
type Config struct {
	Width             int           `yaml:"width"`
	Height            int           `yaml:"height"`
	MineCount         int           `yaml:"mine_count"`
	EmptyRadius       int           `yaml:"empty_radius"`
	DoubleClickWindow time.Duration `yaml:"double_click_window"`
	PlayerName        string        `yaml:"player_name"`
	HighscorePath     string        `yaml:"highscore_path"`
	Layout            board.Layout  `yaml:"layout"`
}

// Default returns the classic 32×16 board with 100 mines.
func Default() Config {
	return Config{
		Width:             32,
		Height:            16,
		MineCount:         100,
		EmptyRadius:       3,
		DoubleClickWindow: 200 * time.Millisecond,
		PlayerName:        "DEV",
		HighscorePath:     "highscores.txt",
		Layout:            board.DefaultLayout(),
	}
}

// Validate reports the first unusable setting, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MineCount < 0:
		return fmt.Errorf("%w: mine_count cannot be negative (%d)", ErrInvalidConfig, c.MineCount)
	case c.EmptyRadius < 0:
		return fmt.Errorf("%w: empty_radius cannot be negative (%d)", ErrInvalidConfig, c.EmptyRadius)
	case c.DoubleClickWindow < 0:
		return fmt.Errorf("%w: double_click_window cannot be negative (%s)", ErrInvalidConfig, c.DoubleClickWindow)
	case c.Layout.CellSize <= 0:
		return fmt.Errorf("%w: layout.cell_size must be positive (%d)", ErrInvalidConfig, c.Layout.CellSize)
	case c.HighscorePath == "":
		return fmt.Errorf("%w: highscore_path is empty", ErrInvalidConfig)
	}
	if _, err := highscore.NormalizeName(c.PlayerName); err != nil {
		return fmt.Errorf("%w: player_name: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}
