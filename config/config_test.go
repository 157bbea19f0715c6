package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
	assert.Equal(t, 100, cfg.MineCount)
	assert.Equal(t, 3, cfg.EmptyRadius)
	assert.Equal(t, 200*time.Millisecond, cfg.DoubleClickWindow)
	assert.Equal(t, board.Layout{OriginX: 32, OriginY: 127, CellSize: 35}, cfg.Layout)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ZeroWidth", func(c *config.Config) { c.Width = 0 }},
		{"NegativeMines", func(c *config.Config) { c.MineCount = -1 }},
		{"NegativeRadius", func(c *config.Config) { c.EmptyRadius = -2 }},
		{"NegativeWindow", func(c *config.Config) { c.DoubleClickWindow = -time.Second }},
		{"CellSize", func(c *config.Config) { c.Layout.CellSize = 0 }},
		{"NoPath", func(c *config.Config) { c.HighscorePath = "" }},
		{"LongName", func(c *config.Config) { c.PlayerName = "DEVS" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := config.Parse([]byte(`
width: 9
height: 9
mine_count: 10
double_click_window: 350ms
layout:
  cell_size: 20
`))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
	assert.Equal(t, 10, cfg.MineCount)
	assert.Equal(t, 3, cfg.EmptyRadius, "unset keys keep defaults")
	assert.Equal(t, 350*time.Millisecond, cfg.DoubleClickWindow)
	assert.Equal(t, 20, cfg.Layout.CellSize)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse([]byte("widht: 10\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse([]byte("width: -3\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse([]byte("width: [\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minesweeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player_name: abc\nmine_count: 40\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.MineCount)
	assert.Equal(t, "abc", cfg.PlayerName)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
