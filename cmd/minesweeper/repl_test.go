package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/config"
	"github.com/katalvlaran/minesweeper/game"
	"github.com/katalvlaran/minesweeper/highscore"
)

func newTestREPL(t *testing.T, cfg config.Config) (*repl, *bytes.Buffer) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := highscore.NewStore(filepath.Join(t.TempDir(), "scores.txt"), highscore.WithLogger(log))
	sess, err := game.New(cfg, game.WithSeed(5), game.WithRecorder(store), game.WithLogger(log))
	require.NoError(t, err)
	var out bytes.Buffer
	return &repl{sess: sess, scores: store, out: &out, log: log}, &out
}

func emptyBoard() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height, cfg.MineCount = 3, 3, 0
	return cfg
}

func TestREPL_RevealWinsEmptyBoard(t *testing.T) {
	r, out := newTestREPL(t, emptyBoard())
	require.NoError(t, r.run(strings.NewReader("o 1 1\nq\n")))

	// No mines at all: the opening reveal wins the game.
	want := ":)  mines 000  time 000  won\n" +
		"    0 1 2\n" +
		"  0 . . .\n" +
		"  1 . . .\n" +
		"  2 . . .\n" +
		"openings: 1\n" +
		"you win in 0 seconds\n" +
		"new highscore!\n"
	assert.True(t, strings.HasSuffix(out.String(), want), out.String())
}

func TestREPL_Commands(t *testing.T) {
	r, out := newTestREPL(t, emptyBoard())
	script := strings.Join([]string{
		"name abc",
		"name toolong",
		"s",
		"o 1 1",
		"s",
		"bogus",
		"o x 1",
		"o 9 9",
		"",
		"q",
		"o 0 0",
	}, "\n")
	require.NoError(t, r.run(strings.NewReader(script)))

	got := out.String()
	assert.Contains(t, got, "player: ABC")
	assert.Contains(t, got, "error: highscore: name must be three letters")
	assert.Contains(t, got, "HIGHSCORES\n  (none)\n")
	assert.Contains(t, got, `error: unknown command "bogus", try help`)
	assert.Contains(t, got, `error: bad row "x"`)

	// The reveal arrived while scores were shown, so it was ignored.
	assert.Equal(t, game.NotStarted, r.sess.Status())
	assert.Equal(t, "ABC", r.sess.Player())
}

func TestREPL_Restart(t *testing.T) {
	r, _ := newTestREPL(t, emptyBoard())
	require.NoError(t, r.run(strings.NewReader("o 0 0\nn\nq\n")))
	assert.Equal(t, game.NotStarted, r.sess.Status())
	assert.False(t, r.sess.Board().MinesPlaced())
}

func TestREPL_OutOfBounds(t *testing.T) {
	r, out := newTestREPL(t, emptyBoard())
	require.NoError(t, r.run(strings.NewReader("o 99 99\nf -1 0\nclick 3 0\nq\n")))

	got := out.String()
	assert.Contains(t, got, "error: board: position out of bounds: (99,99) on 3x3 board\n")
	assert.Contains(t, got, "error: board: position out of bounds: (-1,0) on 3x3 board\n")
	assert.Contains(t, got, "error: board: position out of bounds: (3,0) on 3x3 board\n")
	assert.Equal(t, game.NotStarted, r.sess.Status())
}

func TestREPL_ClickGoesThroughSession(t *testing.T) {
	r, out := newTestREPL(t, emptyBoard())
	require.NoError(t, r.run(strings.NewReader("click 1 1\nq\n")))
	assert.Equal(t, game.Won, r.sess.Status())
	assert.Contains(t, out.String(), "you win in 0 seconds\n")
}

func TestREPL_OpeningsReportedOncePerBoard(t *testing.T) {
	r, out := newTestREPL(t, emptyBoard())
	require.NoError(t, r.run(strings.NewReader("o 0 0\no 1 1\nn\no 2 2\nq\n")))
	assert.Equal(t, 2, strings.Count(out.String(), "openings: 1\n"))
}

func TestGlyph(t *testing.T) {
	cases := []struct {
		v    cell.View
		want byte
	}{
		{cell.View{Kind: cell.Hidden}, '-'},
		{cell.View{Kind: cell.Held}, '#'},
		{cell.View{Kind: cell.Flagged}, 'F'},
		{cell.View{Kind: cell.RevealedEmpty}, '.'},
		{cell.View{Kind: cell.RevealedNumbered, Number: 3}, '3'},
		{cell.View{Kind: cell.RevealedMine}, '*'},
		{cell.View{Kind: cell.RevealedMine, Highlight: cell.HighlightLoss}, 'X'},
	}
	for _, tc := range cases {
		assert.Equal(t, string(tc.want), string(glyph(tc.v)), tc.v.Kind.String())
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, game.Snapshot{
		Width:  2,
		Height: 1,
		Cells: [][]cell.View{{
			{Kind: cell.RevealedMine, Highlight: cell.HighlightLoss},
			{Kind: cell.RevealedNumbered, Number: 1},
		}},
		RemainingMines: -3,
		ElapsedSeconds: 17,
		Status:         game.Lost,
		Face:           game.Dead,
	})
	assert.Equal(t, "x(  mines -03  time 017  lost\n    0 1\n  0 X 1\n", buf.String())
}
