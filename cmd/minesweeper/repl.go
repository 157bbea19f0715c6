package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/game"
	"github.com/katalvlaran/minesweeper/gridgraph"
	"github.com/katalvlaran/minesweeper/highscore"
)

const helpText = `commands:
  o ROW COL       reveal a cell
  f ROW COL       toggle a flag
  c ROW COL       chord on a revealed number
  click ROW COL   mouse-style release; two within the double-click window chord
  n               new game
  s               show or hide highscores (pauses the clock)
  name ABC        set the player name
  p               print the board
  q               quit
`

// scoreLister is the read side of the highscore store.
type scoreLister interface {
	Load() ([]highscore.Entry, error)
}

// repl reads one command per line and applies it to the session. Cells
// are addressed by row and column and sent as clicks on their centers.
type repl struct {
	sess   *game.Session
	scores scoreLister
	out    io.Writer
	prompt bool
	log    logrus.FieldLogger

	// counted is the board whose openings were last reported.
	counted *board.Board
}

func (r *repl) run(in io.Reader) error {
	render(r.out, r.sess.Snapshot())
	sc := bufio.NewScanner(in)
	for {
		if r.prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		quit, err := r.exec(strings.Fields(sc.Text()))
		if err != nil {
			fmt.Fprintln(r.out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command and reports whether the loop should stop.
func (r *repl) exec(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(args[0])
	switch cmd {
	case "q", "quit":
		return true, nil
	case "help", "?":
		fmt.Fprint(r.out, helpText)
	case "p":
		r.sess.Tick()
		render(r.out, r.sess.Snapshot())
	case "n":
		return false, r.dispatch(game.RestartRequested())
	case "s":
		if r.sess.ToggleOverlay() {
			r.showScores()
		} else {
			render(r.out, r.sess.Snapshot())
		}
	case "name":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: name ABC")
		}
		if err := r.sess.SetPlayerName(args[1]); err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, "player:", r.sess.Player())
	case "o", "f", "c", "click":
		p, err := parsePos(args[1:])
		if err != nil {
			return false, err
		}
		b := r.sess.Board()
		if !b.Grid().InBounds(p) {
			return false, fmt.Errorf("%w: %v on %dx%d board", board.ErrOutOfBounds, p, b.Width(), b.Height())
		}
		pt := b.Center(p)
		switch cmd {
		case "f":
			return false, r.dispatch(game.Secondary(pt))
		case "c":
			return false, r.dispatch(game.Double(pt))
		case "click":
			return false, r.report(r.sess.ReleasePrimary(pt))
		}
		return false, r.dispatch(game.Primary(pt))
	default:
		return false, fmt.Errorf("unknown command %q, try help", args[0])
	}
	return false, nil
}

func (r *repl) dispatch(ev game.Event) error {
	return r.report(r.sess.Dispatch(ev))
}

// report renders the board after an event and announces the end of a game.
func (r *repl) report(out game.Outcome, err error) error {
	if err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{
		"status": out.Status.String(),
		"pos":    out.Pos.String(),
	}).Debug("event applied")
	render(r.out, r.sess.Snapshot())
	if !out.OnBoard {
		return out.SubmitErr
	}
	if b := r.sess.Board(); b.MinesPlaced() && b != r.counted {
		r.counted = b
		fmt.Fprintf(r.out, "openings: %d\n", len(b.ZeroRegions()))
	}
	switch out.Status {
	case game.Won:
		fmt.Fprintf(r.out, "you win in %d seconds\n", int(r.sess.Elapsed().Seconds()))
		if out.NewHighscore {
			fmt.Fprintln(r.out, "new highscore!")
		}
	case game.Lost:
		fmt.Fprintf(r.out, "boom at %s\n", out.Exploded)
	}
	return out.SubmitErr
}

func (r *repl) showScores() {
	entries, err := r.scores.Load()
	if err != nil {
		r.log.WithError(err).Debug("highscores unavailable")
	}
	fmt.Fprintln(r.out, "HIGHSCORES")
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for i, e := range entries {
		fmt.Fprintln(r.out, e.Line(i+1))
	}
}

func parsePos(args []string) (gridgraph.Pos, error) {
	if len(args) != 2 {
		return gridgraph.Pos{}, fmt.Errorf("want ROW COL")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return gridgraph.Pos{}, fmt.Errorf("bad row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return gridgraph.Pos{}, fmt.Errorf("bad column %q", args[1])
	}
	return gridgraph.Pos{Row: row, Col: col}, nil
}
