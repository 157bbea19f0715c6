// Package board defines the Board type, its options and sentinel errors.
package board

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// Sentinel errors for board operations.
var (
	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("board: width and height must be positive")

	// ErrOutOfBounds is returned when a position lies outside the board.
	ErrOutOfBounds = errors.New("board: position out of bounds")

	// ErrMinesPlaced is returned when mines are placed a second time.
	ErrMinesPlaced = errors.New("board: mines already placed")

	// ErrInvalidPlacement is returned for a negative mine count or radius.
	ErrInvalidPlacement = errors.New("board: mine count and empty radius must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("board: invalid option supplied")
)

// Point is a pointer coordinate in screen pixels.
type Point struct {
	X, Y int
}

// Layout places the board on screen: the top-left pixel of cell (0,0)
// and the square cell size in pixels.
type Layout struct {
	OriginX  int `yaml:"origin_x"`
	OriginY  int `yaml:"origin_y"`
	CellSize int `yaml:"cell_size"`
}

// DefaultLayout returns the classic layout: origin (32,127), 35px cells.
func DefaultLayout() Layout {
	return Layout{OriginX: 32, OriginY: 127, CellSize: 35}
}

// Option configures a Board via functional arguments.
type Option func(*Options)

// Options holds the collaborators of a Board.
type Options struct {
	// Rand drives mine placement.
	Rand *rand.Rand
	// Layout maps screen points to cells.
	Layout Layout
	// Logger receives placement diagnostics at Debug level.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns time-seeded randomness, DefaultLayout and the
// standard logrus logger.
func DefaultOptions() Options {
	seed := uint64(time.Now().UnixNano())
	return Options{
		Rand:   rand.New(rand.NewPCG(seed, seed>>1)),
		Layout: DefaultLayout(),
		Logger: logrus.StandardLogger(),
	}
}

// WithSeed makes mine placement reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source used for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLayout sets the screen layout. A non-positive cell size is an
// ErrOptionViolation.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		if l.CellSize <= 0 {
			o.err = fmt.Errorf("%w: cell size must be positive (%d)", ErrOptionViolation, l.CellSize)
			return
		}
		o.Layout = l
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// FlagScan is the flags-aware neighborhood scan used by chord reveals.
type FlagScan struct {
	// Flags counts flagged neighbors, right or wrong.
	Flags int
	// HasUnflaggedMine reports whether some neighbor is an unflagged mine.
	HasUnflaggedMine bool
	// UnflaggedMine is the last such mine in row-major order.
	UnflaggedMine gridgraph.Pos
}

// ChordOutcome classifies a chord reveal.
type ChordOutcome int

const (
	// ChordSkipped means the cell is not a revealed numbered cell.
	ChordSkipped ChordOutcome = iota
	// ChordMismatch means the flag count differs from the cell's number.
	ChordMismatch
	// ChordExploded means the flags matched but an unflagged mine was hit.
	ChordExploded
	// ChordRevealed means the unflagged neighbors were revealed.
	ChordRevealed
)

// ChordResult is the outcome of Chord.
type ChordResult struct {
	Outcome ChordOutcome
	// Mine is the mine that exploded, for ChordExploded.
	Mine gridgraph.Pos
	// Opened counts cells revealed, for ChordRevealed.
	Opened int
}

// Board is a W×H arena of cells addressed by row-major index.
// It is not safe for concurrent use; a game session owns it.
type Board struct {
	grid        *gridgraph.Grid
	cells       []cell.Cell
	layout      Layout
	rng         *rand.Rand
	log         logrus.FieldLogger
	minesPlaced bool
	mineCount   int
}
