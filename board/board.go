package board

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// New builds an empty width×height board. Mines are placed later by
// PlaceMines, on the first reveal.
func New(width, height int, opts ...Option) (*Board, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g, err := gridgraph.NewGrid(width, height, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	cells := make([]cell.Cell, g.Size())
	for i := range cells {
		cells[i] = cell.New(g.Coordinate(i))
	}
	return &Board{
		grid:   g,
		cells:  cells,
		layout: o.Layout,
		rng:    o.Rand,
		log:    o.Logger,
	}, nil
}

// FromLayout builds a board with mines already placed from rows of text,
// '*' marking a mine and any other byte a safe cell. Adjacency numbers
// are distributed as PlaceMines would.
func FromLayout(rows []string, opts ...Option) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	b, err := New(len(rows[0]), len(rows), opts...)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.grid.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), b.grid.Width)
		}
		for c := range row {
			if row[c] == '*' {
				b.at(gridgraph.Pos{Row: r, Col: c}).PlaceMine()
				b.mineCount++
			}
		}
	}
	b.distributeNumbers()
	b.minesPlaced = true
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.Width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.Height }

// Grid returns the board geometry.
func (b *Board) Grid() *gridgraph.Grid { return b.grid }

// MinesPlaced reports whether PlaceMines has run.
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

// MineCount returns the number of mines actually on the board.
func (b *Board) MineCount() int { return b.mineCount }

// Cell returns a copy of the cell at p.
func (b *Board) Cell(p gridgraph.Pos) (cell.Cell, error) {
	if err := b.check(p); err != nil {
		return cell.Cell{}, err
	}
	return *b.at(p), nil
}

// Views returns the visual state of every cell, indexed [row][col].
func (b *Board) Views() [][]cell.View {
	out := make([][]cell.View, b.grid.Height)
	for r := range out {
		out[r] = make([]cell.View, b.grid.Width)
		for c := range out[r] {
			out[r][c] = b.at(gridgraph.Pos{Row: r, Col: c}).View()
		}
	}
	return out
}

// ZeroRegions returns the maximal 8-connected regions of safe cells with
// no adjacent mines. Each is exactly what one flood-fill opens, minus its
// numbered border.
func (b *Board) ZeroRegions() [][]gridgraph.Pos {
	return b.grid.Regions(func(p gridgraph.Pos) bool {
		c := b.at(p)
		return !c.IsMine() && c.AdjacentMines() == 0
	})
}

// String renders the board for debugging:
// '-' hidden, 'F' flag, '*' mine, '.' zero, digits for numbers.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.grid.Height; r++ {
		for c := 0; c < b.grid.Width; c++ {
			v := b.at(gridgraph.Pos{Row: r, Col: c}).View()
			switch v.Kind {
			case cell.Flagged:
				sb.WriteByte('F')
			case cell.RevealedMine:
				sb.WriteByte('*')
			case cell.RevealedEmpty:
				sb.WriteByte('.')
			case cell.RevealedNumbered:
				sb.WriteByte(byte('0' + v.Number))
			default:
				sb.WriteByte('-')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// at returns the cell at an in-bounds position.
func (b *Board) at(p gridgraph.Pos) *cell.Cell {
	return &b.cells[b.grid.Index(p)]
}

// check returns ErrOutOfBounds for positions outside the board.
func (b *Board) check(p gridgraph.Pos) error {
	if !b.grid.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.grid.Width, b.grid.Height)
	}
	return nil
}
