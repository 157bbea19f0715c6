// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/minesweeper.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity (Moore neighborhood).
	Conn8
)

// Pos addresses a single grid cell. Row is in [0,Height), Col in [0,Width).
type Pos struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn8, the
// neighborhood used for mine counting and flood-fill.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// Grid is the immutable geometry of a Width×Height board.
// Cells are addressed by Pos or by their row-major index.
// offsets is precomputed for adjacency lookups, in row-major order.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	offsets       []Pos
}
