// Package gridgraph provides the geometry of a rectangular board treated
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds checks and row-major index conversion
//   - Neighbor enumeration clipped at the edges
//   - Taxicab distance between cells
//   - Connected regions of cells selected by a predicate
package gridgraph

// NewGrid constructs a Grid of the given width (columns) and height (rows).
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(1).
func NewGrid(width, height int, opts GridOptions) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	// Offsets are listed row by row so neighbor scans run in row-major order.
	var offsets []Pos
	if opts.Conn == Conn8 {
		offsets = []Pos{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 0}, {1, 1},
		}
	} else {
		offsets = []Pos{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	}

	return &Grid{
		Width:   width,
		Height:  height,
		Conn:    opts.Conn,
		offsets: offsets,
	}, nil
}

// Size returns the number of cells, Width*Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Offsets returns the precomputed neighbor offsets.
func (g *Grid) Offsets() []Pos {
	return g.offsets
}

// Neighbors returns the in-bounds neighbors of p in row-major order.
// Edge and corner cells have fewer neighbors; nothing wraps.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Pos) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.Width, Col: idx % g.Width}
}

// Distance returns the taxicab distance |Δrow| + |Δcol| between a and b.
func Distance(a, b Pos) int {
	return max(a.Row, b.Row) - min(a.Row, b.Row) + max(a.Col, b.Col) - min(a.Col, b.Col)
}
