package board

import "github.com/katalvlaran/minesweeper/gridgraph"

// CellAt maps a screen point to the cell under it. Each cell covers
// [origin+col*size, origin+(col+1)*size) horizontally, and likewise
// vertically. ok is false outside the grid.
func (b *Board) CellAt(pt Point) (p gridgraph.Pos, ok bool) {
	dx, dy := pt.X-b.layout.OriginX, pt.Y-b.layout.OriginY
	if dx < 0 || dy < 0 {
		return gridgraph.Pos{}, false
	}
	p = gridgraph.Pos{Row: dy / b.layout.CellSize, Col: dx / b.layout.CellSize}
	if !b.grid.InBounds(p) {
		return gridgraph.Pos{}, false
	}
	return p, true
}

// Center returns the screen point at the middle of the cell at p, for
// front ends that address cells by row and column.
func (b *Board) Center(p gridgraph.Pos) Point {
	half := b.layout.CellSize / 2
	return Point{
		X: b.layout.OriginX + p.Col*b.layout.CellSize + half,
		Y: b.layout.OriginY + p.Row*b.layout.CellSize + half,
	}
}
