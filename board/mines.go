package board

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/minesweeper/gridgraph"
)

// PlaceMines arms count cells chosen uniformly among those farther than
// emptyRadius (taxicab distance) from first, then distributes adjacency
// numbers. If count is at least the number of candidates, every candidate
// becomes a mine. Returns the number of mines placed.
//
// It runs once per board; a second call fails with ErrMinesPlaced.
func (b *Board) PlaceMines(count int, first gridgraph.Pos, emptyRadius int) (int, error) {
	if b.minesPlaced {
		return 0, ErrMinesPlaced
	}
	if err := b.check(first); err != nil {
		return 0, err
	}
	if count < 0 || emptyRadius < 0 {
		return 0, fmt.Errorf("%w: count=%d radius=%d", ErrInvalidPlacement, count, emptyRadius)
	}

	candidates := make([]int, 0, b.grid.Size())
	for i := 0; i < b.grid.Size(); i++ {
		if gridgraph.Distance(first, b.grid.Coordinate(i)) > emptyRadius {
			candidates = append(candidates, i)
		}
	}
	if count > len(candidates) {
		count = len(candidates)
	}

	// Partial Fisher-Yates: the first count slots become a uniform sample.
	for i := 0; i < count; i++ {
		j := i + b.rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		b.cells[candidates[i]].PlaceMine()
	}
	b.mineCount = count
	b.distributeNumbers()
	b.minesPlaced = true

	b.log.WithFields(logrus.Fields{
		"row":        first.Row,
		"col":        first.Col,
		"radius":     emptyRadius,
		"mines":      count,
		"candidates": len(candidates),
	}).Debug("board: mines placed")
	return count, nil
}

// distributeNumbers sets the adjacency count of every non-mine cell.
func (b *Board) distributeNumbers() {
	for i := range b.cells {
		if b.cells[i].IsMine() {
			continue
		}
		b.cells[i].SetAdjacentCount(b.countMines(b.grid.Coordinate(i)))
	}
}

// countMines counts mines in the clipped 8-neighborhood of p.
func (b *Board) countMines(p gridgraph.Pos) int {
	n := 0
	for _, q := range b.grid.Neighbors(p) {
		if b.at(q).IsMine() {
			n++
		}
	}
	return n
}

// AdjacentMineCount returns the number of mines around p.
func (b *Board) AdjacentMineCount(p gridgraph.Pos) (int, error) {
	if err := b.check(p); err != nil {
		return 0, err
	}
	return b.countMines(p), nil
}

// AdjacentFlagCount counts flagged neighbors of p and reports an unflagged
// mine among them, if any. Neighbors are scanned in row-major order and the
// last unflagged mine seen is the one reported.
func (b *Board) AdjacentFlagCount(p gridgraph.Pos) (FlagScan, error) {
	if err := b.check(p); err != nil {
		return FlagScan{}, err
	}
	var scan FlagScan
	for _, q := range b.grid.Neighbors(p) {
		c := b.at(q)
		switch {
		case c.IsFlagged():
			scan.Flags++
		case c.IsMine():
			scan.HasUnflaggedMine = true
			scan.UnflaggedMine = q
		}
	}
	return scan, nil
}
