package board

import (
	"github.com/katalvlaran/minesweeper/bfs"
	"github.com/katalvlaran/minesweeper/cell"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// Reveal is a player click on p. A zero cell starts a flood-fill from p.
func (b *Board) Reveal(p gridgraph.Pos) (cell.RevealResult, error) {
	if err := b.check(p); err != nil {
		return cell.Blocked, err
	}
	res := b.at(p).Reveal(true)
	if res == cell.QueueForFlood {
		if _, err := b.FloodFillReveal(p); err != nil {
			return res, err
		}
	}
	return res, nil
}

// FloodFillReveal reveals outward from origin, breadth first. A cell is
// queued only if it is unrevealed and not yet seen in this traversal; it is
// opened with a non-player reveal, and only zero cells expand further.
// Mines and flagged cells are never opened. Returns the number of cells
// opened, origin excluded.
func (b *Board) FloodFillReveal(origin gridgraph.Pos) (int, error) {
	if err := b.check(origin); err != nil {
		return 0, err
	}
	opened := 0
	_, err := bfs.Walk(b.grid, origin,
		bfs.WithFilterNeighbor(func(_, nbr gridgraph.Pos) bool {
			return !b.at(nbr).IsRevealed()
		}),
		bfs.WithOnVisit(func(p gridgraph.Pos, _ int) (bool, error) {
			if p == origin {
				return true, nil
			}
			switch b.at(p).Reveal(false) {
			case cell.QueueForFlood:
				opened++
				return true, nil
			case cell.NumberedStop:
				opened++
			}
			return false, nil
		}),
	)
	return opened, err
}

// Chord resolves a double click on p. When p is a revealed numbered cell
// whose flagged-neighbor count equals its number, either an unflagged mine
// among the neighbors explodes, or every unflagged safe neighbor is
// revealed (cascading through zero cells). Any other count is a no-op.
func (b *Board) Chord(p gridgraph.Pos) (ChordResult, error) {
	if err := b.check(p); err != nil {
		return ChordResult{}, err
	}
	c := b.at(p)
	if !c.IsRevealed() || c.IsMine() || c.AdjacentMines() <= 0 {
		return ChordResult{Outcome: ChordSkipped}, nil
	}
	scan, _ := b.AdjacentFlagCount(p)
	if scan.Flags != c.AdjacentMines() {
		return ChordResult{Outcome: ChordMismatch}, nil
	}
	if scan.HasUnflaggedMine {
		b.at(scan.UnflaggedMine).Reveal(true)
		return ChordResult{Outcome: ChordExploded, Mine: scan.UnflaggedMine}, nil
	}
	opened, err := b.FloodFillReveal(p)
	if err != nil {
		return ChordResult{}, err
	}
	return ChordResult{Outcome: ChordRevealed, Opened: opened}, nil
}

// ToggleFlag flips the flag at p.
func (b *Board) ToggleFlag(p gridgraph.Pos) (cell.FlagResult, error) {
	if err := b.check(p); err != nil {
		return cell.FlagNoop, err
	}
	return b.at(p).ToggleFlag(), nil
}

// RevealAllMines force-reveals every mine and leaves safe cells as they are.
func (b *Board) RevealAllMines() {
	for i := range b.cells {
		if b.cells[i].IsMine() {
			b.cells[i].ForceReveal()
		}
	}
}

// RevealAll force-reveals every cell and marks mines with HighlightWin.
func (b *Board) RevealAll() {
	for i := range b.cells {
		b.cells[i].ForceReveal()
		if b.cells[i].IsMine() {
			b.cells[i].SetHighlight(cell.HighlightWin)
		}
	}
}

// SetHighlight sets the highlight of the cell at p.
func (b *Board) SetHighlight(p gridgraph.Pos, h cell.Highlight) error {
	if err := b.check(p); err != nil {
		return err
	}
	b.at(p).SetHighlight(h)
	return nil
}

// SetHeld marks the hidden cell at p as pressed. Revealed cells are not
// marked.
func (b *Board) SetHeld(p gridgraph.Pos) error {
	if err := b.check(p); err != nil {
		return err
	}
	if c := b.at(p); !c.IsRevealed() {
		c.SetHeld(true)
	}
	return nil
}

// ClearHeld releases every pressed cell.
func (b *Board) ClearHeld() {
	for i := range b.cells {
		b.cells[i].SetHeld(false)
	}
}
