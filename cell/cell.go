package cell

import "github.com/katalvlaran/minesweeper/gridgraph"

// New returns an empty, hidden cell at pos.
func New(pos gridgraph.Pos) Cell {
	return Cell{pos: pos, adjacent: Uncounted}
}

// Pos returns the cell's board position.
func (c *Cell) Pos() gridgraph.Pos { return c.pos }

// IsMine reports whether the cell holds a mine.
func (c *Cell) IsMine() bool { return c.mine }

// IsRevealed reports whether the cell has been opened.
func (c *Cell) IsRevealed() bool { return c.revealed }

// IsFlagged reports whether the cell carries a flag.
func (c *Cell) IsFlagged() bool { return c.flagged }

// IsHeld reports whether the primary button is held over the cell.
func (c *Cell) IsHeld() bool { return c.held }

// AdjacentMines returns the number of neighboring mines, or Uncounted.
func (c *Cell) AdjacentMines() int { return c.adjacent }

// Highlight returns the mine highlight.
func (c *Cell) Highlight() Highlight { return c.highlight }

// PlaceMine arms the cell. Only used during mine placement.
func (c *Cell) PlaceMine() {
	c.mine = true
}

// SetAdjacentCount stores the neighboring mine count. Only used once,
// during number distribution, for non-mine cells.
func (c *Cell) SetAdjacentCount(n int) {
	c.adjacent = n
}

// SetHighlight sets the highlight drawn on a revealed mine.
func (c *Cell) SetHighlight(h Highlight) {
	c.highlight = h
}

// SetHeld marks or clears the pressed look of a hidden cell.
func (c *Cell) SetHeld(held bool) {
	c.held = held
}

// ToggleFlag flips the flag of a hidden cell and reports whether the
// affected cell is a mine. Revealed cells are left untouched.
func (c *Cell) ToggleFlag() FlagResult {
	if c.revealed {
		return FlagNoop
	}
	c.flagged = !c.flagged
	switch {
	case c.flagged && c.mine:
		return MinePlanted
	case c.mine:
		return MineRemoved
	case c.flagged:
		return EmptyPlanted
	default:
		return EmptyRemoved
	}
}

// Reveal opens the cell.
//
// playerInitiated is true for a direct click and false when the reveal
// comes from flood-fill. A zero cell yields QueueForFlood in both cases;
// the caller expands from it.
func (c *Cell) Reveal(playerInitiated bool) RevealResult {
	if c.flagged || c.revealed {
		return Blocked
	}
	if c.mine {
		if !playerInitiated {
			return Blocked
		}
		c.revealed = true
		return HitMine
	}
	c.revealed = true
	if c.adjacent > 0 {
		return NumberedStop
	}
	return QueueForFlood
}

// ForceReveal opens the cell regardless of flags. Used when the game ends.
func (c *Cell) ForceReveal() {
	c.revealed = true
	c.held = false
}
