package cell

import "github.com/katalvlaran/minesweeper/gridgraph"

// Uncounted is the adjacency count of a cell before numbers are
// distributed, and of every mine.
const Uncounted = -1

// Highlight marks a revealed mine for rendering.
type Highlight int

const (
	// HighlightNone draws a plain mine.
	HighlightNone Highlight = iota
	// HighlightLoss marks the mine that ended the game.
	HighlightLoss
	// HighlightWin marks mines shown after a win.
	HighlightWin
)

// FlagResult reports what ToggleFlag did.
type FlagResult int

const (
	// FlagNoop means the cell was already revealed.
	FlagNoop FlagResult = iota
	// MinePlanted means a flag was placed on a mine.
	MinePlanted
	// MineRemoved means a flag was removed from a mine.
	MineRemoved
	// EmptyPlanted means a flag was placed on a safe cell.
	EmptyPlanted
	// EmptyRemoved means a flag was removed from a safe cell.
	EmptyRemoved
)

var flagResultNames = [...]string{"noop", "mine-planted", "mine-removed", "empty-planted", "empty-removed"}

func (r FlagResult) String() string {
	if r < 0 || int(r) >= len(flagResultNames) {
		return "unknown"
	}
	return flagResultNames[r]
}

// RevealResult reports what Reveal did.
type RevealResult int

const (
	// Blocked means nothing was opened: the cell is flagged, already
	// revealed, or a mine reached by flood-fill.
	Blocked RevealResult = iota
	// HitMine means the player opened a mine.
	HitMine
	// NumberedStop means a numbered cell was opened; reveal stops here.
	NumberedStop
	// QueueForFlood means a zero cell was opened and its neighbors must be
	// revealed too.
	QueueForFlood
)

var revealResultNames = [...]string{"blocked", "hit-mine", "numbered-stop", "queue-for-flood"}

func (r RevealResult) String() string {
	if r < 0 || int(r) >= len(revealResultNames) {
		return "unknown"
	}
	return revealResultNames[r]
}

// Cell is one board square. The zero value is not usable; create cells
// with New so the adjacency count starts Uncounted.
type Cell struct {
	pos       gridgraph.Pos
	mine      bool
	revealed  bool
	flagged   bool
	held      bool
	adjacent  int
	highlight Highlight
}
