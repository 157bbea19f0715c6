package game

import "github.com/katalvlaran/minesweeper/cell"

// Snapshot is the render view of a session. Cells is indexed [row][col].
type Snapshot struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Cells          [][]cell.View `json:"cells"`
	RemainingMines int           `json:"remaining_mines"`
	ElapsedSeconds int           `json:"elapsed_seconds"`
	Status         Status        `json:"status"`
	Face           Face          `json:"face"`
	Overlay        bool          `json:"overlay"`
	Player         string        `json:"player"`
}

// Snapshot captures the current render state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:          s.board.Width(),
		Height:         s.board.Height(),
		Cells:          s.board.Views(),
		RemainingMines: s.RemainingMines(),
		ElapsedSeconds: s.ElapsedSeconds(),
		Status:         s.status,
		Face:           s.face,
		Overlay:        s.overlay,
		Player:         s.player,
	}
}
