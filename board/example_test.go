package board_test

import (
	"fmt"

	"github.com/katalvlaran/minesweeper/board"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// ExampleBoard_Reveal opens a zero cell and lets the flood-fill run until
// it reaches the numbers around the two mines.
func ExampleBoard_Reveal() {
	b, _ := board.FromLayout([]string{
		".....",
		".....",
		"...*.",
		"*....",
	})

	res, _ := b.Reveal(gridgraph.Pos{Row: 0, Col: 0})
	fmt.Println(res)
	fmt.Print(b)
	// Output:
	// queue-for-flood
	// .....
	// ..111
	// 111--
	// -----
}
