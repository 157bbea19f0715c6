package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/minesweeper/bfs"
	"github.com/katalvlaran/minesweeper/gridgraph"
)

// ExampleWalk spreads from the top-left corner of a small field and stops
// expanding at cells marked '#', which are still visited. The column
// behind the wall is never reached.
//
//	. . # .
//	. . # .
//	. . # .
func ExampleWalk() {
	field := []string{
		"..#.",
		"..#.",
		"..#.",
	}
	g, _ := gridgraph.NewGrid(4, 3, gridgraph.DefaultGridOptions())

	res, _ := bfs.Walk(g, gridgraph.Pos{Row: 0, Col: 0},
		bfs.WithOnVisit(func(p gridgraph.Pos, _ int) (bool, error) {
			return field[p.Row][p.Col] != '#', nil
		}),
	)
	fmt.Println("visited:", len(res.Order))
	fmt.Println("order:", res.Order)
	// Output:
	// visited: 9
	// order: [(0,0) (0,1) (1,0) (1,1) (0,2) (1,2) (2,0) (2,1) (2,2)]
}
