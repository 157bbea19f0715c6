// Package minesweeper is the root of a single-player Minesweeper core:
// board model, mine placement, flood-fill and chord reveals, win/loss
// rules, a play timer and a persistent top-10 highscore table.
//
// Packages, bottom up:
//
//	gridgraph/        rectangular grid: bounds, neighbors, taxicab distance, regions
//	bfs/              breadth-first walk over a grid with visit/filter hooks
//	cell/             one square: mine, flag, reveal and hold state, view kinds
//	board/            the grid of cells: placement, counting, flood-fill, chord
//	highscore/        "NAME SECONDS" table: parse, insert, atomic save
//	config/           settings with defaults and YAML overlay
//	game/             session state machine: events, timer, win/loss, snapshot
//	cmd/minesweeper   line-command terminal front end
//
// Quick ASCII example, a 4×4 board after one click in the top-left corner:
//
//	. . . .
//	. . . .
//	. . 1 1
//	. . 1 -
//
// '.' is an opened empty cell, digits count adjacent mines, '-' is hidden.
//
//	go run ./cmd/minesweeper -seed 42
package minesweeper
