// Package board owns the grid of cells and every operation that spans
// more than one cell.
//
// What
//
//   - PlaceMines: uniform placement after the first click, never within the
//     empty radius (taxicab distance) of that click, then adjacency numbers.
//   - Reveal / FloodFillReveal: player reveal that expands through zero-count
//     regions and stops at numbered or flagged borders (via package bfs).
//   - Chord: double-click resolution on a revealed numbered cell.
//   - AdjacentMineCount / AdjacentFlagCount: clipped 8-neighborhood scans.
//   - RevealAllMines / RevealAll: forced reveals used at loss and win.
//   - CellAt / Center: hit-testing between screen points and cells.
//
// Errors
//
//   - ErrInvalidSize       width or height not positive.
//   - ErrOutOfBounds       a position outside [0,H)×[0,W).
//   - ErrMinesPlaced       PlaceMines called twice.
//   - ErrInvalidPlacement  negative mine count or empty radius.
//   - ErrOptionViolation   invalid Option (e.g. non-positive cell size).
//
// Neighbor scans never fail at edges; they clip.
//
// Complexity (N = W×H)
//
//   - PlaceMines: O(N). FloodFillReveal, RevealAll, RevealAllMines: O(N).
//   - AdjacentMineCount, AdjacentFlagCount, Reveal of a numbered cell: O(1).
package board
