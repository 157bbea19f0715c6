// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning visit order and step distances from a start cell.
//
// What
//
//   - Explore cells in non-decreasing distance (steps) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnVisit   (when visiting; decides whether to expand, may abort with an error)
//   - Allows filtering of individual neighbors via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Flood-fill reveal: the visit hook reveals a cell and expands only
//     through zero-count cells, so the traversal stops at numbered borders.
//   - Each cell is touched at most once per call, bounding the cost at W×H.
//
// Determinism
//
//	gridgraph.Grid lists neighbors in row-major order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (N = W×H, d = 4 or 8)
//
//   - Time:   O(N·d)
//   - Memory: O(N)   (queue, visited flags, Depth map)
//
// Usage
//
//	res, err := bfs.Walk(g, start,
//	    bfs.WithFilterNeighbor(func(curr, nbr gridgraph.Pos) bool { return !revealed(nbr) }),
//	    bfs.WithOnVisit(func(p gridgraph.Pos, depth int) (bool, error) { return open(p), nil }),
//	)
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if the start cell lies outside the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
