// Package gridgraph treats a rectangular board as a graph, providing the
// geometry every other package of the module builds on.
//
// What:
//
//   - Grid holds Width×Height and a connectivity (Conn4 or Conn8).
//   - Cells are addressed by Pos{Row, Col} or by a row-major index.
//   - Neighbors clips at edges and corners; nothing wraps around.
//   - Distance is the taxicab metric |Δrow| + |Δcol|.
//   - Regions identifies connected regions of cells selected by a predicate.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, Distance: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Regions: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
package gridgraph
