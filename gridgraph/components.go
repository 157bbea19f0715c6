package gridgraph

// Regions finds all contiguous regions of cells for which member returns
// true, according to g.Conn connectivity.
// Regions are reported in row-major order of their first cell; the cells
// of each region are in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(member func(Pos) bool) [][]Pos {
	seen := make([]bool, g.Size())
	var regions [][]Pos

	for i0 := 0; i0 < g.Size(); i0++ {
		if seen[i0] || !member(g.Coordinate(i0)) {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		var region []Pos

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			region = append(region, u)
			for _, v := range g.Neighbors(u) {
				vi := g.Index(v)
				if !seen[vi] && member(v) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}
