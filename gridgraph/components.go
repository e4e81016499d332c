// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions of non-zero cells of g,
// according to conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major scan.
//
// To convert an index back to a Point, use g.Coordinate(idx).
//
// Time:   O(H·W·d), where d = 4 or 8.
// Memory: O(H·W) for visited flags and output.
func ConnectedComponents[T Number](g *Grid[T], conn Connectivity) [][]int {
	seen := make([]bool, len(g.Data))
	var comps [][]int
	offsets := NeighborOffsets(conn)

	for i0, v := range g.Data {
		if v == 0 || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range offsets {
				n := u.Add(d)
				if !g.InBounds(n) {
					continue
				}
				ni := g.Index(n)
				if g.Data[ni] == 0 || seen[ni] {
					continue
				}
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
