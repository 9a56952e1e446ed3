package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of row-major
// cell indices in discovery order. Components appear in row-major order of
// their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
