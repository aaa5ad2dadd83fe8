package textgrid

import "iter"

// Neighbors returns the in-bounds neighbors of c, paired with their values,
// clockwise from the top-left: TL, T, TR, R, BR, B, BL, L.
// Positions outside the grid are skipped. The sequence holds no state between
// iterations and may be ranged over any number of times.
// Complexity: O(1) per iteration (at most 8 cells).
func (g *Grid) Neighbors(c Coord) iter.Seq2[Coord, rune] {
	return func(yield func(Coord, rune) bool) {
		for _, d := range clockwise {
			n := c.Add(d)
			v, ok := g.Cell(n)
			if !ok {
				continue
			}
			if !yield(n, v) {
				return
			}
		}
	}
}

// NeighborValues is Neighbors without positions.
func (g *Grid) NeighborValues(c Coord) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, v := range g.Neighbors(c) {
			if !yield(v) {
				return
			}
		}
	}
}
