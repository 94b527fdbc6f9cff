package solver

// chooseCell picks the branching cell: the empty cell with the fewest
// candidates, first in row-major order on ties. found is false only when no
// empty cell remains. A zero-candidate cell is returned as soon as it is
// seen; its empty mask makes the caller try nothing and backtrack.
func chooseCell(g *[9][9]uint8) (row, col int, cands uint16, found bool) {
	best := 10
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			m := candidatesFor(g, r, c)
			if n := digitCount(m); n < best {
				row, col, cands, found = r, c, m, true
				best = n
				if best <= 1 {
					return
				}
			}
		}
	}
	return
}
