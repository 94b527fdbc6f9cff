package solver

import "svw.info/sudoku-solver/internal/domain"

// propagateGrid commits forced cells until none remain, reporting false on a
// contradiction. Each pass snapshots every candidate set; an empty cell with
// no candidates fails the pass, otherwise all singletons of the snapshot are
// committed in row-major order. A commit is re-checked against the live grid
// so that two singletons claiming one slot surface as a contradiction rather
// than an illegal board. Every pass fills at least one cell, so at most 81
// passes run. Commits are appended to journal when it is non-nil.
func propagateGrid(g *[9][9]uint8, journal *[]domain.CellCoord) bool {
	for {
		cand := allCandidates(g)
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] == 0 && cand[r][c] == 0 {
					return false
				}
			}
		}
		committed := 0
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if g[r][c] != 0 || digitCount(cand[r][c]) != 1 {
					continue
				}
				v := soleDigit(cand[r][c])
				if candidatesFor(g, r, c)&(1<<v) == 0 {
					return false
				}
				g[r][c] = v
				if journal != nil {
					*journal = append(*journal, domain.CellCoord{Row: r, Col: c})
				}
				committed++
			}
		}
		if committed == 0 {
			return true
		}
	}
}
