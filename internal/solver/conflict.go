package solver

import "svw.info/sudoku-solver/internal/domain"

// HasConflict reports whether any row, column or box holds a duplicate digit.
// One mask pass per unit, cheap enough for callers to gate input with before
// solving or editing.
func HasConflict(b *domain.Board) bool {
	return gridHasConflict(&b.Values)
}

func gridHasConflict(g *[9][9]uint8) bool {
	for i := 0; i < 9; i++ {
		var rm, cm uint16
		for j := 0; j < 9; j++ {
			if v := g[i][j]; v != 0 {
				if rm&(1<<v) != 0 {
					return true
				}
				rm |= 1 << v
			}
			if v := g[j][i]; v != 0 {
				if cm&(1<<v) != 0 {
					return true
				}
				cm |= 1 << v
			}
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			var bm uint16
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					if v := g[br+dr][bc+dc]; v != 0 {
						if bm&(1<<v) != 0 {
							return true
						}
						bm |= 1 << v
					}
				}
			}
		}
	}
	return false
}
