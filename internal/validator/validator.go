package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator flags duplicate digits in rows, columns and boxes. Conflicts
// name every cell involved in a collision, in row-major order, so a UI can
// highlight both halves.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var bad [9][9]bool

	mark := func(cells [9]domain.CellCoord) {
		var seen, dup uint16
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if seen&bit != 0 {
				dup |= bit
			}
			seen |= bit
		}
		if dup == 0 {
			return
		}
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val != 0 && dup&(uint16(1)<<val) != 0 {
				bad[cc.Row][cc.Col] = true
			}
		}
	}

	for i := 0; i < 9; i++ {
		var row, col [9]domain.CellCoord
		for j := 0; j < 9; j++ {
			row[j] = domain.CellCoord{Row: i, Col: j}
			col[j] = domain.CellCoord{Row: j, Col: i}
		}
		mark(row)
		mark(col)
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			var box [9]domain.CellCoord
			k := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					box[k] = domain.CellCoord{Row: br + dr, Col: bc + dc}
					k++
				}
			}
			mark(box)
		}
	}

	var conf []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if bad[r][c] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(conf) == 0, conf, nil
}
