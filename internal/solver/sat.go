package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// SATSolver encodes the board as CNF and hands it to a SAT solver: one
// variable per (row, col, digit) triple, an at-least-one clause per cell,
// pairwise at-most-one clauses per row, column and box, and a unit clause per
// given. Unlike the strategy engines it makes no ordering promises on
// under-constrained boards, and Stats.Nodes stays 0.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

// lit maps a (row, col, digit-1) triple onto a positive literal.
func lit(r, c int, n uint8) z.Lit {
	return z.Var(r*81 + c*9 + int(n) + 1).Pos()
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkValues(b); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if HasConflict(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	g := gini.New()

	// every cell holds at least one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := uint8(0); n < 9; n++ {
				g.Add(lit(r, c, n))
			}
			g.Add(0)
		}
	}

	// no digit repeats within a row, column or box
	for _, u := range units() {
		for n := uint8(0); n < 9; n++ {
			for i := 0; i < len(u); i++ {
				for j := i + 1; j < len(u); j++ {
					g.Add(lit(u[i].Row, u[i].Col, n).Not())
					g.Add(lit(u[j].Row, u[j].Col, n).Not())
					g.Add(0)
				}
			}
		}
	}

	// givens pin their cell
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				g.Add(lit(r, c, v-1))
				g.Add(0)
			}
		}
	}

	if g.Solve() != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}

	out := &domain.Board{Fixed: b.Fixed}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := uint8(0); n < 9; n++ {
				if g.Value(lit(r, c, n)) {
					out.Values[r][c] = n + 1
					break
				}
			}
		}
	}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}

// units lists the 27 constraint groups: nine rows, nine columns, nine boxes.
func units() [][9]domain.CellCoord {
	out := make([][9]domain.CellCoord, 0, 27)
	for i := 0; i < 9; i++ {
		var row, col [9]domain.CellCoord
		for j := 0; j < 9; j++ {
			row[j] = domain.CellCoord{Row: i, Col: j}
			col[j] = domain.CellCoord{Row: j, Col: i}
		}
		out = append(out, row, col)
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
			out = append(out, box)
		}
	}
	return out
}
