package hint

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

// Adviser suggests the next move: a forced single when one exists, otherwise
// a value revealed from a solved copy of the board.
type Adviser struct {
	Solver ports.Solver
}

// NewAdviser wires an adviser that falls back to the given solver when no
// single is available.
func NewAdviser(s ports.Solver) *Adviser { return &Adviser{Solver: s} }

func (a *Adviser) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if solver.HasConflict(b) {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(b, r, c); ok {
				return domain.Hint{
					Message: fmt.Sprintf("Single: only %d fits here", v),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Value:   v,
					Kind:    domain.HintForced,
				}, true, nil
			}
		}
	}
	return a.reveal(ctx, b)
}

// reveal solves the board and hands out the first empty cell's value.
func (a *Adviser) reveal(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if a.Solver == nil {
		return domain.Hint{}, false, nil
	}
	solved, _, err := a.Solver.Solve(ctx, b)
	if err != nil {
		if errors.Is(err, solver.ErrNoSolution) || errors.Is(err, solver.ErrInvalidBoard) {
			return domain.Hint{}, false, nil
		}
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				v := solved.Values[r][c]
				return domain.Hint{
					Message: fmt.Sprintf("Reveal: %d goes here", v),
					Cells:   []domain.CellCoord{{Row: r, Col: c}},
					Value:   v,
					Kind:    domain.HintReveal,
				}, true, nil
			}
		}
	}
	// board already full
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
