// Package solver implements the solving core: candidate masks, constraint
// propagation, MRV cell selection and backtracking search. Two engines share
// the core and differ only in board handling (mutate/restore vs copy); a third
// hands the board to a SAT solver.
package solver

import (
	"errors"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
)

var (
	// ErrNoSolution is the normal negative outcome: the board is already
	// self-contradictory or the search space is exhausted.
	ErrNoSolution = errors.New("no solution")

	// ErrInvalidBoard reports a cell value outside [0,9].
	ErrInvalidBoard = errors.New("invalid board")

	// ErrBudgetExceeded reports that the node budget ran out before the
	// search finished either way.
	ErrBudgetExceeded = errors.New("node budget exceeded")
)

// checkValues rejects boards carrying values outside [0,9].
func checkValues(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v > 9 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

// searchState carries the counters threaded through one search.
type searchState struct {
	nodes  int
	budget int // 0 = unlimited
}

// spend accounts for one branch node, failing once the budget is gone.
func (st *searchState) spend() error {
	if st.budget > 0 && st.nodes >= st.budget {
		return ErrBudgetExceeded
	}
	st.nodes++
	return nil
}
