package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// CopySolver searches over value copies of the grid: every branch owns its
// board and nothing is ever undone. Its output is identical to
// BacktrackingSolver's; only the board handling differs.
type CopySolver struct {
	// Budget caps the number of branch nodes tried; 0 means unlimited.
	Budget int
}

func NewCopySolver() *CopySolver { return &CopySolver{} }

func (s *CopySolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkValues(b); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if HasConflict(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	st := &searchState{budget: s.Budget}
	out, ok, err := searchByCopy(ctx, b.Values, st)
	stats := ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	if !ok {
		return nil, stats, ErrNoSolution
	}
	return &domain.Board{Values: out, Fixed: b.Fixed}, stats, nil
}

// searchByCopy receives the grid by value; the copy taken for each branch is
// this strategy's entire undo story.
func searchByCopy(ctx context.Context, g [9][9]uint8, st *searchState) ([9][9]uint8, bool, error) {
	if err := ctx.Err(); err != nil {
		return g, false, err
	}
	if !propagateGrid(&g, nil) {
		return g, false, nil
	}
	r, c, cands, found := chooseCell(&g)
	if !found {
		return g, true, nil
	}
	for v := uint8(1); v <= 9; v++ {
		if cands&(1<<v) == 0 {
			continue
		}
		if err := st.spend(); err != nil {
			return g, false, err
		}
		branch := g
		branch[r][c] = v
		out, ok, err := searchByCopy(ctx, branch, st)
		if err != nil {
			return g, false, err
		}
		if ok {
			return out, true, nil
		}
	}
	return g, false, nil
}
