package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// BacktrackingSolver searches on one shared grid, undoing every placement on
// backtrack through an explicit trail.
type BacktrackingSolver struct {
	// Budget caps the number of branch nodes tried; 0 means unlimited.
	Budget int
}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkValues(b); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	grid := b.Values
	if gridHasConflict(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	st := &searchState{budget: s.Budget}
	trail := make([]domain.CellCoord, 0, 81)
	ok, err := searchInPlace(ctx, &grid, st, &trail)
	stats := ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	if !ok {
		return nil, stats, ErrNoSolution
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, stats, nil
}

// searchInPlace runs one level: propagate, pick a cell, try its candidates in
// ascending order. The trail records every placement so a failed level rewinds
// to exactly the state its caller saw; on success the grid is the solution.
func searchInPlace(ctx context.Context, g *[9][9]uint8, st *searchState, trail *[]domain.CellCoord) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	mark := len(*trail)
	if !propagateGrid(g, trail) {
		rewind(g, trail, mark)
		return false, nil
	}
	r, c, cands, found := chooseCell(g)
	if !found {
		return true, nil
	}
	level := len(*trail)
	for v := uint8(1); v <= 9; v++ {
		if cands&(1<<v) == 0 {
			continue
		}
		if err := st.spend(); err != nil {
			return false, err
		}
		g[r][c] = v
		*trail = append(*trail, domain.CellCoord{Row: r, Col: c})
		ok, err := searchInPlace(ctx, g, st, trail)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		rewind(g, trail, level)
	}
	rewind(g, trail, mark)
	return false, nil
}

// rewind clears every placement past mark, newest first.
func rewind(g *[9][9]uint8, trail *[]domain.CellCoord, mark int) {
	t := *trail
	for i := len(t) - 1; i >= mark; i-- {
		g[t[i].Row][t[i].Col] = 0
	}
	*trail = t[:mark]
}
