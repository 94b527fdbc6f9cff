package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// RandomGenerator builds puzzles by filling an empty grid in random order and
// then punching holes down to the difficulty's clue target. Whether the
// remaining puzzle has exactly one solution is deliberately not checked.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator { return &RandomGenerator{} }

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle from seed and target difficulty. The same seed
// and difficulty always yield the same puzzle.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	// 1) full random solution
	var full [9][9]uint8
	nodes := 0
	if !fillRandom(ctx, rng, &full, &nodes) {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, context.Canceled
	}

	// 2) carve out cells until the clue target is reached
	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	remaining := 81
	target := targetGivens(diff)
	for _, pos := range rng.Perm(81) {
		if remaining <= target {
			break
		}
		r, c := pos/9, pos%9
		puz[r][c] = 0
		fixed[r][c] = false
		remaining--
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		Solution:   &domain.Board{Values: full},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom solves an empty grid into a full valid solution by random
// ordering, counting placement attempts in nodes.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8, nodes *int) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			*nodes++
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the generator.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
