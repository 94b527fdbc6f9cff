package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/validator"
)

func TestGenerateClueTargets(t *testing.T) {
	targets := map[domain.Difficulty]int{
		domain.Easy:   40,
		domain.Medium: 34,
		domain.Hard:   28,
		domain.Expert: 24,
	}
	g := NewRandomGenerator()
	for diff, want := range targets {
		t.Run(diff.String(), func(t *testing.T) {
			p, _, err := g.Generate(context.Background(), 42, diff)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if n := p.Board.Clues(); n != want {
				t.Fatalf("%s puzzle has %d clues, want %d", diff, n, want)
			}
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Fixed[r][c] != (p.Board.Values[r][c] != 0) {
						t.Fatalf("fixed mark at (%d,%d) disagrees with the value", r, c)
					}
				}
			}
		})
	}
}

func TestGeneratePuzzleIsConsistent(t *testing.T) {
	g := NewRandomGenerator()
	p, _, err := g.Generate(context.Background(), 7, domain.Hard)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	ok, conf, err := validator.New().Validate(context.Background(), &p.Board)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !ok {
		t.Fatalf("generated puzzle has conflicts: %v", conf)
	}

	if p.Solution == nil {
		t.Fatal("puzzle carries no solution")
	}
	if p.Solution.Clues() != 81 || solver.HasConflict(p.Solution) {
		t.Fatalf("stored solution is not a complete valid grid:\n%s", p.Solution.Format())
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := p.Board.Values[r][c]; v != 0 && p.Solution.Values[r][c] != v {
				t.Fatalf("clue (%d,%d)=%d contradicts the solution", r, c, v)
			}
		}
	}
}

func TestGeneratePuzzleIsSolvable(t *testing.T) {
	g := NewRandomGenerator()
	p, _, err := g.Generate(context.Background(), 99, domain.Expert)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, _, err := solver.NewBacktrackingSolver().Solve(ctx, &p.Board); err != nil {
		t.Fatalf("generated puzzle does not solve: %v", err)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewRandomGenerator()
	a, _, err := g.Generate(context.Background(), 1234, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(context.Background(), 1234, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Board.Values != b.Board.Values || a.Solution.Values != b.Solution.Values {
		t.Fatal("same seed produced different puzzles")
	}
	c, _, err := g.Generate(context.Background(), 1235, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Board.Values == c.Board.Values {
		t.Fatal("different seeds produced the same puzzle")
	}
}

func TestGenerateHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewRandomGenerator().Generate(ctx, 5, domain.Easy)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
