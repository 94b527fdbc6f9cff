package solver

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func TestSATSolveClassic(t *testing.T) {
	s := NewSATSolver()
	out, st, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if out.Values != sampleSolved {
		t.Fatalf("SAT solution differs from the known one:\n%s", out.Format())
	}
	if st.Nodes != 0 {
		t.Fatalf("SAT engine reports %d branch nodes, want 0", st.Nodes)
	}
}

func TestSATSolveConflict(t *testing.T) {
	s := NewSATSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{Values: twoFives()})
	if !errors.Is(err, ErrNoSolution) {
		t.Fatalf("want ErrNoSolution, got %v", err)
	}
	if out != nil {
		t.Fatal("no-solution result must carry no board")
	}
}

func TestSATSolveEmptyBoard(t *testing.T) {
	s := NewSATSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Values[r][c] == 0 {
				t.Fatalf("cell (%d,%d) left empty", r, c)
			}
		}
	}
	if gridHasConflict(&out.Values) {
		t.Fatalf("SAT produced a conflicting board:\n%s", out.Format())
	}
}

func TestSATSolveKeepsGivens(t *testing.T) {
	s := NewSATSolver()
	out, _, err := s.Solve(context.Background(), &domain.Board{Values: hard})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := hard[r][c]; v != 0 && out.Values[r][c] != v {
				t.Fatalf("given (%d,%d)=%d overwritten with %d", r, c, v, out.Values[r][c])
			}
		}
	}
}

func TestSATSolveRejectsOutOfRangeValue(t *testing.T) {
	g := sample
	g[2][2] = 11
	s := NewSATSolver()
	if _, _, err := s.Solve(context.Background(), &domain.Board{Values: g}); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("want ErrInvalidBoard, got %v", err)
	}
}
