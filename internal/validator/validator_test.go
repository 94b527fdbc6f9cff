package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func TestValidateCleanBoard(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[5][5] = 5

	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("clean board flagged: %v", conf)
	}
}

func TestValidateReportsBothDuplicates(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 5
	b.Values[0][8] = 5

	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok {
		t.Fatal("duplicate row went unnoticed")
	}
	want := []domain.CellCoord{{Row: 0, Col: 0}, {Row: 0, Col: 8}}
	if len(conf) != len(want) || conf[0] != want[0] || conf[1] != want[1] {
		t.Fatalf("conflicts %v, want %v", conf, want)
	}
}

func TestValidateBoxDuplicate(t *testing.T) {
	b := &domain.Board{}
	b.Values[6][0] = 3
	b.Values[8][2] = 3

	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok || len(conf) != 2 {
		t.Fatalf("box duplicate missed, conflicts %v", conf)
	}
}

// The validator and the solver's conflict gate must agree on every board, or
// the UI would call a board fine that the engine refuses to search.
func TestValidateAgreesWithSolverGate(t *testing.T) {
	boards := []*domain.Board{
		{},
		func() *domain.Board {
			b := &domain.Board{}
			b.Values[0][0], b.Values[0][8] = 5, 5
			return b
		}(),
		func() *domain.Board {
			b := &domain.Board{}
			b.Values[2][2], b.Values[6][2] = 4, 4
			return b
		}(),
		func() *domain.Board {
			b := &domain.Board{}
			for c := 0; c < 9; c++ {
				b.Values[0][c] = uint8(c + 1)
			}
			return b
		}(),
	}
	v := New()
	for i, b := range boards {
		ok, _, err := v.Validate(context.Background(), b)
		if err != nil {
			t.Fatalf("board %d: %v", i, err)
		}
		if ok == solver.HasConflict(b) {
			t.Fatalf("board %d: validator ok=%v but solver conflict=%v", i, ok, solver.HasConflict(b))
		}
	}
}
