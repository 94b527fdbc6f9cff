package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func testPuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       17,
		Difficulty: d,
		Name:       "morning puzzle",
		CreatedAt:  1700000000,
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	return p
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	if err := s.Save(ctx, testPuzzle("abc", domain.Hard)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ID != "abc" || got.Difficulty != domain.Hard || got.Name != "morning puzzle" {
		t.Fatalf("loaded %+v", got)
	}
	if got.Board.Values[0][0] != 5 || !got.Board.Fixed[0][0] {
		t.Fatal("board cells did not survive the round trip")
	}
}

func TestSaveFilesUnderDifficulty(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	if err := s.Save(context.Background(), testPuzzle("xyz", domain.Expert)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "expert", "xyz.json")); err != nil {
		t.Fatalf("expected file under expert/: %v", err)
	}
}

func TestSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); !errors.Is(err, errMissingID) {
		t.Fatalf("want errMissingID, got %v", err)
	}
	if err := s.Save(context.Background(), nil); !errors.Is(err, errMissingID) {
		t.Fatalf("nil puzzle: want errMissingID, got %v", err)
	}
}

func TestLoadMissingPuzzle(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist, got %v", err)
	}
}

func TestListAcrossDifficulties(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	for _, p := range []*domain.Puzzle{
		testPuzzle("a", domain.Easy),
		testPuzzle("b", domain.Expert),
	} {
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save %s: %v", p.ID, err)
		}
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(metas))
	}
	byID := map[string]domain.PuzzleMeta{}
	for _, m := range metas {
		byID[m.ID] = m
	}
	if byID["a"].Difficulty != domain.Easy || byID["b"].Difficulty != domain.Expert {
		t.Fatalf("listing difficulties wrong: %+v", metas)
	}
}

func TestListEmptyStore(t *testing.T) {
	metas, err := NewFS(t.TempDir()).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 0 {
		t.Fatalf("fresh store lists %d entries", len(metas))
	}
}
