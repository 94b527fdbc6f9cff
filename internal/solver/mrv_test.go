package solver

import "testing"

func TestChooseCellPrefersFewestCandidates(t *testing.T) {
	g := sampleSolved
	for c := 0; c < 9; c++ {
		g[4][c] = 0
	}
	// Every cell of the blanked row is down to one candidate; the selector
	// must stop at the first of them.
	r, c, m, found := chooseCell(&g)
	if !found {
		t.Fatal("selector found no empty cell on a board with nine")
	}
	if r != 4 || c != 0 {
		t.Fatalf("selector picked (%d,%d), want (4,0)", r, c)
	}
	if digitCount(m) != 1 || soleDigit(m) != sampleSolved[4][0] {
		t.Fatalf("selector mask %#x does not force %d", m, sampleSolved[4][0])
	}
}

func TestChooseCellBreaksTiesRowMajor(t *testing.T) {
	var g [9][9]uint8
	copy(g[0][:], []uint8{0, 0, 3, 4, 5, 6, 7, 8, 9})
	// (0,0) and (0,1) both have exactly {1,2}; every other empty cell has
	// more. Row-major order decides.
	r, c, m, found := chooseCell(&g)
	if !found {
		t.Fatal("selector found no empty cell")
	}
	if r != 0 || c != 0 {
		t.Fatalf("selector picked (%d,%d), want (0,0)", r, c)
	}
	if want := uint16(1<<1 | 1<<2); m != want {
		t.Fatalf("selector mask %#x, want %#x", m, want)
	}
}

func TestChooseCellReportsDeadCellImmediately(t *testing.T) {
	var g [9][9]uint8
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[4][8] = 9

	r, c, m, found := chooseCell(&g)
	if !found {
		t.Fatal("selector ignored the dead cell")
	}
	if r != 0 || c != 8 || m != 0 {
		t.Fatalf("selector picked (%d,%d) mask %#x, want (0,8) with no candidates", r, c, m)
	}
}

func TestChooseCellFullBoard(t *testing.T) {
	g := sampleSolved
	if _, _, _, found := chooseCell(&g); found {
		t.Fatal("selector claimed an empty cell on a solved board")
	}
}
