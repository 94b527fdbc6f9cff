package solver

import "math/bits"

// fullMask has bits 1..9 set, one per digit.
const fullMask uint16 = 0x3FE

func rowMask(g *[9][9]uint8, r int) uint16 {
	var m uint16
	for c := 0; c < 9; c++ {
		if v := g[r][c]; v != 0 {
			m |= 1 << v
		}
	}
	return m
}

func colMask(g *[9][9]uint8, c int) uint16 {
	var m uint16
	for r := 0; r < 9; r++ {
		if v := g[r][c]; v != 0 {
			m |= 1 << v
		}
	}
	return m
}

func boxMask(g *[9][9]uint8, r, c int) uint16 {
	br, bc := (r/3)*3, (c/3)*3
	var m uint16
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if v := g[br+dr][bc+dc]; v != 0 {
				m |= 1 << v
			}
		}
	}
	return m
}

// candidatesFor returns the legal digits for a cell as a bitmask. A filled
// cell's only candidate is its own value.
func candidatesFor(g *[9][9]uint8, r, c int) uint16 {
	if v := g[r][c]; v != 0 {
		return 1 << v
	}
	return fullMask &^ (rowMask(g, r) | colMask(g, c) | boxMask(g, r, c))
}

// allCandidates applies candidatesFor to every cell.
func allCandidates(g *[9][9]uint8) [9][9]uint16 {
	var out [9][9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = candidatesFor(g, r, c)
		}
	}
	return out
}

func digitCount(m uint16) int { return bits.OnesCount16(m) }

// soleDigit reads the digit out of a single-bit mask.
func soleDigit(m uint16) uint8 { return uint8(bits.TrailingZeros16(m)) }
