package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoardText reports malformed text input for ParseBoard.
var ErrInvalidBoardText = errors.New("invalid board text")

// ParseBoard reads a board from its 81-character row-major form. '0' and '.'
// mean empty, all whitespace is ignored, and every placed digit is marked as
// a fixed given.
func ParseBoard(s string) (*Board, error) {
	cleaned := strings.Join(strings.Fields(s), "")
	if len(cleaned) != 81 {
		return nil, fmt.Errorf("%w: got %d cells, want 81", ErrInvalidBoardText, len(cleaned))
	}
	b := &Board{}
	for i := 0; i < 81; i++ {
		ch := cleaned[i]
		r, c := i/9, i%9
		switch {
		case ch == '0' || ch == '.':
			// empty
		case ch >= '1' && ch <= '9':
			b.Values[r][c] = ch - '0'
			b.Fixed[r][c] = true
		default:
			return nil, fmt.Errorf("%w: cell %d holds %q", ErrInvalidBoardText, i, ch)
		}
	}
	return b, nil
}

// String renders the 81-character row-major form with '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// Format renders a human-readable grid with box separators.
func (b *Board) Format() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Clues counts the placed digits.
func (b *Board) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
