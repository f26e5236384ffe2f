package entity

import (
	"errors"
	"fmt"
)

const BoardSize = 9

var (
	ErrInvalidIndex = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid mark")

	// WinCombos are the three rows, three columns and two diagonals, in that order.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Board is a 3x3 grid stored row by row. A set cell is never overwritten.
type Board [BoardSize]Mark

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Reset() {
	*that = Board{}
}

// Place puts mark into an empty cell. It reports false without touching the
// board when the cell is already taken.
func (that *Board) Place(index int, mark Mark) (bool, error) {
	if index < 0 || index >= BoardSize {
		return false, fmt.Errorf("%w: cell %d", ErrInvalidIndex, index)
	}

	if !mark.IsPlayerMark() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMark, mark)
	}

	if that[index] != EmptyCell {
		return false, nil
	}

	that[index] = mark

	return true, nil
}

// Cell returns the mark at index.
func (that *Board) Cell(index int) (Mark, error) {
	if index < 0 || index >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", ErrInvalidIndex, index)
	}

	return that[index], nil
}

// Winner returns the mark holding a complete line, or EmptyCell.
func (that *Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// IsTie is never true while Winner reports a mark.
func (that *Board) IsTie() bool {
	return that.IsFull() && that.Winner() == EmptyCell
}

// Count returns the number of occupied cells.
func (that *Board) Count() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}

	return count
}

// CountOf returns the number of cells holding mark.
func (that *Board) CountOf(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

// Cells returns a copy of the grid for rendering.
func (that *Board) Cells() [BoardSize]Mark {
	return *that
}
