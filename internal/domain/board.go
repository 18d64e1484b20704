package domain

import "strings"

// Board owns a fixed 6x7 grid. Row 0 is the top row, row 5 the bottom.
// The zero value is an empty board.
type Board struct {
	cells [Rows][Columns]Cell
}

func NewBoard() *Board {
	return &Board{}
}

func ValidateColumn(column int) error {
	if column < 0 || column >= Columns {
		return ErrInvalidColumn
	}
	return nil
}

// IsColumnFull reports whether the top cell of the column is taken.
// Out of range columns are never full; DropToken rejects them separately.
func (b *Board) IsColumnFull(column int) bool {
	if ValidateColumn(column) != nil {
		return false
	}
	// board[0] represents the top row (0 -> top and 5 -> bottom)
	return b.cells[0][column] != Empty
}

// DropToken places token in the lowest empty cell of column and returns
// its row. A failed drop leaves the board untouched.
func (b *Board) DropToken(column int, token Cell) (int, error) {
	if err := ValidateColumn(column); err != nil {
		return -1, err
	}
	if !token.IsPlayer() {
		return -1, ErrInvalidToken
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = token
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsBoardFull() bool {
	for c := 0; c < Columns; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of the grid; changing it does not affect the board.
func (b *Board) Snapshot() [Rows][Columns]Cell {
	return b.cells
}

// At returns the cell at (row, column), or Empty when out of bounds.
func (b *Board) At(row, column int) Cell {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return b.cells[row][column]
}

// ValidMoves lists the columns that still accept a token.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if !b.IsColumnFull(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// String renders the grid row by row as symbols, rows separated by '/'.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Columns; c++ {
			sb.WriteString(b.cells[r][c].Symbol())
		}
	}
	return sb.String()
}
