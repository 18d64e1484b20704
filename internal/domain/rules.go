package domain

// window is one run of ToWin cells along an axis.
type window [ToWin]Coord

// direction steps for the four axes; the anchor ranges below keep every
// window inside the grid.
var axes = []struct {
	dRow, dCol     int
	rowFrom, rowTo int
	colFrom, colTo int
}{
	// horizontal
	{0, 1, 0, Rows - 1, 0, Columns - ToWin},
	// vertical
	{1, 0, 0, Rows - ToWin, 0, Columns - 1},
	// diagonal down-right
	{1, 1, 0, Rows - ToWin, 0, Columns - ToWin},
	// diagonal up-right, anchored on its top cell
	{1, -1, 0, Rows - ToWin, ToWin - 1, Columns - 1},
}

// CheckWin reports whether token owns four contiguous cells on any axis.
// The whole board is scanned, so the result does not depend on row and
// column beyond them being in range.
func (b *Board) CheckWin(row, column int, token Cell) bool {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return false
	}
	_, ok := b.WinningLine(token)
	return ok
}

// WinningLine returns the first window held entirely by token.
func (b *Board) WinningLine(token Cell) ([]Coord, bool) {
	if !token.IsPlayer() {
		return nil, false
	}

	for _, ax := range axes {
		for r := ax.rowFrom; r <= ax.rowTo; r++ {
			for c := ax.colFrom; c <= ax.colTo; c++ {
				var w window
				var cells [ToWin]Cell
				for i := 0; i < ToWin; i++ {
					w[i] = Coord{Row: r + i*ax.dRow, Col: c + i*ax.dCol}
					cells[i] = b.cells[w[i].Row][w[i].Col]
				}
				if allEqual(cells[:], token) {
					return w[:], true
				}
			}
		}
	}

	return nil, false
}

// allEqual is true when every cell equals the non-empty token.
func allEqual(cells []Cell, token Cell) bool {
	if token == Empty || len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if c != token {
			return false
		}
	}
	return true
}
