package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
)

// Symbols maps each cell state to the text printed for it.
type Symbols map[domain.Cell]string

func DefaultSymbols() Symbols {
	return Symbols{
		domain.Empty:   domain.Empty.Symbol(),
		domain.PlayerA: domain.PlayerA.Symbol(),
		domain.PlayerB: domain.PlayerB.Symbol(),
	}
}

func (s Symbols) For(c domain.Cell) string {
	if sym, ok := s[c]; ok {
		return sym
	}
	return c.Symbol()
}

// RenderBoard writes the 1-indexed column header followed by one line per
// row, top row first.
func RenderBoard(w io.Writer, grid [domain.Rows][domain.Columns]domain.Cell, symbols Symbols) error {
	var sb strings.Builder

	for col := 1; col <= domain.Columns; col++ {
		fmt.Fprintf(&sb, "%d   ", col)
	}
	sb.WriteByte('\n')

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(symbols.For(grid[row][col]))
			sb.WriteByte(' ')
			if col < domain.Columns-1 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
