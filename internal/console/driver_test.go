package console

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect-four/internal/domain"
)

func TestRenderBoard(t *testing.T) {
	var grid [domain.Rows][domain.Columns]domain.Cell
	grid[5][0] = domain.PlayerA
	grid[5][1] = domain.PlayerB

	var buf bytes.Buffer
	require.NoError(t, RenderBoard(&buf, grid, DefaultSymbols()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, domain.Rows+1)
	assert.Equal(t, "1   2   3   4   5   6   7   ", lines[0])
	assert.Equal(t, "- | - | - | - | - | - | - ", lines[1])
	assert.Equal(t, "X | O | - | - | - | - | - ", lines[6])
}

func TestRenderBoardCustomSymbols(t *testing.T) {
	var grid [domain.Rows][domain.Columns]domain.Cell
	grid[5][6] = domain.PlayerB

	var buf bytes.Buffer
	symbols := Symbols{domain.PlayerA: "R", domain.PlayerB: "Y"}
	require.NoError(t, RenderBoard(&buf, grid, symbols))
	assert.Contains(t, buf.String(), "- | - | - | - | - | - | Y \n")
}

func TestDriverVerticalWin(t *testing.T) {
	var out bytes.Buffer
	d := NewDriver(strings.NewReader("4 5 4 5 4 5 4"), &out, nil)

	outcome, err := d.Run()
	require.NoError(t, err)
	assert.Equal(t, domain.Outcome{Status: domain.StatusWon, Winner: domain.PlayerA}, outcome)
	assert.True(t, strings.HasSuffix(out.String(), "Player X wins!\n"))
	assert.Equal(t, 7, d.Game().Moves())
}

func TestDriverRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	// "abc" is not a number, 0 and 8 are out of range, the seventh 1 hits a full column.
	input := "abc 0 8 1 1 1 1 1 1 1 2 3 2 3 2 3 2"
	d := NewDriver(strings.NewReader(input), &out, nil)

	outcome, err := d.Run()
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, msgInvalidInput))
	assert.Equal(t, 3, strings.Count(text, msgInvalidMove))
	assert.Equal(t, domain.Outcome{Status: domain.StatusWon, Winner: domain.PlayerA}, outcome)
	assert.Contains(t, text, "Player X wins!")
}

func TestDriverDraw(t *testing.T) {
	moves := []int{
		6, 4, 6, 2, 3, 0, 0, 2, 1, 6, 6, 2, 4, 6, 4, 5, 3, 6, 1, 5, 1,
		3, 0, 5, 2, 1, 2, 0, 2, 3, 5, 4, 1, 1, 4, 3, 5, 4, 3, 5, 0, 0,
	}
	var input strings.Builder
	for _, m := range moves {
		fmt.Fprintf(&input, "%d\n", m+1)
	}

	var out bytes.Buffer
	outcome, err := NewDriver(strings.NewReader(input.String()), &out, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraw, outcome.Status)
	assert.True(t, strings.HasSuffix(out.String(), "It's a draw!\n"))
}

func TestDriverEndOfInput(t *testing.T) {
	var out bytes.Buffer
	outcome, err := NewDriver(strings.NewReader("1 2"), &out, nil).Run()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, domain.StatusActive, outcome.Status)
}

func TestDriverPromptUsesSymbols(t *testing.T) {
	var out bytes.Buffer
	symbols := Symbols{domain.Empty: ".", domain.PlayerA: "R", domain.PlayerB: "Y"}
	_, err := NewDriver(strings.NewReader("1"), &out, symbols).Run()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, out.String(), "Player R, choose a column (1-7): ")
	assert.Contains(t, out.String(), "Player Y, choose a column (1-7): ")
}
